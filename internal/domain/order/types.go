package order

// Status is the order lifecycle state. pending is the only non-terminal
// learner-created state; completed is flipped externally once the session
// date has passed, never through an API transition.
type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusDeclined  Status = "declined"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusDeclined, StatusCanceled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusDeclined, StatusCanceled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo enumerates the legal transitions:
// pending -> scheduled | declined | canceled, scheduled -> completed | canceled.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusScheduled || next == StatusDeclined || next == StatusCanceled
	case StatusScheduled:
		return next == StatusCompleted || next == StatusCanceled
	default:
		return false
	}
}
