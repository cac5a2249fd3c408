package review

import (
	"strings"

	"tutorlink/internal/pkg/errs"
)

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrMessageTooLong = errs.New("review message too long")
)

const MaxMessageLength = 1000

type Rating struct {
	value int
}

func NewRating(value int) (Rating, error) {
	if value < 1 || value > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() int {
	return r.value
}

// Message is optional; an empty message is valid.
type Message struct {
	value string
}

func NewMessage(value string) (Message, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{value: trimmed}, nil
}

func (m Message) String() string {
	return m.value
}

func (m Message) IsEmpty() bool {
	return m.value == ""
}
