package tutory

type LessonType string

const (
	LessonTypeOnline  LessonType = "online"
	LessonTypeOffline LessonType = "offline"
	LessonTypeBoth    LessonType = "both"
)

func (lt LessonType) String() string {
	return string(lt)
}

func (lt LessonType) IsValid() bool {
	switch lt {
	case LessonTypeOnline, LessonTypeOffline, LessonTypeBoth:
		return true
	default:
		return false
	}
}

func NewLessonType(s string) (LessonType, error) {
	lt := LessonType(s)
	if !lt.IsValid() {
		return "", ErrInvalidLessonType
	}
	return lt, nil
}
