package schedule

import (
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

// Day is a weekday on the calendar grid. The grid runs Monday through
// Saturday; Sunday is never schedulable.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
)

// Days lists the schedulable weekdays in grid order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseDay returns the Day matching s (case-sensitive full name).
func ParseDay(s string) (Day, error) {
	for _, d := range Days {
		if string(d) == s {
			return d, nil
		}
	}
	return "", errors.Errorf("unknown day %q", s)
}

// Pattern labels the rule that produced a repeat session.
type Pattern string

const (
	PatternMWF Pattern = "MWF"
	PatternTR  Pattern = "TR"
)

// Field names an assignable association on a session.
type Field string

const (
	FieldProfessor Field = "professor"
	FieldClass     Field = "class"
	FieldRoom      Field = "room"
)

// ParseField returns the Field matching s.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldProfessor, FieldClass, FieldRoom:
		return Field(s), nil
	}
	return "", errors.Errorf("unknown field %q", s)
}

// Session is a scheduled block on the weekly grid. StartTime and Duration are
// minutes relative to the grid's start hour. A master session (IsRepeat false)
// owns its repeat group; repeat members mirror the master's schedule fields
// and carry the pattern that derived them.
type Session struct {
	ID            string      `json:"id" db:"id"`
	Day           Day         `json:"day" db:"day"`
	StartTime     int         `json:"start_time" db:"start_time"`
	Duration      int         `json:"duration" db:"duration"`
	IsRepeat      bool        `json:"is_repeat" db:"is_repeat"`
	RepeatGroupID null.String `json:"repeat_group_id" db:"repeat_group_id"`
	RepeatPattern null.String `json:"repeat_pattern" db:"repeat_pattern"`
	ProfessorRef  null.Int    `json:"professor_id" db:"professor_id"`
	ClassRef      null.Int    `json:"class_id" db:"class_id"`
	RoomRef       null.Int    `json:"room_id" db:"room_id"`
	TermRef       null.Int    `json:"term_id" db:"term_id"`
}

// End returns the session's bottom edge in grid minutes.
func (s Session) End() int {
	return s.StartTime + s.Duration
}

func (s Session) fieldRef(field Field) null.Int {
	switch field {
	case FieldProfessor:
		return s.ProfessorRef
	case FieldClass:
		return s.ClassRef
	case FieldRoom:
		return s.RoomRef
	}
	return null.Int{}
}

func (s *Session) setFieldRef(field Field, value null.Int) {
	switch field {
	case FieldProfessor:
		s.ProfessorRef = value
	case FieldClass:
		s.ClassRef = value
	case FieldRoom:
		s.RoomRef = value
	}
}

// sameSchedule reports whether both sessions share all master-synced fields.
func (s Session) sameSchedule(other Session) bool {
	return s.StartTime == other.StartTime &&
		s.Duration == other.Duration &&
		s.ProfessorRef == other.ProfessorRef &&
		s.ClassRef == other.ClassRef &&
		s.RoomRef == other.RoomRef
}
