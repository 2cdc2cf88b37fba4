package recurrence

import (
	"errors"
	"strings"
	"time"
)

// MaxOccurrences caps every expansion regardless of the requested count.
const MaxOccurrences = 52

var (
	ErrUnknownType      = errors.New("recurrence: unknown recurrence type")
	ErrMissingBound     = errors.New("recurrence: either count or end date is required")
	ErrCountExceedsMax  = errors.New("recurrence: count exceeds the maximum of 52 occurrences")
	ErrCountNotPositive = errors.New("recurrence: count must be at least 1")
	ErrEndDateNotFuture = errors.New("recurrence: end date must be in the future")
	ErrIntervalTooSmall = errors.New("recurrence: interval must be at least 1")
	ErrInvalidDayOfWeek = errors.New("recurrence: days of week must be between 0 (Sunday) and 6 (Saturday)")
)

type Type string

const (
	TypeNone     Type = "NONE"
	TypeDaily    Type = "DAILY"
	TypeWeekly   Type = "WEEKLY"
	TypeBiweekly Type = "BIWEEKLY"
	TypeMonthly  Type = "MONTHLY"
)

func ParseType(value string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(value)))
	if !t.IsValid() {
		return "", ErrUnknownType
	}
	return t, nil
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeNone, TypeDaily, TypeWeekly, TypeBiweekly, TypeMonthly:
		return true
	default:
		return false
	}
}

// Pattern describes how a booking repeats. A pattern can be built in an
// invalid state; ValidatePattern must accept it before use.
type Pattern struct {
	Type       Type
	Interval   int
	Count      *int
	EndDate    *time.Time
	DaysOfWeek []time.Weekday
}

func (p Pattern) interval() int {
	if p.Interval < 1 {
		return 1
	}
	return p.Interval
}

// limit is min(count, MaxOccurrences), or MaxOccurrences when count is unset.
func (p Pattern) limit() int {
	if p.Count == nil || *p.Count > MaxOccurrences {
		return MaxOccurrences
	}
	return *p.Count
}

type Occurrence struct {
	Date   time.Time
	Index  int
	IsLast bool
}

type ValidationResult struct {
	Valid bool
	Err   error
}

func (v ValidationResult) Message() string {
	return ErrorMessage(v.Err)
}

// ErrorMessage renders a validation error for end users.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimPrefix(err.Error(), "recurrence: ")
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(err error) ValidationResult {
	return ValidationResult{Valid: false, Err: err}
}
