package scheduling

import (
	"errors"
	"time"
)

const (
	DefaultMinAdvance = 60 * time.Minute
	DefaultMaxAdvance = 43200 * time.Minute
)

var ErrInvalidPolicy = errors.New("invalid scheduling policy")

// Policy carries the tenant-specific rules applied by the conflict checker.
type Policy struct {
	MinAdvance time.Duration
	// MaxAdvance of zero disables the upper bound.
	MaxAdvance time.Duration
	// Location anchors working hours and day-of-week lookups. Nil means the
	// candidate start's own location.
	Location *time.Location
	// ClientDoubleBookingSeverity is the severity given to CLIENT_BUSY conflicts.
	ClientDoubleBookingSeverity Severity
}

func DefaultPolicy() Policy {
	return Policy{
		MinAdvance:                  DefaultMinAdvance,
		MaxAdvance:                  DefaultMaxAdvance,
		Location:                    time.UTC,
		ClientDoubleBookingSeverity: SeverityWarning,
	}
}

func (p Policy) Validate() error {
	if p.MinAdvance < 0 || p.MaxAdvance < 0 || (p.MaxAdvance != 0 && p.MaxAdvance < p.MinAdvance) {
		return ErrInvalidPolicy
	}
	if !p.ClientDoubleBookingSeverity.IsValid() {
		return ErrInvalidPolicy
	}
	return nil
}

func (p Policy) locate(t time.Time) time.Time {
	if p.Location == nil {
		return t
	}
	return t.In(p.Location)
}
