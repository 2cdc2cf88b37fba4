package scheduling

import (
	"salon-scheduling/internal/domain/booking"

	"github.com/google/uuid"
)

// Conflict is a structured reason a candidate booking should not be accepted as-is.
type Conflict struct {
	Kind        Kind
	BookingID   *uuid.UUID
	ResourceID  *uuid.UUID
	TimeRange   *booking.TimeRange
	Description string
	Severity    Severity
}

func (c Conflict) IsBlocking() bool {
	return c.Severity == SeverityError
}

type Result struct {
	Conflicts []Conflict
}

func (r Result) HasConflict() bool {
	return len(r.Conflicts) > 0
}

// CanOverride is false iff some non-overridable kind was reported as an ERROR.
func (r Result) CanOverride() bool {
	for _, c := range r.Conflicts {
		if c.IsBlocking() && !c.Kind.IsOverridable() {
			return false
		}
	}
	return true
}

func (r Result) CountBySeverity(severity Severity) int {
	n := 0
	for _, c := range r.Conflicts {
		if c.Severity == severity {
			n++
		}
	}
	return n
}
