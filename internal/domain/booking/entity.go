package booking

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCandidate = errors.New("invalid booking candidate")
	ErrInvalidSchedule  = errors.New("invalid working schedule")
)

// Candidate is a proposed appointment that has not been persisted yet.
type Candidate struct {
	TenantID        uuid.UUID
	ProfessionalID  uuid.UUID
	ClientID        *uuid.UUID
	Start           time.Time
	DurationMinutes int
	ResourceIDs     []uuid.UUID
	// ExcludeID is the booking being edited, if any.
	ExcludeID *uuid.UUID
}

func (c Candidate) Validate() error {
	if c.TenantID == uuid.Nil || c.ProfessionalID == uuid.Nil {
		return ErrInvalidCandidate
	}
	if c.DurationMinutes <= 0 || c.Start.IsZero() {
		return ErrInvalidCandidate
	}
	return nil
}

func (c Candidate) End() time.Time {
	return c.Start.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

func (c Candidate) Range() (TimeRange, error) {
	return NewTimeRange(c.Start, c.End())
}

// At returns a copy of the candidate moved to start.
func (c Candidate) At(start time.Time) Candidate {
	moved := c
	moved.Start = start
	moved.ResourceIDs = slices.Clone(c.ResourceIDs)
	return moved
}

// DistinctResourceIDs returns ResourceIDs without repeats, in first-seen order.
func (c Candidate) DistinctResourceIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.ResourceIDs))
	for _, id := range c.ResourceIDs {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// ExistingBooking is a persisted appointment as seen by the conflict checker.
type ExistingBooking struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	ClientID       uuid.UUID
	ClientName     string
	TimeRange      TimeRange
	Status         Status
	ResourceIDs    []uuid.UUID
}

func (b ExistingBooking) IsActive() bool {
	return !b.Status.IsTerminal()
}

func (b ExistingBooking) UsesResource(resourceID uuid.UUID) bool {
	return slices.Contains(b.ResourceIDs, resourceID)
}

// TimeBlock is a professional's ad hoc unavailability.
type TimeBlock struct {
	ID             uuid.UUID
	ProfessionalID uuid.UUID
	TimeRange      TimeRange
	Reason         *string
}

// WorkingSchedule is a professional's availability on one weekday.
type WorkingSchedule struct {
	ProfessionalID uuid.UUID
	Weekday        time.Weekday
	Enabled        bool
	Start          TimeOfDay
	End            TimeOfDay
	BreakStart     *TimeOfDay
	BreakEnd       *TimeOfDay
}

func (ws WorkingSchedule) HasBreak() bool {
	return ws.BreakStart != nil && ws.BreakEnd != nil
}

// WindowOn returns the working interval anchored to day's calendar date.
func (ws WorkingSchedule) WindowOn(day time.Time) (TimeRange, error) {
	tr, err := NewTimeRange(ws.Start.On(day), ws.End.On(day))
	if err != nil {
		return TimeRange{}, ErrInvalidSchedule
	}
	return tr, nil
}

// BreakOn returns the break interval anchored to day's calendar date, or nil
// when the schedule has no break.
func (ws WorkingSchedule) BreakOn(day time.Time) (*TimeRange, error) {
	if !ws.HasBreak() {
		return nil, nil
	}
	tr, err := NewTimeRange(ws.BreakStart.On(day), ws.BreakEnd.On(day))
	if err != nil {
		return nil, ErrInvalidSchedule
	}
	return &tr, nil
}
