//go:build unit || e2e

package builder

import (
	"time"

	"salon-scheduling/internal/domain/booking"
	reqdto "salon-scheduling/internal/handler/dto/request"

	"github.com/google/uuid"
)

// BaseTime is a Wednesday at 10:00 UTC, far enough from any fixed clock used in tests.
var BaseTime = time.Date(2030, time.January, 9, 10, 0, 0, 0, time.UTC)

type CandidateBuilder struct {
	TenantID        uuid.UUID
	ProfessionalID  uuid.UUID
	ClientID        *uuid.UUID
	Start           time.Time
	DurationMinutes int
	ResourceIDs     []uuid.UUID
	ExcludeID       *uuid.UUID
}

func NewCandidateBuilder() *CandidateBuilder {
	clientID := uuid.New()
	return &CandidateBuilder{
		TenantID:        uuid.New(),
		ProfessionalID:  uuid.New(),
		ClientID:        &clientID,
		Start:           BaseTime,
		DurationMinutes: 60,
	}
}

func (c *CandidateBuilder) With(mutate func(*CandidateBuilder)) *CandidateBuilder {
	mutate(c)
	return c
}

func (c *CandidateBuilder) At(hour, minute int) *CandidateBuilder {
	y, m, d := c.Start.Date()
	c.Start = time.Date(y, m, d, hour, minute, 0, 0, c.Start.Location())
	return c
}

func (c *CandidateBuilder) WithoutClient() *CandidateBuilder {
	c.ClientID = nil
	return c
}

func (c *CandidateBuilder) WithResources(ids ...uuid.UUID) *CandidateBuilder {
	c.ResourceIDs = ids
	return c
}

// Build methods
func (c *CandidateBuilder) BuildDomain() booking.Candidate {
	return booking.Candidate{
		TenantID:        c.TenantID,
		ProfessionalID:  c.ProfessionalID,
		ClientID:        c.ClientID,
		Start:           c.Start,
		DurationMinutes: c.DurationMinutes,
		ResourceIDs:     c.ResourceIDs,
		ExcludeID:       c.ExcludeID,
	}
}

func (c *CandidateBuilder) BuildRequestDTO() reqdto.CheckConflictsRequest {
	return reqdto.CheckConflictsRequest{
		TenantID:         c.TenantID,
		ProfessionalID:   c.ProfessionalID,
		ClientID:         c.ClientID,
		StartTime:        c.Start,
		DurationMinutes:  c.DurationMinutes,
		ResourceIDs:      c.ResourceIDs,
		ExcludeBookingID: c.ExcludeID,
	}
}

type ExistingBookingBuilder struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	ClientID       uuid.UUID
	ClientName     string
	Start          time.Time
	End            time.Time
	Status         booking.Status
	ResourceIDs    []uuid.UUID
}

func NewExistingBookingBuilder() *ExistingBookingBuilder {
	return &ExistingBookingBuilder{
		ID:             uuid.New(),
		TenantID:       uuid.New(),
		ProfessionalID: uuid.New(),
		ClientID:       uuid.New(),
		ClientName:     "Jane Doe",
		Start:          BaseTime,
		End:            BaseTime.Add(time.Hour),
		Status:         booking.StatusConfirmed,
	}
}

func (b *ExistingBookingBuilder) With(mutate func(*ExistingBookingBuilder)) *ExistingBookingBuilder {
	mutate(b)
	return b
}

// Between sets the booking to run between two wall-clock times on BaseTime's date.
func (b *ExistingBookingBuilder) Between(startHour, startMinute, endHour, endMinute int) *ExistingBookingBuilder {
	y, m, d := BaseTime.Date()
	b.Start = time.Date(y, m, d, startHour, startMinute, 0, 0, time.UTC)
	b.End = time.Date(y, m, d, endHour, endMinute, 0, 0, time.UTC)
	return b
}

func (b *ExistingBookingBuilder) BuildDomain() booking.ExistingBooking {
	tr, err := booking.NewTimeRange(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return booking.ExistingBooking{
		ID:             b.ID,
		TenantID:       b.TenantID,
		ProfessionalID: b.ProfessionalID,
		ClientID:       b.ClientID,
		ClientName:     b.ClientName,
		TimeRange:      tr,
		Status:         b.Status,
		ResourceIDs:    b.ResourceIDs,
	}
}

type ScheduleBuilder struct {
	ProfessionalID uuid.UUID
	Weekday        time.Weekday
	Enabled        bool
	Start          string
	End            string
	BreakStart     string
	BreakEnd       string
}

// NewScheduleBuilder returns a 09:00-18:00 schedule on BaseTime's weekday without a break.
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		ProfessionalID: uuid.New(),
		Weekday:        BaseTime.Weekday(),
		Enabled:        true,
		Start:          "09:00",
		End:            "18:00",
	}
}

func (s *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(s)
	return s
}

func (s *ScheduleBuilder) WithBreak(start, end string) *ScheduleBuilder {
	s.BreakStart = start
	s.BreakEnd = end
	return s
}

func (s *ScheduleBuilder) BuildDomain() *booking.WorkingSchedule {
	ws := &booking.WorkingSchedule{
		ProfessionalID: s.ProfessionalID,
		Weekday:        s.Weekday,
		Enabled:        s.Enabled,
		Start:          mustTimeOfDay(s.Start),
		End:            mustTimeOfDay(s.End),
	}
	if s.BreakStart != "" && s.BreakEnd != "" {
		bs := mustTimeOfDay(s.BreakStart)
		be := mustTimeOfDay(s.BreakEnd)
		ws.BreakStart = &bs
		ws.BreakEnd = &be
	}
	return ws
}

func mustTimeOfDay(value string) booking.TimeOfDay {
	t, err := booking.ParseTimeOfDay(value)
	if err != nil {
		panic(err)
	}
	return t
}
