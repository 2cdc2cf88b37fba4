package request

import (
	"time"

	"salon-scheduling/internal/domain/booking"
	"salon-scheduling/internal/domain/recurrence"
	"salon-scheduling/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckConflictsRequest struct {
	TenantID         uuid.UUID   `json:"tenant_id" binding:"required"`
	ProfessionalID   uuid.UUID   `json:"professional_id" binding:"required"`
	ClientID         *uuid.UUID  `json:"client_id,omitempty"`
	StartTime        time.Time   `json:"start_time" binding:"required"`
	DurationMinutes  int         `json:"duration_minutes" binding:"required,min=1,max=1440"`
	ResourceIDs      []uuid.UUID `json:"resource_ids,omitempty" binding:"omitempty,max=20,unique"`
	ExcludeBookingID *uuid.UUID  `json:"exclude_booking_id,omitempty"`
}

func (r CheckConflictsRequest) ToDomain() booking.Candidate {
	return booking.Candidate{
		TenantID:        r.TenantID,
		ProfessionalID:  r.ProfessionalID,
		ClientID:        r.ClientID,
		Start:           r.StartTime,
		DurationMinutes: r.DurationMinutes,
		ResourceIDs:     r.ResourceIDs,
		ExcludeID:       r.ExcludeBookingID,
	}
}

// RecurrencePatternRequest only checks the shape of a pattern. Business rules
// (bounds, ceiling, future end date) are reported by the recurrence engine so
// the validate endpoint can return them as data.
type RecurrencePatternRequest struct {
	Type string `json:"type" binding:"required,recurrence_type"`
	// Interval defaults to 1 when omitted.
	Interval   *int       `json:"interval,omitempty"`
	Count      *int       `json:"count,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	DaysOfWeek []int      `json:"days_of_week,omitempty" binding:"omitempty,max=7,dive,weekday"`
}

func (r RecurrencePatternRequest) ToDomain() recurrence.Pattern {
	t, _ := recurrence.ParseType(r.Type)
	p := recurrence.Pattern{
		Type:     t,
		Interval: 1,
		Count:    r.Count,
		EndDate:  r.EndDate,
	}
	if r.Interval != nil {
		p.Interval = *r.Interval
	}
	for _, d := range r.DaysOfWeek {
		p.DaysOfWeek = append(p.DaysOfWeek, time.Weekday(d))
	}
	return p
}

type CheckSeriesRequest struct {
	CheckConflictsRequest
	Recurrence    RecurrencePatternRequest `json:"recurrence"`
	ExcludedDates []time.Time              `json:"excluded_dates,omitempty" binding:"omitempty,max=52"`
}

func (r CheckSeriesRequest) ToSeriesRequest() queries.SeriesRequest {
	return queries.SeriesRequest{
		Template:      r.CheckConflictsRequest.ToDomain(),
		Pattern:       r.Recurrence.ToDomain(),
		ExcludedDates: r.ExcludedDates,
	}
}

type PreviewRecurrenceRequest struct {
	StartTime  time.Time                `json:"start_time" binding:"required"`
	Recurrence RecurrencePatternRequest `json:"recurrence"`
	// Timezone is an IANA zone name. Without it the start's UTC offset is used
	// as given, which drifts across DST changes.
	Timezone      string      `json:"timezone,omitempty" binding:"omitempty,timezone"`
	ExcludedDates []time.Time `json:"excluded_dates,omitempty" binding:"omitempty,max=52"`
}

// Start returns the start time in the requested zone.
func (r PreviewRecurrenceRequest) Start() time.Time {
	if r.Timezone == "" {
		return r.StartTime
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return r.StartTime
	}
	return r.StartTime.In(loc)
}

type ValidateRecurrenceRequest struct {
	Recurrence RecurrencePatternRequest `json:"recurrence"`
}
