package response

import (
	"time"

	"salon-scheduling/internal/domain/recurrence"
	"salon-scheduling/internal/domain/scheduling"
	"salon-scheduling/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ConflictResponse struct {
	Kind        string     `json:"kind"`
	Severity    string     `json:"severity"`
	Description string     `json:"description"`
	BookingID   *string    `json:"booking_id,omitempty"`
	ResourceID  *string    `json:"resource_id,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

type ConflictCheckResponse struct {
	HasConflict  bool               `json:"has_conflict"`
	CanOverride  bool               `json:"can_override"`
	ErrorCount   int                `json:"error_count"`
	WarningCount int                `json:"warning_count"`
	Conflicts    []ConflictResponse `json:"conflicts"`
}

type OccurrenceResponse struct {
	Date   time.Time `json:"date"`
	Index  int       `json:"index"`
	IsLast bool      `json:"is_last"`
}

type OccurrenceCheckResponse struct {
	OccurrenceResponse
	Result ConflictCheckResponse `json:"result"`
}

type SeriesCheckResponse struct {
	HasConflict bool                      `json:"has_conflict"`
	CanOverride bool                      `json:"can_override"`
	Occurrences []OccurrenceCheckResponse `json:"occurrences"`
}

type RecurrencePreviewResponse struct {
	Description string               `json:"description"`
	EndDate     *time.Time           `json:"end_date,omitempty"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

type ValidateRecurrenceResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func FromConflictResult(r *scheduling.Result) ConflictCheckResponse {
	res := ConflictCheckResponse{
		HasConflict:  r.HasConflict(),
		CanOverride:  r.CanOverride(),
		ErrorCount:   r.CountBySeverity(scheduling.SeverityError),
		WarningCount: r.CountBySeverity(scheduling.SeverityWarning),
		Conflicts:    make([]ConflictResponse, len(r.Conflicts)),
	}
	for i, c := range r.Conflicts {
		item := ConflictResponse{
			Kind:        c.Kind.String(),
			Severity:    c.Severity.String(),
			Description: c.Description,
		}
		if c.BookingID != nil {
			id := c.BookingID.String()
			item.BookingID = &id
		}
		if c.ResourceID != nil {
			id := c.ResourceID.String()
			item.ResourceID = &id
		}
		if c.TimeRange != nil {
			start, end := c.TimeRange.Start(), c.TimeRange.End()
			item.StartTime = &start
			item.EndTime = &end
		}
		res.Conflicts[i] = item
	}
	return res
}

func FromOccurrences(occurrences []recurrence.Occurrence) ([]OccurrenceResponse, error) {
	res := make([]OccurrenceResponse, 0, len(occurrences))
	if err := copier.Copy(&res, &occurrences); err != nil {
		return nil, err
	}
	return res, nil
}

func FromSeriesCheck(s *queries.SeriesCheckResult) (*SeriesCheckResponse, error) {
	res := &SeriesCheckResponse{
		HasConflict: s.HasConflict,
		CanOverride: s.CanOverride,
		Occurrences: make([]OccurrenceCheckResponse, len(s.Occurrences)),
	}
	for i, oc := range s.Occurrences {
		var occ OccurrenceResponse
		if err := copier.Copy(&occ, &oc.Occurrence); err != nil {
			return nil, err
		}
		res.Occurrences[i] = OccurrenceCheckResponse{
			OccurrenceResponse: occ,
			Result:             FromConflictResult(oc.Result),
		}
	}
	return res, nil
}

func FromRecurrencePreview(p *queries.RecurrencePreview) (*RecurrencePreviewResponse, error) {
	occurrences, err := FromOccurrences(p.Occurrences)
	if err != nil {
		return nil, err
	}
	return &RecurrencePreviewResponse{
		Description: p.Description,
		EndDate:     p.EndDate,
		Occurrences: occurrences,
	}, nil
}

func FromValidation(v recurrence.ValidationResult) ValidateRecurrenceResponse {
	return ValidateRecurrenceResponse{
		Valid: v.Valid,
		Error: v.Message(),
	}
}
