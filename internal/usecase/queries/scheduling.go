package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"salon-scheduling/internal/domain/booking"
	"salon-scheduling/internal/domain/recurrence"
	"salon-scheduling/internal/domain/scheduling"
	"salon-scheduling/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=scheduling.go -destination=../../../tests/mock/queries/mock_scheduling.go -package=mock_queries

var (
	ErrInvalidCandidate        = errs.New("invalid booking candidate")
	ErrInvalidPattern          = errs.New("invalid recurrence pattern")
	ErrPolicyUnavailable       = errs.New("scheduling policy unavailable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// seriesConcurrency bounds how many occurrences are checked at once.
const seriesConcurrency = 4

// PolicyProvider resolves the scheduling policy in force for a tenant.
type PolicyProvider interface {
	PolicyFor(ctx context.Context, tenantID uuid.UUID) (scheduling.Policy, error)
}

type SeriesRequest struct {
	Template      booking.Candidate
	Pattern       recurrence.Pattern
	ExcludedDates []time.Time
}

type OccurrenceCheck struct {
	Occurrence recurrence.Occurrence
	Result     *scheduling.Result
}

type SeriesCheckResult struct {
	Occurrences []OccurrenceCheck
	HasConflict bool
	// CanOverride holds only when every occurrence can be overridden.
	CanOverride bool
}

type RecurrencePreview struct {
	Occurrences []recurrence.Occurrence
	Description string
	EndDate     *time.Time
}

type SchedulingQueries interface {
	CheckConflicts(ctx context.Context, candidate booking.Candidate) (*scheduling.Result, error)
	CheckSeries(ctx context.Context, req SeriesRequest) (*SeriesCheckResult, error)
	PreviewRecurrence(ctx context.Context, start time.Time, pattern recurrence.Pattern, excluded []time.Time) (*RecurrencePreview, error)
	ValidateRecurrence(ctx context.Context, pattern recurrence.Pattern) recurrence.ValidationResult
}

type schedulingQueriesImpl struct {
	checker  *scheduling.ConflictChecker
	engine   *recurrence.Engine
	policies PolicyProvider
}

func NewSchedulingQueries(checker *scheduling.ConflictChecker, engine *recurrence.Engine, policies PolicyProvider) SchedulingQueries {
	return &schedulingQueriesImpl{
		checker:  checker,
		engine:   engine,
		policies: policies,
	}
}

func (q *schedulingQueriesImpl) CheckConflicts(ctx context.Context, candidate booking.Candidate) (*scheduling.Result, error) {
	if err := candidate.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidCandidate)
	}
	policy, err := q.policyFor(ctx, candidate.TenantID)
	if err != nil {
		return nil, err
	}

	result, err := q.check(ctx, candidate, policy)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "conflict check completed",
		"tenant_id", candidate.TenantID,
		"professional_id", candidate.ProfessionalID,
		"conflicts", len(result.Conflicts),
		"can_override", result.CanOverride(),
	)
	return result, nil
}

func (q *schedulingQueriesImpl) CheckSeries(ctx context.Context, req SeriesRequest) (*SeriesCheckResult, error) {
	if err := req.Template.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidCandidate)
	}
	if v := q.engine.ValidatePattern(req.Pattern); !v.Valid {
		return nil, errs.Mark(v.Err, ErrInvalidPattern)
	}
	policy, err := q.policyFor(ctx, req.Template.TenantID)
	if err != nil {
		return nil, err
	}

	// Occurrences step in the salon's zone so wall-clock time survives DST
	// changes, and exclusions match by the salon's calendar date.
	start := req.Template.Start
	if policy.Location != nil {
		start = start.In(policy.Location)
	}
	occurrences := q.engine.ExpandWithExclusions(start, req.Pattern, req.ExcludedDates)
	checks := make([]OccurrenceCheck, len(occurrences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seriesConcurrency)
	for i, occ := range occurrences {
		g.Go(func() error {
			result, err := q.check(gctx, req.Template.At(occ.Date), policy)
			if err != nil {
				return err
			}
			checks[i] = OccurrenceCheck{Occurrence: occ, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	series := &SeriesCheckResult{Occurrences: checks, CanOverride: true}
	for _, c := range checks {
		series.HasConflict = series.HasConflict || c.Result.HasConflict()
		series.CanOverride = series.CanOverride && c.Result.CanOverride()
	}
	slog.DebugContext(ctx, "series conflict check completed",
		"tenant_id", req.Template.TenantID,
		"occurrences", len(checks),
		"has_conflict", series.HasConflict,
	)
	return series, nil
}

// PreviewRecurrence steps in start's own location. Callers wanting a salon's
// calendar pass a start already moved into that zone.
func (q *schedulingQueriesImpl) PreviewRecurrence(ctx context.Context, start time.Time, pattern recurrence.Pattern, excluded []time.Time) (*RecurrencePreview, error) {
	if v := q.engine.ValidatePattern(pattern); !v.Valid {
		return nil, errs.Mark(v.Err, ErrInvalidPattern)
	}
	occurrences := q.engine.ExpandWithExclusions(start, pattern, excluded)

	preview := &RecurrencePreview{
		Occurrences: occurrences,
		Description: q.engine.Description(pattern),
		EndDate:     q.engine.CalculateEndDate(start, pattern),
	}
	return preview, nil
}

func (q *schedulingQueriesImpl) ValidateRecurrence(_ context.Context, pattern recurrence.Pattern) recurrence.ValidationResult {
	return q.engine.ValidatePattern(pattern)
}

func (q *schedulingQueriesImpl) policyFor(ctx context.Context, tenantID uuid.UUID) (scheduling.Policy, error) {
	policy, err := q.policies.PolicyFor(ctx, tenantID)
	if err != nil {
		return scheduling.Policy{}, errs.Mark(err, ErrPolicyUnavailable)
	}
	return policy, nil
}

func (q *schedulingQueriesImpl) check(ctx context.Context, candidate booking.Candidate, policy scheduling.Policy) (*scheduling.Result, error) {
	result, err := q.checker.Check(ctx, candidate, policy)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidCandidate) {
			return nil, errs.Mark(err, ErrInvalidCandidate)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result, nil
}
