//go:build unit

package scheduling_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-scheduling/internal/domain/booking"
	"salon-scheduling/internal/domain/scheduling"
	"salon-scheduling/internal/pkg/clock"
	"salon-scheduling/tests/common/builder"
	schedulingmock "salon-scheduling/tests/mock/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStoreUnavailable = errors.New("store unavailable")

// fixedNow is two days before builder.BaseTime.
var fixedNow = builder.BaseTime.AddDate(0, 0, -2)

type fixture struct {
	ctx       context.Context
	repo      *schedulingmock.MockBookingRepository
	clock     *clock.FixedClock
	checker   *scheduling.ConflictChecker
	policy    scheduling.Policy
	candidate *builder.CandidateBuilder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := schedulingmock.NewMockBookingRepository(ctrl)
	clk := clock.NewFixedClock(fixedNow)
	return &fixture{
		ctx:       context.Background(),
		repo:      repo,
		clock:     clk,
		checker:   scheduling.NewConflictChecker(repo, clk),
		policy:    scheduling.DefaultPolicy(),
		candidate: builder.NewCandidateBuilder(),
	}
}

// quiet registers empty answers for every store query not overridden by the test.
func (f *fixture) quiet(schedule *booking.WorkingSchedule) {
	f.repo.EXPECT().FindOverlappingByProfessional(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.repo.EXPECT().FindOverlappingByClient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.repo.EXPECT().FindOverlappingTimeBlocks(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.repo.EXPECT().FindWorkingSchedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(schedule, nil).AnyTimes()
	f.repo.EXPECT().FindOverlappingByResources(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func kinds(result *scheduling.Result) []scheduling.Kind {
	out := make([]scheduling.Kind, 0, len(result.Conflicts))
	for _, c := range result.Conflicts {
		out = append(out, c.Kind)
	}
	return out
}

func TestConflictChecker_Clear(t *testing.T) {
	f := newFixture(t)
	f.quiet(builder.NewScheduleBuilder().BuildDomain())

	result, err := f.checker.Check(f.ctx, f.candidate.BuildDomain(), f.policy)

	require.NoError(t, err)
	assert.False(t, result.HasConflict())
	assert.True(t, result.CanOverride())
	assert.NotNil(t, result.Conflicts)
}

func TestConflictChecker_ProfessionalBusy(t *testing.T) {
	t.Run("partial overlap is a non-overridable error", func(t *testing.T) {
		f := newFixture(t)
		candidate := f.candidate.At(10, 30).BuildDomain()
		existing := builder.NewExistingBookingBuilder().Between(10, 0, 11, 0).With(func(b *builder.ExistingBookingBuilder) {
			b.ProfessionalID = candidate.ProfessionalID
		}).BuildDomain()

		f.repo.EXPECT().
			FindOverlappingByProfessional(gomock.Any(), candidate.TenantID, candidate.ProfessionalID, gomock.Any(), nil).
			Return([]booking.ExistingBooking{existing}, nil)
		f.quiet(builder.NewScheduleBuilder().BuildDomain())

		result, err := f.checker.Check(f.ctx, candidate, f.policy)

		require.NoError(t, err)
		assert.True(t, result.HasConflict())
		assert.False(t, result.CanOverride())
		require.Equal(t, []scheduling.Kind{scheduling.KindProfessionalBusy}, kinds(result))

		c := result.Conflicts[0]
		assert.Equal(t, scheduling.SeverityError, c.Severity)
		require.NotNil(t, c.BookingID)
		assert.Equal(t, existing.ID, *c.BookingID)
		assert.Contains(t, c.Description, "Jane Doe")
		assert.Contains(t, c.Description, "10:00 to 11:00")
	})

	t.Run("one conflict per overlapping booking in start order", func(t *testing.T) {
		f := newFixture(t)
		candidate := f.candidate.At(10, 0).With(func(b *builder.CandidateBuilder) { b.DurationMinutes = 120 }).BuildDomain()
		later := builder.NewExistingBookingBuilder().Between(11, 0, 11, 30).BuildDomain()
		earlier := builder.NewExistingBookingBuilder().Between(10, 0, 10, 30).BuildDomain()

		f.repo.EXPECT().FindOverlappingByProfessional(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]booking.ExistingBooking{later, earlier}, nil)
		f.quiet(builder.NewScheduleBuilder().BuildDomain())

		result, err := f.checker.Check(f.ctx, candidate, f.policy)

		require.NoError(t, err)
		require.Len(t, result.Conflicts, 2)
		assert.Equal(t, earlier.ID, *result.Conflicts[0].BookingID)
		assert.Equal(t, later.ID, *result.Conflicts[1].BookingID)
	})

	t.Run("touching, terminal and excluded bookings are ignored", func(t *testing.T) {
		f := newFixture(t)
		editing := uuid.New()
		candidate := f.candidate.At(10, 0).With(func(b *builder.CandidateBuilder) { b.ExcludeID = &editing }).BuildDomain()

		touching := builder.NewExistingBookingBuilder().Between(11, 0, 12, 0).BuildDomain()
		cancelled := builder.NewExistingBookingBuilder().Between(10, 0, 11, 0).With(func(b *builder.ExistingBookingBuilder) {
			b.Status = booking.StatusCancelled
		}).BuildDomain()
		self := builder.NewExistingBookingBuilder().Between(10, 0, 11, 0).With(func(b *builder.ExistingBookingBuilder) {
			b.ID = editing
		}).BuildDomain()

		f.repo.EXPECT().FindOverlappingByProfessional(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), &editing).
			Return([]booking.ExistingBooking{touching, cancelled, self}, nil)
		f.quiet(builder.NewScheduleBuilder().BuildDomain())

		result, err := f.checker.Check(f.ctx, candidate, f.policy)

		require.NoError(t, err)
		assert.False(t, result.HasConflict())
	})
}

func TestConflictChecker_ClientBusy(t *testing.T) {
	clash := builder.NewExistingBookingBuilder().Between(10, 0, 11, 0).BuildDomain()

	t.Run("warning by default", func(t *testing.T) {
		f := newFixture(t)
		candidate := f.candidate.BuildDomain()

		f.repo.EXPECT().FindOverlappingByClient(gomock.Any(), candidate.TenantID, *candidate.ClientID, gomock.Any(), gomock.Any()).
			Return([]booking.ExistingBooking{clash}, nil)
		f.quiet(builder.NewScheduleBuilder().BuildDomain())

		result, err := f.checker.Check(f.ctx, candidate, f.policy)

		require.NoError(t, err)
		require.Equal(t, []scheduling.Kind{scheduling.KindClientBusy}, kinds(result))
		assert.Equal(t, scheduling.SeverityWarning, result.Conflicts[0].Severity)
		assert.True(t, result.CanOverride(), "warnings never block an override")
	})

	t.Run("error when the policy says so", func(t *testing.T) {
		f := newFixture(t)
		f.policy.ClientDoubleBookingSeverity = scheduling.SeverityError

		f.repo.EXPECT().FindOverlappingByClient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]booking.ExistingBooking{clash}, nil)
		f.quiet(builder.NewScheduleBuilder().BuildDomain())

		result, err := f.checker.Check(f.ctx, f.candidate.BuildDomain(), f.policy)

		require.NoError(t, err)
		assert.Equal(t, scheduling.SeverityError, result.Conflicts[0].Severity)
		assert.False(t, result.CanOverride())
	})

	t.Run("skipped without a client", func(t *testing.T) {
		f := newFixture(t)
		// no FindOverlappingByClient expectation: any call fails the test
		f.repo.EXPECT().FindOverlappingByProfessional(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().FindOverlappingTimeBlocks(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().FindWorkingSchedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(builder.NewScheduleBuilder().BuildDomain(), nil)

		result, err := f.checker.Check(f.ctx, f.candidate.WithoutClient().BuildDomain(), f.policy)

		require.NoError(t, err)
		assert.False(t, result.HasConflict())
	})
}

func TestConflictChecker_BlockedTime(t *testing.T) {
	f := newFixture(t)
	reason := "Training"
	tr, err := booking.NewTimeRange(builder.BaseTime.Add(-30*time.Minute), builder.BaseTime.Add(30*time.Minute))
	require.NoError(t, err)

	f.repo.EXPECT().FindOverlappingTimeBlocks(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]booking.TimeBlock{{ID: uuid.New(), TimeRange: tr, Reason: &reason}}, nil)
	f.quiet(builder.NewScheduleBuilder().BuildDomain())

	result, err := f.checker.Check(f.ctx, f.candidate.BuildDomain(), f.policy)

	require.NoError(t, err)
	require.Equal(t, []scheduling.Kind{scheduling.KindBlockedTime}, kinds(result))
	assert.Equal(t, scheduling.SeverityError, result.Conflicts[0].Severity)
	assert.Contains(t, result.Conflicts[0].Description, ": Training")
	assert.True(t, result.CanOverride())
}

func TestConflictChecker_WorkingHours(t *testing.T) {
	t.Run("no schedule for the day", func(t *testing.T) {
		f := newFixture(t)
		f.quiet(nil)

		result, err := f.checker.Check(f.ctx, f.candidate.BuildDomain(), f.policy)

		require.NoError(t, err)
		assert.True(t, result.HasConflict())
		require.Equal(t, []scheduling.Kind{scheduling.KindOutsideWorkingHours}, kinds(result))
		assert.Equal(t, scheduling.SeverityError, result.Conflicts[0].Severity)
		assert.Contains(t, result.Conflicts[0].Description, "Wednesday")
		assert.True(t, result.CanOverride())
	})

	t.Run("disabled day behaves like a missing one", func(t *testing.T) {
		f := newFixture(t)
		f.quiet(builder.NewScheduleBuilder().With(func(s *builder.ScheduleBuilder) { s.Enabled = false }).BuildDomain())

		result, err := f.checker.Check(f.ctx, f.candidate.BuildDomain(), f.policy)

		require.NoError(t, err)
		assert.Equal(t, []scheduling.Kind{scheduling.KindOutsideWorkingHours}, kinds(result))
	})

	t.Run("lunch break inside working hours", func(t *testing.T) {
		f := newFixture(t)
		f.quiet(builder.NewScheduleBuilder().WithBreak("12:00", "13:00").BuildDomain())

		result, err := f.checker.Check(f.ctx, f.candidate.At(12, 30).BuildDomain(), f.policy)

		require.NoError(t, err)
		require.Len(t, result.Conflicts, 1)
		c := result.Conflicts[0]
		assert.Equal(t, scheduling.KindOutsideWorkingHours, c.Kind)
		assert.Equal(t, "Overlaps break time (12:00-13:00)", c.Description)
		require.NotNil(t, c.TimeRange)
		assert.Equal(t, time.Hour, c.TimeRange.End().Sub(c.TimeRange.Start()))
	})

	t.Run("ending at the break start is fine", func(t *testing.T) {
		f := newFixture(t)
		f.quiet(builder.NewScheduleBuilder().WithBreak("12:00", "13:00").BuildDomain())

		result, err := f.checker.Check(f.ctx, f.candidate.At(11, 0).BuildDomain(), f.policy)

		require.NoError(t, err)
		assert.False(t, result.HasConflict())
	})

	t.Run("hours violation short-circuits the break", func(t *testing.T) {
		f := newFixture(t)
		f.quiet(builder.NewScheduleBuilder().WithBreak("12:00", "13:00").With(func(s *builder.ScheduleBuilder) {
			s.End = "12:30"
		}).BuildDomain())

		result, err := f.checker.Check(f.ctx, f.candidate.At(12, 0).BuildDomain(), f.policy)

		require.NoError(t, err)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, "Outside working hours (09:00-12:30)", result.Conflicts[0].Description)
	})

	t.Run("weekday and hours follow the policy location", func(t *testing.T) {
		f := newFixture(t)
		tokyo := time.FixedZone("JST", 9*60*60)
		f.policy.Location = tokyo

		// 2030-01-09 01:00 UTC is 10:00 on the same Wednesday in Tokyo
		candidate := f.candidate.At(1, 0).BuildDomain()
		f.clock.Set(candidate.Start.AddDate(0, 0, -2))

		f.repo.EXPECT().FindWorkingSchedule(gomock.Any(), gomock.Any(), gomock.Any(), time.Wednesday).
			Return(builder.NewScheduleBuilder().BuildDomain(), nil)
		f.quiet(nil)

		result, err := f.checker.Check(f.ctx, candidate, f.policy)

		require.NoError(t, err)
		assert.False(t, result.HasConflict())
	})

	t.Run("malformed schedule is an error", func(t *testing.T) {
		f := newFixture(t)
		f.quiet(builder.NewScheduleBuilder().With(func(s *builder.ScheduleBuilder) {
			s.Start = "18:00"
			s.End = "09:00"
		}).BuildDomain())

		_, err := f.checker.Check(f.ctx, f.candidate.BuildDomain(), f.policy)

		require.ErrorIs(t, err, booking.ErrInvalidSchedule)
	})
}

func TestConflictChecker_Resources(t *testing.T) {
	f := newFixture(t)
	chair, sink := uuid.New(), uuid.New()
	candidate := f.candidate.WithResources(chair, sink).BuildDomain()
	existing := builder.NewExistingBookingBuilder().Between(9, 30, 10, 30).With(func(b *builder.ExistingBookingBuilder) {
		b.ResourceIDs = []uuid.UUID{sink, uuid.New()}
	}).BuildDomain()

	f.repo.EXPECT().FindOverlappingByResources(gomock.Any(), candidate.TenantID, []uuid.UUID{chair, sink}, gomock.Any(), nil).
		Return([]booking.ExistingBooking{existing}, nil)
	f.quiet(builder.NewScheduleBuilder().BuildDomain())

	result, err := f.checker.Check(f.ctx, candidate, f.policy)

	require.NoError(t, err)
	require.Equal(t, []scheduling.Kind{scheduling.KindResourceUnavailable}, kinds(result))
	c := result.Conflicts[0]
	require.NotNil(t, c.ResourceID)
	assert.Equal(t, sink, *c.ResourceID)
	assert.Equal(t, existing.ID, *c.BookingID)
	assert.False(t, result.CanOverride())
}

func TestConflictChecker_DuplicateResourceIDs(t *testing.T) {
	f := newFixture(t)
	sink := uuid.New()
	candidate := f.candidate.WithResources(sink, sink).BuildDomain()
	existing := builder.NewExistingBookingBuilder().Between(9, 30, 10, 30).With(func(b *builder.ExistingBookingBuilder) {
		b.ResourceIDs = []uuid.UUID{sink}
	}).BuildDomain()

	f.repo.EXPECT().FindOverlappingByResources(gomock.Any(), candidate.TenantID, []uuid.UUID{sink}, gomock.Any(), nil).
		Return([]booking.ExistingBooking{existing}, nil)
	f.quiet(builder.NewScheduleBuilder().BuildDomain())

	result, err := f.checker.Check(f.ctx, candidate, f.policy)

	require.NoError(t, err)
	require.Equal(t, []scheduling.Kind{scheduling.KindResourceUnavailable}, kinds(result))
	assert.Equal(t, sink, *result.Conflicts[0].ResourceID)
}

func TestConflictChecker_AdvanceWindow(t *testing.T) {
	cases := []struct {
		name  string
		now   time.Time
		want  []scheduling.Kind
		match string
	}{
		{name: "exactly the minimum notice", now: builder.BaseTime.Add(-time.Hour), want: []scheduling.Kind{}},
		{name: "too soon", now: builder.BaseTime.Add(-59 * time.Minute), want: []scheduling.Kind{scheduling.KindInsufficientAdvanceNotice}, match: "at least 60 minutes"},
		{name: "start in the past", now: builder.BaseTime.Add(time.Hour), want: []scheduling.Kind{scheduling.KindInsufficientAdvanceNotice}},
		{name: "exactly the maximum", now: builder.BaseTime.Add(-scheduling.DefaultMaxAdvance), want: []scheduling.Kind{}},
		{name: "too far ahead", now: builder.BaseTime.Add(-scheduling.DefaultMaxAdvance - time.Minute), want: []scheduling.Kind{scheduling.KindExceedsMaxAdvance}, match: "43200 minutes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.clock.Set(tc.now)
			f.quiet(builder.NewScheduleBuilder().BuildDomain())

			result, err := f.checker.Check(f.ctx, f.candidate.BuildDomain(), f.policy)

			require.NoError(t, err)
			assert.Equal(t, tc.want, kinds(result))
			if tc.match != "" {
				assert.Contains(t, result.Conflicts[0].Description, tc.match)
				assert.True(t, result.CanOverride())
			}
		})
	}

	t.Run("zero maximum disables the upper bound", func(t *testing.T) {
		f := newFixture(t)
		f.policy.MaxAdvance = 0
		f.clock.Set(builder.BaseTime.AddDate(-5, 0, 0))
		f.quiet(builder.NewScheduleBuilder().BuildDomain())

		result, err := f.checker.Check(f.ctx, f.candidate.BuildDomain(), f.policy)

		require.NoError(t, err)
		assert.False(t, result.HasConflict())
	})
}

func TestConflictChecker_OrderAcrossChecks(t *testing.T) {
	f := newFixture(t)
	f.clock.Set(builder.BaseTime.Add(-10 * time.Minute))
	chair := uuid.New()
	candidate := f.candidate.WithResources(chair).BuildDomain()
	busy := builder.NewExistingBookingBuilder().With(func(b *builder.ExistingBookingBuilder) {
		b.ResourceIDs = []uuid.UUID{chair}
	}).BuildDomain()

	f.repo.EXPECT().FindOverlappingByProfessional(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]booking.ExistingBooking{busy}, nil)
	f.repo.EXPECT().FindOverlappingByClient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]booking.ExistingBooking{busy}, nil)
	f.repo.EXPECT().FindOverlappingByResources(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]booking.ExistingBooking{busy}, nil)
	f.quiet(nil)

	result, err := f.checker.Check(f.ctx, candidate, f.policy)

	require.NoError(t, err)
	assert.Equal(t, []scheduling.Kind{
		scheduling.KindProfessionalBusy,
		scheduling.KindClientBusy,
		scheduling.KindOutsideWorkingHours,
		scheduling.KindResourceUnavailable,
		scheduling.KindInsufficientAdvanceNotice,
	}, kinds(result))
	assert.Equal(t, 4, result.CountBySeverity(scheduling.SeverityError))
	assert.Equal(t, 1, result.CountBySeverity(scheduling.SeverityWarning))
}

func TestConflictChecker_Errors(t *testing.T) {
	t.Run("invalid candidate", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.checker.Check(f.ctx, f.candidate.With(func(b *builder.CandidateBuilder) { b.DurationMinutes = 0 }).BuildDomain(), f.policy)

		require.ErrorIs(t, err, booking.ErrInvalidCandidate)
	})

	t.Run("store failure is returned, not reported as a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindOverlappingTimeBlocks(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errStoreUnavailable)
		f.quiet(builder.NewScheduleBuilder().BuildDomain())

		result, err := f.checker.Check(f.ctx, f.candidate.BuildDomain(), f.policy)

		require.ErrorIs(t, err, errStoreUnavailable)
		assert.Nil(t, result)
	})
}

func TestPolicy_Validate(t *testing.T) {
	assert.NoError(t, scheduling.DefaultPolicy().Validate())

	p := scheduling.DefaultPolicy()
	p.MaxAdvance = 0
	assert.NoError(t, p.Validate())

	p = scheduling.DefaultPolicy()
	p.MinAdvance = -time.Minute
	assert.ErrorIs(t, p.Validate(), scheduling.ErrInvalidPolicy)

	p = scheduling.DefaultPolicy()
	p.MaxAdvance = 30 * time.Minute
	assert.ErrorIs(t, p.Validate(), scheduling.ErrInvalidPolicy)

	p = scheduling.DefaultPolicy()
	p.ClientDoubleBookingSeverity = "INFO"
	assert.ErrorIs(t, p.Validate(), scheduling.ErrInvalidPolicy)
}
