//go:build e2e

package scheduling_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"salon-scheduling/internal/domain/booking"
	resdto "salon-scheduling/internal/handler/dto/response"
	"salon-scheduling/tests/common/builder"
	"salon-scheduling/tests/common/dbtest"
	"salon-scheduling/tests/common/httptest"
	"salon-scheduling/tests/common/testutil"
	"salon-scheduling/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	conflictsURL = "/api/scheduling/conflicts"
	seriesURL    = "/api/scheduling/series/conflicts"
	previewURL   = "/api/scheduling/recurrences/preview"
)

type SchedulingSuite struct {
	e2e.SharedSuite
}

func TestSchedulingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SchedulingSuite))
}

// salon seeds a professional working 09:00-18:00 with a 12:00-13:00 break every day.
type salon struct {
	tenantID       uuid.UUID
	professionalID uuid.UUID
}

func (s *SchedulingSuite) seedSalon() salon {
	t := s.T()
	schedule := builder.NewScheduleBuilder().WithBreak("12:00", "13:00").BuildDomain()
	tenantID := uuid.New()
	dbtest.UpsertWeek(t, s.DB, tenantID, schedule)
	return salon{tenantID: tenantID, professionalID: schedule.ProfessionalID}
}

func (s *SchedulingSuite) candidate(sl salon) *builder.CandidateBuilder {
	return builder.NewCandidateBuilder().With(func(c *builder.CandidateBuilder) {
		c.TenantID = sl.tenantID
		c.ProfessionalID = sl.professionalID
	})
}

func (s *SchedulingSuite) existing(sl salon) *builder.ExistingBookingBuilder {
	return builder.NewExistingBookingBuilder().With(func(b *builder.ExistingBookingBuilder) {
		b.TenantID = sl.tenantID
		b.ProfessionalID = sl.professionalID
	})
}

func kinds(res resdto.ConflictCheckResponse) []string {
	out := make([]string, 0, len(res.Conflicts))
	for _, c := range res.Conflicts {
		out = append(out, c.Kind)
	}
	return out
}

// =============================================================================
// TestCheckConflicts
// =============================================================================

func (s *SchedulingSuite) TestCheckConflicts() {
	s.Run("free slot inside working hours has no conflicts", func() {
		t := s.T()
		sl := s.seedSalon()
		reqBody := s.candidate(sl).At(10, 0).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, reqBody)

		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.False(t, res.HasConflict)
		require.True(t, res.CanOverride)
		require.Empty(t, res.Conflicts)
	})

	s.Run("professional busy is reported once per overlapping booking", func() {
		t := s.T()
		sl := s.seedSalon()
		existing := s.existing(sl).Between(10, 30, 11, 30).BuildDomain()
		dbtest.InsertBooking(t, s.DB, existing)
		reqBody := s.candidate(sl).At(10, 0).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, reqBody)

		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, []string{"PROFESSIONAL_BUSY"}, kinds(res))
		require.False(t, res.CanOverride)
		require.NotNil(t, res.Conflicts[0].BookingID)
		require.Equal(t, existing.ID.String(), *res.Conflicts[0].BookingID)
		require.Contains(t, res.Conflicts[0].Description, "Jane Doe")
	})

	s.Run("cancelled and adjacent bookings do not conflict", func() {
		t := s.T()
		sl := s.seedSalon()
		dbtest.InsertBooking(t, s.DB, s.existing(sl).Between(10, 0, 11, 0).With(func(b *builder.ExistingBookingBuilder) {
			b.Status = booking.StatusCancelled
		}).BuildDomain())
		dbtest.InsertBooking(t, s.DB, s.existing(sl).Between(11, 0, 12, 0).BuildDomain())
		reqBody := s.candidate(sl).At(10, 0).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, reqBody)

		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Empty(t, res.Conflicts)
	})

	s.Run("rescheduling excludes the booking being moved", func() {
		t := s.T()
		sl := s.seedSalon()
		existing := s.existing(sl).Between(10, 0, 11, 0).BuildDomain()
		dbtest.InsertBooking(t, s.DB, existing)
		reqBody := s.candidate(sl).At(10, 30).With(func(c *builder.CandidateBuilder) {
			c.ExcludeID = &existing.ID
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, reqBody)

		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Empty(t, res.Conflicts)
	})

	s.Run("client double booking is a warning by default", func() {
		t := s.T()
		sl := s.seedSalon()
		clientID := uuid.New()
		// Another professional in the same salon.
		dbtest.InsertBooking(t, s.DB, builder.NewExistingBookingBuilder().With(func(b *builder.ExistingBookingBuilder) {
			b.TenantID = sl.tenantID
			b.ClientID = clientID
		}).BuildDomain())
		reqBody := s.candidate(sl).At(10, 0).With(func(c *builder.CandidateBuilder) {
			c.ClientID = &clientID
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, reqBody)

		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, []string{"CLIENT_BUSY"}, kinds(res))
		require.Equal(t, "WARNING", res.Conflicts[0].Severity)
		require.True(t, res.CanOverride)
		require.Equal(t, 1, res.WarningCount)
	})

	s.Run("break and time block are both reported", func() {
		t := s.T()
		sl := s.seedSalon()
		reason := "training"
		start := time.Date(2030, time.January, 9, 12, 30, 0, 0, time.UTC)
		tr, err := booking.NewTimeRange(start, start.Add(2*time.Hour))
		require.NoError(t, err)
		dbtest.InsertTimeBlock(t, s.DB, sl.tenantID, booking.TimeBlock{
			ID:             uuid.New(),
			ProfessionalID: sl.professionalID,
			TimeRange:      tr,
			Reason:         &reason,
		})
		reqBody := s.candidate(sl).At(12, 0).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, reqBody)

		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.ElementsMatch(t, []string{"BLOCKED_TIME", "OUTSIDE_WORKING_HOURS"}, kinds(res))
		require.True(t, res.CanOverride)
		require.Equal(t, 2, res.ErrorCount)
	})

	s.Run("shared resource in use is reported per booking", func() {
		t := s.T()
		sl := s.seedSalon()
		chair := uuid.New()
		dbtest.InsertBooking(t, s.DB, builder.NewExistingBookingBuilder().With(func(b *builder.ExistingBookingBuilder) {
			b.TenantID = sl.tenantID
			b.ResourceIDs = []uuid.UUID{chair}
		}).BuildDomain())
		reqBody := s.candidate(sl).At(10, 0).WithResources(chair).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, reqBody)

		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, []string{"RESOURCE_UNAVAILABLE"}, kinds(res))
		require.NotNil(t, res.Conflicts[0].ResourceID)
		require.Equal(t, chair.String(), *res.Conflicts[0].ResourceID)
	})

	s.Run("too soon and too far in advance", func() {
		t := s.T()
		sl := s.seedSalon()
		soon := testutil.DtoMap(t, s.candidate(sl).BuildRequestDTO(),
			testutil.Field("start_time", e2e.Now.Add(30*time.Minute)))
		far := testutil.DtoMap(t, s.candidate(sl).BuildRequestDTO(),
			testutil.Field("start_time", e2e.Now.AddDate(0, 0, 40)))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, soon)
		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Contains(t, kinds(res), "INSUFFICIENT_ADVANCE_NOTICE")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, conflictsURL, far)
		res = resdto.ConflictCheckResponse{}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Contains(t, kinds(res), "EXCEEDS_MAX_ADVANCE")
	})
}

// =============================================================================
// TestCheckSeries
// =============================================================================

func (s *SchedulingSuite) TestCheckSeries() {
	s.Run("only the clashing week is flagged", func() {
		t := s.T()
		sl := s.seedSalon()
		dbtest.InsertBooking(t, s.DB, s.existing(sl).With(func(b *builder.ExistingBookingBuilder) {
			b.Start = builder.BaseTime.AddDate(0, 0, 7)
			b.End = b.Start.Add(time.Hour)
		}).BuildDomain())
		reqBody := testutil.DtoMap(t, s.candidate(sl).BuildRequestDTO(),
			testutil.Field("recurrence", map[string]any{"type": "WEEKLY", "count": 3}),
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, seriesURL, reqBody)

		var res resdto.SeriesCheckResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.True(t, res.HasConflict)
		require.False(t, res.CanOverride)
		require.Len(t, res.Occurrences, 3)

		flagged := make([]bool, len(res.Occurrences))
		for i, occ := range res.Occurrences {
			flagged[i] = occ.Result.HasConflict
		}
		if diff := cmp.Diff([]bool{false, true, false}, flagged); diff != "" {
			t.Errorf("flagged occurrences mismatch (-want +got):\n%s", diff)
		}
		require.True(t, res.Occurrences[2].IsLast)
	})

	s.Run("422 for a pattern without a bound", func() {
		t := s.T()
		sl := s.seedSalon()
		reqBody := testutil.DtoMap(t, s.candidate(sl).BuildRequestDTO(),
			testutil.Field("recurrence", map[string]any{"type": "DAILY"}),
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, seriesURL, reqBody)

		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "either count or end date is required")
	})
}

// =============================================================================
// TestPreviewRecurrence
// =============================================================================

func (s *SchedulingSuite) TestPreviewRecurrence() {
	s.Run("monthly on the 31st rolls over short months", func() {
		t := s.T()
		start := time.Date(2030, time.January, 31, 10, 0, 0, 0, time.UTC)
		reqBody := map[string]any{
			"start_time": start,
			"recurrence": map[string]any{"type": "MONTHLY", "count": 3},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL, reqBody)

		var res resdto.RecurrencePreviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Occurrences, 3)
		got := make([]string, len(res.Occurrences))
		for i, occ := range res.Occurrences {
			got[i] = occ.Date.UTC().Format(time.DateOnly)
		}
		require.Equal(t, []string{"2030-01-31", "2030-03-03", "2030-04-03"}, got)
	})
}

// =============================================================================
// TestDatabaseGuard
// =============================================================================

func (s *SchedulingSuite) TestDatabaseGuard() {
	s.Run("overlapping live bookings are rejected by the exclusion constraint", func() {
		t := s.T()
		sl := s.seedSalon()
		dbtest.InsertBooking(t, s.DB, s.existing(sl).Between(10, 0, 11, 0).BuildDomain())

		err := dbtest.TryInsertBooking(context.Background(), s.DB, s.existing(sl).Between(10, 30, 11, 30).BuildDomain())

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		require.Equal(t, "23P01", pgErr.Code)
		require.Equal(t, "bookings_no_professional_overlap", pgErr.ConstraintName)
	})

	s.Run("a cancelled booking frees the slot", func() {
		t := s.T()
		sl := s.seedSalon()
		dbtest.InsertBooking(t, s.DB, s.existing(sl).Between(10, 0, 11, 0).With(func(b *builder.ExistingBookingBuilder) {
			b.Status = booking.StatusNoShow
		}).BuildDomain())

		err := dbtest.TryInsertBooking(context.Background(), s.DB, s.existing(sl).Between(10, 0, 11, 0).BuildDomain())

		require.NoError(t, err)
	})
}
