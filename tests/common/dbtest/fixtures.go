//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"salon-scheduling/internal/domain/booking"
	"salon-scheduling/internal/infra/pgquery"
	"salon-scheduling/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var q = pgquery.New()

// InsertBooking persists b together with its resource links.
func InsertBooking(t *testing.T, db DBLike, b booking.ExistingBooking) {
	t.Helper()
	require.NoError(t, TryInsertBooking(context.Background(), db, b))
}

// TryInsertBooking is InsertBooking for tests that expect the database to refuse the row.
func TryInsertBooking(ctx context.Context, db DBLike, b booking.ExistingBooking) error {
	err := q.InsertBooking(ctx, db, pgquery.InsertBookingParams{
		ID:             b.ID,
		TenantID:       b.TenantID,
		ProfessionalID: b.ProfessionalID,
		ClientID:       b.ClientID,
		ClientName:     pgconv.StringToPgtype(b.ClientName),
		StartsAt:       pgconv.TimeToPgtype(b.TimeRange.Start()),
		EndsAt:         pgconv.TimeToPgtype(b.TimeRange.End()),
		Status:         string(b.Status),
	})
	if err != nil {
		return err
	}
	for _, resourceID := range b.ResourceIDs {
		if err := q.InsertBookingResource(ctx, db, b.ID, resourceID); err != nil {
			return err
		}
	}
	return nil
}

func InsertTimeBlock(t *testing.T, db DBLike, tenantID uuid.UUID, block booking.TimeBlock) {
	t.Helper()

	err := q.InsertTimeBlock(context.Background(), db, pgquery.InsertTimeBlockParams{
		ID:             block.ID,
		TenantID:       tenantID,
		ProfessionalID: block.ProfessionalID,
		StartsAt:       pgconv.TimeToPgtype(block.TimeRange.Start()),
		EndsAt:         pgconv.TimeToPgtype(block.TimeRange.End()),
		Reason:         pgconv.StringPtrToPgtype(block.Reason),
	})
	require.NoError(t, err)
}

func UpsertWorkingSchedule(t *testing.T, db DBLike, tenantID uuid.UUID, ws *booking.WorkingSchedule) {
	t.Helper()

	params := pgquery.UpsertWorkingScheduleParams{
		TenantID:       tenantID,
		ProfessionalID: ws.ProfessionalID,
		Weekday:        int16(ws.Weekday),
		IsEnabled:      ws.Enabled,
		StartTime:      pgconv.ClockToPgtype(ws.Start.Hour(), ws.Start.Minute()),
		EndTime:        pgconv.ClockToPgtype(ws.End.Hour(), ws.End.Minute()),
	}
	if ws.HasBreak() {
		params.BreakStart = pgconv.ClockToPgtype(ws.BreakStart.Hour(), ws.BreakStart.Minute())
		params.BreakEnd = pgconv.ClockToPgtype(ws.BreakEnd.Hour(), ws.BreakEnd.Minute())
	}
	require.NoError(t, q.UpsertWorkingSchedule(context.Background(), db, params))
}

// UpsertWeek gives the professional the same hours on every weekday.
func UpsertWeek(t *testing.T, db DBLike, tenantID uuid.UUID, ws *booking.WorkingSchedule) {
	t.Helper()
	for day := time.Sunday; day <= time.Saturday; day++ {
		daily := *ws
		daily.Weekday = day
		UpsertWorkingSchedule(t, db, tenantID, &daily)
	}
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
