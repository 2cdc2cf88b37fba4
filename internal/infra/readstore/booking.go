package readstore

import (
	"context"
	"errors"
	"time"

	"salon-scheduling/internal/domain/booking"
	"salon-scheduling/internal/infra"
	"salon-scheduling/internal/infra/pgquery"
	"salon-scheduling/internal/pkg/errs"
	"salon-scheduling/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/mock_booking.go -package=mock_readstore

type BookingQueries interface {
	ListOverlappingBookingsByProfessional(ctx context.Context, db pgquery.DBTX, arg pgquery.ListOverlappingBookingsByProfessionalParams) ([]pgquery.BookingSlotRow, error)
	ListOverlappingBookingsByClient(ctx context.Context, db pgquery.DBTX, arg pgquery.ListOverlappingBookingsByClientParams) ([]pgquery.BookingSlotRow, error)
	ListOverlappingBookingsByResources(ctx context.Context, db pgquery.DBTX, arg pgquery.ListOverlappingBookingsByResourcesParams) ([]pgquery.BookingSlotRow, error)
	ListOverlappingTimeBlocks(ctx context.Context, db pgquery.DBTX, arg pgquery.ListOverlappingTimeBlocksParams) ([]pgquery.TimeBlockRow, error)
	GetWorkingSchedule(ctx context.Context, db pgquery.DBTX, arg pgquery.GetWorkingScheduleParams) (pgquery.WorkingSchedule, error)
}

// BookingReadStore answers the conflict checker's questions from PostgreSQL.
// Terminal bookings are filtered in SQL.
type BookingReadStore struct {
	queries BookingQueries
	db      pgquery.DBTX
}

func NewBookingReadStore(queries BookingQueries, db pgquery.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindOverlappingByProfessional(ctx context.Context, tenantID, professionalID uuid.UUID, slot booking.TimeRange, excludeID *uuid.UUID) ([]booking.ExistingBooking, error) {
	rows, err := r.queries.ListOverlappingBookingsByProfessional(ctx, r.db, pgquery.ListOverlappingBookingsByProfessionalParams{
		TenantID:         tenantID,
		ProfessionalID:   professionalID,
		StartsAt:         pgconv.TimeToPgtype(slot.Start()),
		EndsAt:           pgconv.TimeToPgtype(slot.End()),
		ExcludedStatuses: terminalStatuses(),
		ExcludeID:        pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, wrapQueryErr("failed to list overlapping bookings by professional", err)
	}
	return toExistingBookings(rows)
}

func (r *BookingReadStore) FindOverlappingByClient(ctx context.Context, tenantID, clientID uuid.UUID, slot booking.TimeRange, excludeID *uuid.UUID) ([]booking.ExistingBooking, error) {
	rows, err := r.queries.ListOverlappingBookingsByClient(ctx, r.db, pgquery.ListOverlappingBookingsByClientParams{
		TenantID:         tenantID,
		ClientID:         clientID,
		StartsAt:         pgconv.TimeToPgtype(slot.Start()),
		EndsAt:           pgconv.TimeToPgtype(slot.End()),
		ExcludedStatuses: terminalStatuses(),
		ExcludeID:        pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, wrapQueryErr("failed to list overlapping bookings by client", err)
	}
	return toExistingBookings(rows)
}

func (r *BookingReadStore) FindOverlappingByResources(ctx context.Context, tenantID uuid.UUID, resourceIDs []uuid.UUID, slot booking.TimeRange, excludeID *uuid.UUID) ([]booking.ExistingBooking, error) {
	if len(resourceIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListOverlappingBookingsByResources(ctx, r.db, pgquery.ListOverlappingBookingsByResourcesParams{
		TenantID:         tenantID,
		ResourceIds:      resourceIDs,
		StartsAt:         pgconv.TimeToPgtype(slot.Start()),
		EndsAt:           pgconv.TimeToPgtype(slot.End()),
		ExcludedStatuses: terminalStatuses(),
		ExcludeID:        pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, wrapQueryErr("failed to list overlapping bookings by resources", err)
	}
	return toExistingBookings(rows)
}

func (r *BookingReadStore) FindOverlappingTimeBlocks(ctx context.Context, tenantID, professionalID uuid.UUID, slot booking.TimeRange) ([]booking.TimeBlock, error) {
	rows, err := r.queries.ListOverlappingTimeBlocks(ctx, r.db, pgquery.ListOverlappingTimeBlocksParams{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		StartsAt:       pgconv.TimeToPgtype(slot.Start()),
		EndsAt:         pgconv.TimeToPgtype(slot.End()),
	})
	if err != nil {
		return nil, wrapQueryErr("failed to list overlapping time blocks", err)
	}

	blocks := make([]booking.TimeBlock, 0, len(rows))
	for _, row := range rows {
		tr, err := booking.NewTimeRange(pgconv.TimeFromPgtype(row.StartsAt), pgconv.TimeFromPgtype(row.EndsAt))
		if err != nil {
			return nil, infra.WrapRepoErr("time block has an empty period", err, infra.KindInvalidRecord)
		}
		blocks = append(blocks, booking.TimeBlock{
			ID:             row.ID,
			ProfessionalID: row.ProfessionalID,
			TimeRange:      tr,
			Reason:         pgconv.StringPtrFromPgtype(row.Reason),
		})
	}
	return blocks, nil
}

func (r *BookingReadStore) FindWorkingSchedule(ctx context.Context, tenantID, professionalID uuid.UUID, weekday time.Weekday) (*booking.WorkingSchedule, error) {
	row, err := r.queries.GetWorkingSchedule(ctx, r.db, pgquery.GetWorkingScheduleParams{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		Weekday:        int16(weekday),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, wrapQueryErr("failed to get working schedule", err)
	}
	return toWorkingSchedule(row)
}

func wrapQueryErr(msg string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return infra.WrapRepoErr(msg, err, infra.KindQueryCancelled)
	}
	return infra.WrapRepoErr(msg, err)
}

func terminalStatuses() []string {
	statuses := booking.TerminalStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func toExistingBookings(rows []pgquery.BookingSlotRow) ([]booking.ExistingBooking, error) {
	out := make([]booking.ExistingBooking, 0, len(rows))
	for _, row := range rows {
		tr, err := booking.NewTimeRange(pgconv.TimeFromPgtype(row.StartsAt), pgconv.TimeFromPgtype(row.EndsAt))
		if err != nil {
			return nil, infra.WrapRepoErr("booking has an empty slot", err, infra.KindInvalidRecord)
		}
		status := booking.Status(row.Status)
		if !status.IsValid() {
			return nil, infra.WrapRepoErr("booking has an unknown status "+row.Status, errs.New("invalid booking status"), infra.KindInvalidRecord)
		}
		out = append(out, booking.ExistingBooking{
			ID:             row.ID,
			TenantID:       row.TenantID,
			ProfessionalID: row.ProfessionalID,
			ClientID:       row.ClientID,
			ClientName:     row.ClientName.String,
			TimeRange:      tr,
			Status:         status,
			ResourceIDs:    row.ResourceIds,
		})
	}
	return out, nil
}

func toWorkingSchedule(row pgquery.WorkingSchedule) (*booking.WorkingSchedule, error) {
	start, err := toTimeOfDay(row.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := toTimeOfDay(row.EndTime)
	if err != nil {
		return nil, err
	}
	ws := &booking.WorkingSchedule{
		ProfessionalID: row.ProfessionalID,
		Weekday:        time.Weekday(row.Weekday),
		Enabled:        row.IsEnabled,
		Start:          start,
		End:            end,
	}

	if row.BreakStart.Valid && row.BreakEnd.Valid {
		breakStart, err := toTimeOfDay(row.BreakStart)
		if err != nil {
			return nil, err
		}
		breakEnd, err := toTimeOfDay(row.BreakEnd)
		if err != nil {
			return nil, err
		}
		ws.BreakStart = &breakStart
		ws.BreakEnd = &breakEnd
	}
	return ws, nil
}

func toTimeOfDay(pt pgtype.Time) (booking.TimeOfDay, error) {
	hour, minute, ok := pgconv.ClockFromPgtype(pt)
	if !ok {
		return booking.TimeOfDay{}, infra.WrapRepoErr("working schedule has a NULL time", booking.ErrInvalidSchedule, infra.KindInvalidRecord)
	}
	tod, err := booking.NewTimeOfDay(hour, minute)
	if err != nil {
		return booking.TimeOfDay{}, infra.WrapRepoErr("working schedule has an invalid time", err, infra.KindInvalidRecord)
	}
	return tod, nil
}
