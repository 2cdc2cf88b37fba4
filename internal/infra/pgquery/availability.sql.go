// source: availability.sql

package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listOverlappingTimeBlocks = `
SELECT id, professional_id,
       lower(period)::timestamptz AS starts_at,
       upper(period)::timestamptz AS ends_at,
       reason
FROM time_blocks
WHERE tenant_id = $1
  AND professional_id = $2
  AND period && tstzrange($3, $4, '[)')
ORDER BY lower(period), id
`

type ListOverlappingTimeBlocksParams struct {
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	StartsAt       pgtype.Timestamptz
	EndsAt         pgtype.Timestamptz
}

func (q *Queries) ListOverlappingTimeBlocks(ctx context.Context, db DBTX, arg ListOverlappingTimeBlocksParams) ([]TimeBlockRow, error) {
	rows, err := db.Query(ctx, listOverlappingTimeBlocks,
		arg.TenantID,
		arg.ProfessionalID,
		arg.StartsAt,
		arg.EndsAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TimeBlockRow
	for rows.Next() {
		var i TimeBlockRow
		if err := rows.Scan(
			&i.ID,
			&i.ProfessionalID,
			&i.StartsAt,
			&i.EndsAt,
			&i.Reason,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getWorkingSchedule = `
SELECT professional_id, weekday, is_enabled, start_time, end_time, break_start, break_end
FROM working_schedules
WHERE tenant_id = $1
  AND professional_id = $2
  AND weekday = $3
`

type GetWorkingScheduleParams struct {
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	Weekday        int16
}

func (q *Queries) GetWorkingSchedule(ctx context.Context, db DBTX, arg GetWorkingScheduleParams) (WorkingSchedule, error) {
	row := db.QueryRow(ctx, getWorkingSchedule, arg.TenantID, arg.ProfessionalID, arg.Weekday)
	var i WorkingSchedule
	err := row.Scan(
		&i.ProfessionalID,
		&i.Weekday,
		&i.IsEnabled,
		&i.StartTime,
		&i.EndTime,
		&i.BreakStart,
		&i.BreakEnd,
	)
	return i, err
}

const insertTimeBlock = `
INSERT INTO time_blocks (id, tenant_id, professional_id, period, reason)
VALUES ($1, $2, $3, tstzrange($4, $5, '[)'), $6)
`

type InsertTimeBlockParams struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	StartsAt       pgtype.Timestamptz
	EndsAt         pgtype.Timestamptz
	Reason         pgtype.Text
}

func (q *Queries) InsertTimeBlock(ctx context.Context, db DBTX, arg InsertTimeBlockParams) error {
	_, err := db.Exec(ctx, insertTimeBlock,
		arg.ID,
		arg.TenantID,
		arg.ProfessionalID,
		arg.StartsAt,
		arg.EndsAt,
		arg.Reason,
	)
	return err
}

const upsertWorkingSchedule = `
INSERT INTO working_schedules (tenant_id, professional_id, weekday, is_enabled, start_time, end_time, break_start, break_end)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (tenant_id, professional_id, weekday) DO UPDATE
SET is_enabled = EXCLUDED.is_enabled,
    start_time = EXCLUDED.start_time,
    end_time = EXCLUDED.end_time,
    break_start = EXCLUDED.break_start,
    break_end = EXCLUDED.break_end
`

type UpsertWorkingScheduleParams struct {
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	Weekday        int16
	IsEnabled      bool
	StartTime      pgtype.Time
	EndTime        pgtype.Time
	BreakStart     pgtype.Time
	BreakEnd       pgtype.Time
}

func (q *Queries) UpsertWorkingSchedule(ctx context.Context, db DBTX, arg UpsertWorkingScheduleParams) error {
	_, err := db.Exec(ctx, upsertWorkingSchedule,
		arg.TenantID,
		arg.ProfessionalID,
		arg.Weekday,
		arg.IsEnabled,
		arg.StartTime,
		arg.EndTime,
		arg.BreakStart,
		arg.BreakEnd,
	)
	return err
}
