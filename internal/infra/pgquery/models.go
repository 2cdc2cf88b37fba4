package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingSlotRow struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	ClientID       uuid.UUID
	ClientName     pgtype.Text
	StartsAt       pgtype.Timestamptz
	EndsAt         pgtype.Timestamptz
	Status         string
	ResourceIds    []uuid.UUID
}

type TimeBlockRow struct {
	ID             uuid.UUID
	ProfessionalID uuid.UUID
	StartsAt       pgtype.Timestamptz
	EndsAt         pgtype.Timestamptz
	Reason         pgtype.Text
}

type WorkingSchedule struct {
	ProfessionalID uuid.UUID
	Weekday        int16
	IsEnabled      bool
	StartTime      pgtype.Time
	EndTime        pgtype.Time
	BreakStart     pgtype.Time
	BreakEnd       pgtype.Time
}
