// source: bookings.sql

package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingSlotColumns = `
SELECT b.id, b.tenant_id, b.professional_id, b.client_id, b.client_name,
       lower(b.slot)::timestamptz AS starts_at,
       upper(b.slot)::timestamptz AS ends_at,
       b.status,
       ARRAY(
           SELECT br.resource_id FROM booking_resources br
           WHERE br.booking_id = b.id
           ORDER BY br.resource_id
       )::uuid[] AS resource_ids
FROM bookings b
`

const listOverlappingBookingsByProfessional = bookingSlotColumns + `
WHERE b.tenant_id = $1
  AND b.professional_id = $2
  AND b.slot && tstzrange($3, $4, '[)')
  AND b.status <> ALL($5::text[])
  AND ($6::uuid IS NULL OR b.id <> $6::uuid)
ORDER BY lower(b.slot), b.id
`

type ListOverlappingBookingsByProfessionalParams struct {
	TenantID         uuid.UUID
	ProfessionalID   uuid.UUID
	StartsAt         pgtype.Timestamptz
	EndsAt           pgtype.Timestamptz
	ExcludedStatuses []string
	ExcludeID        pgtype.UUID
}

func (q *Queries) ListOverlappingBookingsByProfessional(ctx context.Context, db DBTX, arg ListOverlappingBookingsByProfessionalParams) ([]BookingSlotRow, error) {
	rows, err := db.Query(ctx, listOverlappingBookingsByProfessional,
		arg.TenantID,
		arg.ProfessionalID,
		arg.StartsAt,
		arg.EndsAt,
		arg.ExcludedStatuses,
		arg.ExcludeID,
	)
	if err != nil {
		return nil, err
	}
	return scanBookingSlotRows(rows)
}

const listOverlappingBookingsByClient = bookingSlotColumns + `
WHERE b.tenant_id = $1
  AND b.client_id = $2
  AND b.slot && tstzrange($3, $4, '[)')
  AND b.status <> ALL($5::text[])
  AND ($6::uuid IS NULL OR b.id <> $6::uuid)
ORDER BY lower(b.slot), b.id
`

type ListOverlappingBookingsByClientParams struct {
	TenantID         uuid.UUID
	ClientID         uuid.UUID
	StartsAt         pgtype.Timestamptz
	EndsAt           pgtype.Timestamptz
	ExcludedStatuses []string
	ExcludeID        pgtype.UUID
}

func (q *Queries) ListOverlappingBookingsByClient(ctx context.Context, db DBTX, arg ListOverlappingBookingsByClientParams) ([]BookingSlotRow, error) {
	rows, err := db.Query(ctx, listOverlappingBookingsByClient,
		arg.TenantID,
		arg.ClientID,
		arg.StartsAt,
		arg.EndsAt,
		arg.ExcludedStatuses,
		arg.ExcludeID,
	)
	if err != nil {
		return nil, err
	}
	return scanBookingSlotRows(rows)
}

const listOverlappingBookingsByResources = bookingSlotColumns + `
WHERE b.tenant_id = $1
  AND EXISTS (
      SELECT 1 FROM booking_resources br
      WHERE br.booking_id = b.id AND br.resource_id = ANY($2::uuid[])
  )
  AND b.slot && tstzrange($3, $4, '[)')
  AND b.status <> ALL($5::text[])
  AND ($6::uuid IS NULL OR b.id <> $6::uuid)
ORDER BY lower(b.slot), b.id
`

type ListOverlappingBookingsByResourcesParams struct {
	TenantID         uuid.UUID
	ResourceIds      []uuid.UUID
	StartsAt         pgtype.Timestamptz
	EndsAt           pgtype.Timestamptz
	ExcludedStatuses []string
	ExcludeID        pgtype.UUID
}

func (q *Queries) ListOverlappingBookingsByResources(ctx context.Context, db DBTX, arg ListOverlappingBookingsByResourcesParams) ([]BookingSlotRow, error) {
	rows, err := db.Query(ctx, listOverlappingBookingsByResources,
		arg.TenantID,
		arg.ResourceIds,
		arg.StartsAt,
		arg.EndsAt,
		arg.ExcludedStatuses,
		arg.ExcludeID,
	)
	if err != nil {
		return nil, err
	}
	return scanBookingSlotRows(rows)
}

func scanBookingSlotRows(rows pgx.Rows) ([]BookingSlotRow, error) {
	defer rows.Close()
	var items []BookingSlotRow
	for rows.Next() {
		var i BookingSlotRow
		if err := rows.Scan(
			&i.ID,
			&i.TenantID,
			&i.ProfessionalID,
			&i.ClientID,
			&i.ClientName,
			&i.StartsAt,
			&i.EndsAt,
			&i.Status,
			&i.ResourceIds,
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

const insertBooking = `
INSERT INTO bookings (id, tenant_id, professional_id, client_id, client_name, slot, status)
VALUES ($1, $2, $3, $4, $5, tstzrange($6, $7, '[)'), $8)
`

type InsertBookingParams struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	ClientID       uuid.UUID
	ClientName     pgtype.Text
	StartsAt       pgtype.Timestamptz
	EndsAt         pgtype.Timestamptz
	Status         string
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.ID,
		arg.TenantID,
		arg.ProfessionalID,
		arg.ClientID,
		arg.ClientName,
		arg.StartsAt,
		arg.EndsAt,
		arg.Status,
	)
	return err
}

const insertBookingResource = `
INSERT INTO booking_resources (booking_id, resource_id)
VALUES ($1, $2)
`

func (q *Queries) InsertBookingResource(ctx context.Context, db DBTX, bookingID uuid.UUID, resourceID uuid.UUID) error {
	_, err := db.Exec(ctx, insertBookingResource, bookingID, resourceID)
	return err
}
