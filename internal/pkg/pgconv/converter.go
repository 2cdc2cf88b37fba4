package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// UUIDPtrToPgtype maps nil to SQL NULL.
func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// ClockFromPgtype splits a TIME value into hour and minute; seconds are
// dropped. ok is false for NULL.
func ClockFromPgtype(pt pgtype.Time) (hour, minute int, ok bool) {
	if !pt.Valid {
		return 0, 0, false
	}
	totalMinutes := int(pt.Microseconds / microsPerMinute)
	return totalMinutes / 60, totalMinutes % 60, true
}

func ClockToPgtype(hour, minute int) pgtype.Time {
	return pgtype.Time{Microseconds: (int64(hour)*60 + int64(minute)) * microsPerMinute, Valid: true}
}
