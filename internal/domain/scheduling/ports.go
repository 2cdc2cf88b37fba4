package scheduling

import (
	"context"
	"time"

	"salon-scheduling/internal/domain/booking"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/scheduling/mock_ports.go -package=mock_scheduling

// BookingRepository is the read-only view of the booking store. Every query is
// scoped to a tenant. Implementations return only non-terminal bookings.
type BookingRepository interface {
	FindOverlappingByProfessional(ctx context.Context, tenantID, professionalID uuid.UUID, slot booking.TimeRange, excludeID *uuid.UUID) ([]booking.ExistingBooking, error)
	FindOverlappingByClient(ctx context.Context, tenantID, clientID uuid.UUID, slot booking.TimeRange, excludeID *uuid.UUID) ([]booking.ExistingBooking, error)
	FindOverlappingTimeBlocks(ctx context.Context, tenantID, professionalID uuid.UUID, slot booking.TimeRange) ([]booking.TimeBlock, error)
	// FindWorkingSchedule returns nil without error when no entry exists.
	FindWorkingSchedule(ctx context.Context, tenantID, professionalID uuid.UUID, weekday time.Weekday) (*booking.WorkingSchedule, error)
	FindOverlappingByResources(ctx context.Context, tenantID uuid.UUID, resourceIDs []uuid.UUID, slot booking.TimeRange, excludeID *uuid.UUID) ([]booking.ExistingBooking, error)
}
