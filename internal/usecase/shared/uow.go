package shared

import (
	"context"

	"suitenest/internal/domain/booking"
	"suitenest/internal/domain/room"
	"suitenest/internal/domain/stay"
	"suitenest/internal/domain/user"
	"suitenest/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statement outside an explicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Users() UserRepository
	DB() db.DBTX
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *room.Room) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error)
	Update(ctx context.Context, tx db.DBTX, r *room.Room) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	ActiveStays(ctx context.Context, tx db.DBTX, roomID uuid.UUID) ([]stay.DateRange, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
