//go:build unit

package commands_test

import (
	"context"

	"suitenest/internal/domain/booking"
	"suitenest/internal/domain/room"
	"suitenest/internal/domain/stay"
	"suitenest/internal/domain/user"
	"suitenest/internal/infra/db"
	"suitenest/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW runs fn straight away against a fakeTx; Within and WithDB only differ
// in how many times they were entered.
type fakeUoW struct {
	tx     *fakeTx
	within int
	withDB int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{rooms: &mockRoomRepo{}, bookings: &mockBookingRepo{}, users: &mockUserRepo{}}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.within++
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withDB++
	return fn(ctx, u.tx)
}

type fakeTx struct {
	rooms    *mockRoomRepo
	bookings *mockBookingRepo
	users    *mockUserRepo
}

func (t *fakeTx) Rooms() shared.RoomRepository       { return t.rooms }
func (t *fakeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *fakeTx) Users() shared.UserRepository       { return t.users }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) Create(ctx context.Context, _ db.DBTX, r *room.Room) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, _ db.DBTX, id uuid.UUID) (*room.Room, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*room.Room)
	return r, args.Error(1)
}

func (m *mockRoomRepo) Update(ctx context.Context, _ db.DBTX, r *room.Room) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRoomRepo) Delete(ctx context.Context, _ db.DBTX, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, _ db.DBTX, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, _ db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, _ db.DBTX, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) ActiveStays(ctx context.Context, _ db.DBTX, roomID uuid.UUID) ([]stay.DateRange, error) {
	args := m.Called(ctx, roomID)
	stays, _ := args.Get(0).([]stay.DateRange)
	return stays, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, _ db.DBTX, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, _ db.DBTX, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// sequenceCodes hands out codes in order.
type sequenceCodes struct {
	codes []booking.ConfirmationCode
	next  int
}

func (s *sequenceCodes) Generate() (booking.ConfirmationCode, error) {
	c := s.codes[s.next%len(s.codes)]
	s.next++
	return c, nil
}
