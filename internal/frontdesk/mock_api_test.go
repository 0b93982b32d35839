//go:build unit

package frontdesk_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"suitenest/internal/client"
	reqdto "suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockAPI stands in for *client.Client behind every collaborator interface.
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Login(ctx context.Context, req reqdto.LoginRequest) (*resdto.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*resdto.LoginResponse)
	return resp, args.Error(1)
}

func (m *mockAPI) AvailableRooms(ctx context.Context, checkIn, checkOut, roomType string) ([]resdto.RoomResponse, error) {
	args := m.Called(ctx, checkIn, checkOut, roomType)
	rooms, _ := args.Get(0).([]resdto.RoomResponse)
	return rooms, args.Error(1)
}

func (m *mockAPI) Room(ctx context.Context, id uuid.UUID) (*resdto.RoomResponse, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*resdto.RoomResponse)
	return room, args.Error(1)
}

func (m *mockAPI) AllRooms(ctx context.Context) ([]resdto.RoomResponse, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]resdto.RoomResponse)
	return rooms, args.Error(1)
}

func (m *mockAPI) RoomTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]string)
	return types, args.Error(1)
}

func (m *mockAPI) AddRoom(ctx context.Context, in client.RoomUpload) (*resdto.RoomResponse, error) {
	args := m.Called(ctx, in)
	room, _ := args.Get(0).(*resdto.RoomResponse)
	return room, args.Error(1)
}

func (m *mockAPI) UpdateRoom(ctx context.Context, id uuid.UUID, in client.RoomUpload) (*resdto.RoomResponse, error) {
	args := m.Called(ctx, id, in)
	room, _ := args.Get(0).(*resdto.RoomResponse)
	return room, args.Error(1)
}

func (m *mockAPI) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAPI) BookRoom(ctx context.Context, roomID uuid.UUID, req reqdto.BookingRequest) (*resdto.BookingConfirmationResponse, error) {
	args := m.Called(ctx, roomID, req)
	resp, _ := args.Get(0).(*resdto.BookingConfirmationResponse)
	return resp, args.Error(1)
}

func (m *mockAPI) AllBookings(ctx context.Context) ([]resdto.BookingResponse, error) {
	args := m.Called(ctx)
	bookings, _ := args.Get(0).([]resdto.BookingResponse)
	return bookings, args.Error(1)
}

func (m *mockAPI) UserBookings(ctx context.Context, email string) ([]resdto.BookingResponse, error) {
	args := m.Called(ctx, email)
	bookings, _ := args.Get(0).([]resdto.BookingResponse)
	return bookings, args.Error(1)
}

func (m *mockAPI) BookingByConfirmationCode(ctx context.Context, code string) (*resdto.BookingResponse, error) {
	args := m.Called(ctx, code)
	booking, _ := args.Get(0).(*resdto.BookingResponse)
	return booking, args.Error(1)
}

func (m *mockAPI) CancelBooking(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
