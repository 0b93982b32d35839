package frontdesk

import (
	"context"
	"slices"

	"suitenest/internal/client"
	"suitenest/internal/domain/pricing"
	"suitenest/internal/domain/stay"
	reqdto "suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"

	"github.com/google/uuid"
)

// Collaborators. *client.Client satisfies all of them.
type (
	Inventory interface {
		AvailableRooms(ctx context.Context, checkIn, checkOut, roomType string) ([]resdto.RoomResponse, error)
	}

	RoomFetcher interface {
		Room(ctx context.Context, id uuid.UUID) (*resdto.RoomResponse, error)
	}

	RoomManager interface {
		AllRooms(ctx context.Context) ([]resdto.RoomResponse, error)
		RoomTypes(ctx context.Context) ([]string, error)
		AddRoom(ctx context.Context, in client.RoomUpload) (*resdto.RoomResponse, error)
		UpdateRoom(ctx context.Context, id uuid.UUID, in client.RoomUpload) (*resdto.RoomResponse, error)
		DeleteRoom(ctx context.Context, id uuid.UUID) error
	}

	Booker interface {
		BookRoom(ctx context.Context, roomID uuid.UUID, req reqdto.BookingRequest) (*resdto.BookingConfirmationResponse, error)
	}

	BookingStore interface {
		AllBookings(ctx context.Context) ([]resdto.BookingResponse, error)
		UserBookings(ctx context.Context, email string) ([]resdto.BookingResponse, error)
		BookingByConfirmationCode(ctx context.Context, code string) (*resdto.BookingResponse, error)
		CancelBooking(ctx context.Context, id uuid.UUID) error
	}
)

type Room struct {
	ID       uuid.UUID
	RoomType string
	Price    pricing.Money
	IsBooked bool
	Photo    []byte
}

type Booking struct {
	ID               uuid.UUID
	ConfirmationCode string
	Stay             stay.DateRange
	GuestFullName    string
	GuestEmail       string
	Guests           stay.GuestCount
	TotalGuests      int
	Status           string
	Room             Room
}

func roomFromResponse(r resdto.RoomResponse) Room {
	return Room{
		ID:       r.ID,
		RoomType: r.RoomType,
		Price:    r.RoomPrice,
		IsBooked: r.IsBooked,
		Photo:    slices.Clone(r.Photo),
	}
}

func roomsFromResponse(rs []resdto.RoomResponse) []Room {
	out := make([]Room, 0, len(rs))
	for _, r := range rs {
		out = append(out, roomFromResponse(r))
	}
	return out
}

// Dates that fail to parse leave a zero range; the backend always sends
// YYYY-MM-DD.
func bookingFromResponse(b resdto.BookingResponse) Booking {
	var r stay.DateRange
	in, inErr := stay.ParseDate(b.CheckInDate)
	out, outErr := stay.ParseDate(b.CheckOutDate)
	if inErr == nil && outErr == nil {
		r = stay.ReconstructDateRange(in, out)
	}

	return Booking{
		ID:               b.ID,
		ConfirmationCode: b.BookingConfirmationCode,
		Stay:             r,
		GuestFullName:    b.GuestFullName,
		GuestEmail:       b.GuestEmail,
		Guests:           stay.ReconstructGuestCount(b.NumOfAdults, b.NumOfChildren),
		TotalGuests:      b.TotalNumOfGuest,
		Status:           b.Status,
		Room:             roomFromResponse(b.Room),
	}
}

func bookingsFromResponse(bs []resdto.BookingResponse) []Booking {
	out := make([]Booking, 0, len(bs))
	for _, b := range bs {
		out = append(out, bookingFromResponse(b))
	}
	return out
}
