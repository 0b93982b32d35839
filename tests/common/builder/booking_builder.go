//go:build unit || e2e

package builder

import (
	"time"

	"suitenest/internal/domain/booking"
	"suitenest/internal/domain/stay"
	reqdto "suitenest/internal/handler/dto/request"
	"suitenest/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID               uuid.UUID
	RoomID           uuid.UUID
	ConfirmationCode string
	CheckIn          time.Time
	CheckOut         time.Time
	GuestFullName    string
	GuestEmail       string
	Adults           int
	Children         int
	Status           string
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := stay.CalendarDate(time.Now()).AddDate(0, 0, 7)
	return &BookingBuilder{
		ID:               uuid.New(),
		RoomID:           uuid.New(),
		ConfirmationCode: "1234567890",
		CheckIn:          checkIn,
		CheckOut:         checkIn.AddDate(0, 0, 3),
		GuestFullName:    "Ada Lovelace",
		GuestEmail:       "ada@example.com",
		Adults:           2,
		Children:         1,
		Status:           "active",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID,
		b.RoomID,
		booking.ConfirmationCode(b.ConfirmationCode),
		stay.ReconstructDateRange(b.CheckIn, b.CheckOut),
		booking.ReconstructGuest(b.GuestFullName, b.GuestEmail),
		stay.ReconstructGuestCount(b.Adults, b.Children),
		booking.Status(b.Status),
		b.CheckIn.AddDate(0, 0, -7),
	)
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		CheckInDate:   stay.FormatDate(b.CheckIn),
		CheckOutDate:  stay.FormatDate(b.CheckOut),
		GuestFullName: b.GuestFullName,
		GuestEmail:    b.GuestEmail,
		NumOfAdults:   b.Adults,
		NumOfChildren: b.Children,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		GuestFullName:    b.GuestFullName,
		GuestEmail:       b.GuestEmail,
		NumOfAdults:      b.Adults,
		NumOfChildren:    b.Children,
		TotalNumOfGuest:  b.Adults + b.Children,
		Status:           b.Status,
		Room:             *NewRoomBuilder().With(func(r *RoomBuilder) { r.ID = b.RoomID }).BuildView(),
	}
}
