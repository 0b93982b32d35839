package booking

import (
	"suitenest/internal/domain/stay"
	"suitenest/internal/pkg/clock"

	"github.com/google/uuid"
)

type Request struct {
	CheckIn       string
	CheckOut      string
	NumOfAdults   int
	NumOfChildren int
	GuestFullName string
	GuestEmail    string
}

type Factory struct {
	Clock clock.Clock
	Codes CodeGenerator
}

func NewFactory(clock clock.Clock, codes CodeGenerator) *Factory {
	return &Factory{
		Clock: clock,
		Codes: codes,
	}
}

// CreateBooking validates the request against today's date and issues a new
// confirmation code. Availability is checked by the caller inside its transaction.
func (f *Factory) CreateBooking(roomID uuid.UUID, req Request) (*Booking, error) {
	now := f.Clock.Now()

	r, err := stay.ParseDateRange(req.CheckIn, req.CheckOut, now)
	if err != nil {
		return nil, err
	}

	guests, err := stay.NewGuestCount(req.NumOfAdults, req.NumOfChildren)
	if err != nil {
		return nil, err
	}

	guest, err := NewGuest(req.GuestFullName, req.GuestEmail)
	if err != nil {
		return nil, err
	}

	code, err := f.Codes.Generate()
	if err != nil {
		return nil, err
	}

	return NewBooking(roomID, code, r, guest, guests, now), nil
}
