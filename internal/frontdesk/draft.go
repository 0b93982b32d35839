package frontdesk

import (
	"fmt"
	"strings"
	"time"

	"suitenest/internal/domain/pricing"
	"suitenest/internal/domain/stay"
	reqdto "suitenest/internal/handler/dto/request"

	"github.com/google/uuid"
)

// BookingDraft holds the booking form as typed. Nothing is parsed until
// Validate.
type BookingDraft struct {
	RoomID        uuid.UUID
	GuestFullName string
	GuestEmail    string
	CheckIn       string
	CheckOut      string
	NumOfAdults   string
	NumOfChildren string
}

// ValidDraft is a draft that passed Validate.
type ValidDraft struct {
	RoomID        uuid.UUID
	GuestFullName string
	GuestEmail    string
	Stay          stay.DateRange
	Guests        stay.GuestCount
}

// Validate checks the stay, the guest counts and the guest fields in that
// order and returns the first failure.
func (d BookingDraft) Validate(today time.Time) (ValidDraft, error) {
	r, err := stay.ParseDateRange(d.CheckIn, d.CheckOut, today)
	if err != nil {
		return ValidDraft{}, err
	}

	guests, err := stay.ParseGuestCount(d.NumOfAdults, d.NumOfChildren)
	if err != nil {
		return ValidDraft{}, err
	}

	name := strings.TrimSpace(d.GuestFullName)
	if name == "" {
		return ValidDraft{}, fmt.Errorf("%w: guest full name", ErrMissingField)
	}
	email := strings.TrimSpace(d.GuestEmail)
	if email == "" {
		return ValidDraft{}, fmt.Errorf("%w: guest email", ErrMissingField)
	}

	return ValidDraft{
		RoomID:        d.RoomID,
		GuestFullName: name,
		GuestEmail:    email,
		Stay:          r,
		Guests:        guests,
	}, nil
}

func (v ValidDraft) request() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		CheckInDate:   stay.FormatDate(v.Stay.CheckIn()),
		CheckOutDate:  stay.FormatDate(v.Stay.CheckOut()),
		GuestFullName: v.GuestFullName,
		GuestEmail:    v.GuestEmail,
		NumOfAdults:   v.Guests.Adults(),
		NumOfChildren: v.Guests.Children(),
	}
}

// Summary is what the guest confirms: the validated draft and its price.
type Summary struct {
	Draft  ValidDraft
	Nights int
	Total  pricing.Money
}

func summarize(v ValidDraft, price *pricing.Money, calc pricing.PriceCalculator) Summary {
	return Summary{
		Draft:  v,
		Nights: v.Stay.Nights(),
		Total:  calc.CalculateTotal(price, v.Stay),
	}
}
