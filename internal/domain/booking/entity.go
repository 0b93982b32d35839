package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"suitenest/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidConfirmationCode = errors.New("invalid confirmation code")
	ErrMissingGuestName        = errors.New("guest full name is required")
	ErrInvalidGuestEmail       = errors.New("guest email is invalid")
	ErrAlreadyCancelled        = errors.New("booking is already cancelled")
	ErrRoomUnavailable         = errors.New("room is not available for the selected dates")
)

var guestEmailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Guest struct {
	fullName string
	email    string
}

func NewGuest(fullName, email string) (Guest, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" {
		return Guest{}, ErrMissingGuestName
	}
	if !guestEmailRegex.MatchString(email) {
		return Guest{}, ErrInvalidGuestEmail
	}
	return Guest{fullName: fullName, email: email}, nil
}

func ReconstructGuest(fullName, email string) Guest {
	return Guest{fullName: fullName, email: email}
}

func (g Guest) FullName() string { return g.fullName }
func (g Guest) Email() string    { return g.email }

type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	code      ConfirmationCode
	stay      stay.DateRange
	guest     Guest
	guests    stay.GuestCount
	status    Status
	createdAt time.Time
}

func NewBooking(roomID uuid.UUID, code ConfirmationCode, r stay.DateRange, guest Guest, guests stay.GuestCount, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		roomID:    roomID,
		code:      code,
		stay:      r,
		guest:     guest,
		guests:    guests,
		status:    StatusActive,
		createdAt: now,
	}
}

func ReconstructBooking(
	id, roomID uuid.UUID,
	code ConfirmationCode,
	r stay.DateRange,
	guest Guest,
	guests stay.GuestCount,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		code:      code,
		stay:      r,
		guest:     guest,
		guests:    guests,
		status:    status,
		createdAt: createdAt,
	}
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool { return b.status == StatusActive }

func (b *Booking) ID() uuid.UUID                      { return b.id }
func (b *Booking) RoomID() uuid.UUID                  { return b.roomID }
func (b *Booking) ConfirmationCode() ConfirmationCode { return b.code }
func (b *Booking) Stay() stay.DateRange               { return b.stay }
func (b *Booking) Guest() Guest                       { return b.guest }
func (b *Booking) Guests() stay.GuestCount            { return b.guests }
func (b *Booking) TotalGuests() int                   { return b.guests.Total() }
func (b *Booking) Status() Status                     { return b.status }
func (b *Booking) CreatedAt() time.Time               { return b.createdAt }

// CheckAvailability fails with ErrRoomUnavailable when the requested stay
// overlaps any of the existing active stays.
func CheckAvailability(existing []stay.DateRange, requested stay.DateRange) error {
	for _, r := range existing {
		if r.Overlaps(requested) {
			return ErrRoomUnavailable
		}
	}
	return nil
}
