package frontdesk

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"suitenest/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingListing shows the bookings visible to the session: every booking for
// an admin, otherwise the session user's own.
type BookingListing struct {
	api     BookingStore
	session Session
	logger  *slog.Logger

	view     viewState
	bookings []Booking
	from, to time.Time
}

func NewBookingListing(api BookingStore, session Session, logger *slog.Logger) *BookingListing {
	return &BookingListing{
		api:     api,
		session: session,
		logger:  logger,
	}
}

func (l *BookingListing) Load(ctx context.Context) error {
	l.view.mu.Lock()
	seq, err := l.view.begin()
	l.view.mu.Unlock()
	if err != nil {
		return err
	}

	var resp []Booking
	if l.session.IsAdmin() {
		all, ferr := l.api.AllBookings(ctx)
		resp, err = bookingsFromResponse(all), ferr
	} else {
		own, ferr := l.api.UserBookings(ctx, l.session.Email)
		resp, err = bookingsFromResponse(own), ferr
	}

	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if err != nil {
		l.logger.Warn("booking listing failed", "operation", "load_bookings", "error", err)
		if l.view.closed {
			return ErrViewClosed
		}
		return fmt.Errorf("load bookings: %w", err)
	}
	ok, err := l.view.accept(seq)
	if err != nil || !ok {
		return err
	}
	// Cancelled rows stay in the database for lookup by code but are not listed.
	l.bookings = slices.DeleteFunc(resp, func(b Booking) bool {
		return b.Status != booking.StatusActive.String()
	})
	return nil
}

// Bookings returns the loaded bookings that pass the stay filter.
func (l *BookingListing) Bookings() []Booking {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if l.from.IsZero() && l.to.IsZero() {
		return slices.Clone(l.bookings)
	}
	out := make([]Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		if b.Stay.Within(l.from, l.to) {
			out = append(out, b)
		}
	}
	return out
}

// FilterByStay keeps bookings that start on or after from and end by to.
// Zero times remove the filter.
func (l *BookingListing) FilterByStay(from, to time.Time) {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	l.from, l.to = from, to
}

func (l *BookingListing) ClearFilter() {
	l.FilterByStay(time.Time{}, time.Time{})
}

// FindByConfirmationCode looks a booking up without changing the listing.
func (l *BookingListing) FindByConfirmationCode(ctx context.Context, code string) (Booking, error) {
	if err := l.checkOpen(); err != nil {
		return Booking{}, err
	}
	resp, err := l.api.BookingByConfirmationCode(ctx, code)
	if err != nil {
		l.logger.Warn("booking lookup failed", "operation", "find_booking", "error", err)
		return Booking{}, fmt.Errorf("find booking: %w", err)
	}
	return bookingFromResponse(*resp), nil
}

// Cancel removes the booking from the listing once the backend accepts the
// cancellation. A rejected cancellation leaves the listing as it was.
func (l *BookingListing) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := l.checkOpen(); err != nil {
		return err
	}

	err := l.api.CancelBooking(ctx, id)

	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if l.view.closed {
		return ErrViewClosed
	}
	if err != nil {
		l.logger.Warn("booking cancellation failed", "operation", "cancel_booking", "booking_id", id, "error", err)
		return fmt.Errorf("%w: %w", ErrCancelFailed, err)
	}
	l.bookings = slices.DeleteFunc(l.bookings, func(b Booking) bool { return b.ID == id })
	return nil
}

func (l *BookingListing) Close() {
	l.view.close()
}

func (l *BookingListing) checkOpen() error {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if l.view.closed {
		return ErrViewClosed
	}
	return nil
}
