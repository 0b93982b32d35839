package queries

import (
	"context"
	"strings"

	"suitenest/internal/domain/booking"
	"suitenest/internal/infra"
	"suitenest/internal/pkg/errs"
	"suitenest/internal/usecase/shared"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingReadStore interface {
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByConfirmationCode(ctx context.Context, code booking.ConfirmationCode) (*BookingView, error)
	FindByGuestEmail(ctx context.Context, email string) ([]*BookingView, error)
}

type BookingQueries interface {
	ListBookings(ctx context.Context) ([]*BookingView, error)
	GetByConfirmationCode(ctx context.Context, code string) (*BookingView, error)
	// ListByGuestEmail is limited to the caller's own bookings unless the caller is an admin.
	ListByGuestEmail(ctx context.Context, actor shared.Actor, email string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context) ([]*BookingView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *bookingQueriesImpl) GetByConfirmationCode(ctx context.Context, code string) (*BookingView, error) {
	parsed, err := booking.ParseConfirmationCode(code)
	if err != nil {
		// A malformed code can never match a booking
		return nil, ErrBookingNotFound
	}

	b, err := q.readStore.FindByConfirmationCode(ctx, parsed)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListByGuestEmail(ctx context.Context, actor shared.Actor, email string) ([]*BookingView, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !actor.IsAdmin() && !strings.EqualFold(actor.Email, email) {
		return nil, ErrBookingAccess
	}
	return q.readStore.FindByGuestEmail(ctx, email)
}
