package commands

import (
	"context"

	"suitenest/internal/domain/booking"
	reqdto "suitenest/internal/handler/dto/request"
	"suitenest/internal/infra"
	"suitenest/internal/pkg/errs"
	"suitenest/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxCodeAttempts = 3

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingConflict         = errs.New("room is not available for the selected dates")
	ErrBookingAlreadyCancelled = errs.New("booking is already cancelled")
	errCodeCollision           = errs.New("confirmation code already issued")
)

type BookingResult struct {
	ID               uuid.UUID
	ConfirmationCode booking.ConfirmationCode
}

type BookingCommands interface {
	BookRoom(ctx context.Context, roomID uuid.UUID, req reqdto.BookingRequest) (*BookingResult, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
}

func NewBookingCommands(uow shared.UnitOfWork, factory *booking.Factory) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		factory: factory,
	}
}

// BookRoom saves a booking unless it overlaps an active booking of the same
// room. The room row lock serializes concurrent bookings for that room; the
// exclusion constraint on bookings backs it up.
func (b *bookingCommandsImpl) BookRoom(ctx context.Context, roomID uuid.UUID, req reqdto.BookingRequest) (*BookingResult, error) {
	var err error
	for range maxCodeAttempts {
		var entity *booking.Booking
		entity, err = b.factory.CreateBooking(roomID, req.ToDomain())
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return b.saveBooking(ctx, tx, entity)
		})
		if err == nil {
			return &BookingResult{
				ID:               entity.ID(),
				ConfirmationCode: entity.ConfirmationCode(),
			}, nil
		}
		if !errs.Is(err, errCodeCollision) {
			break
		}
	}

	return nil, mapBookingError(err)
}

func (b *bookingCommandsImpl) saveBooking(ctx context.Context, tx shared.Tx, entity *booking.Booking) error {
	if _, err := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), entity.RoomID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	stays, err := tx.Bookings().ActiveStays(ctx, tx.DB(), entity.RoomID())
	if err != nil {
		return err
	}
	if err := booking.CheckAvailability(stays, entity.Stay()); err != nil {
		return ErrBookingConflict
	}

	if err := tx.Bookings().Create(ctx, tx.DB(), entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return ErrBookingConflict
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, errCodeCollision)
		}
		return err
	}
	return nil
}

// CancelBooking marks the booking cancelled; its dates become bookable again.
func (b *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := entity.Cancel(); err != nil {
			return ErrBookingAlreadyCancelled
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), entity)
	})
	if err != nil {
		return mapBookingError(err)
	}
	return nil
}

func mapBookingError(err error) error {
	switch {
	case errs.Is(err, ErrRoomNotFound),
		errs.Is(err, ErrBookingConflict),
		errs.Is(err, ErrBookingAlreadyCancelled):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
