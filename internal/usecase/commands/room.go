package commands

import (
	"context"
	"errors"

	"suitenest/internal/domain/room"
	reqdto "suitenest/internal/handler/dto/request"
	"suitenest/internal/infra"
	"suitenest/internal/pkg/errs"
	"suitenest/internal/usecase/queries"
	"suitenest/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound      = errs.New("room not found")
	errMissingRoomFields = errors.New("room type and room price are required")
)

type RoomCommands interface {
	AddRoom(ctx context.Context, in reqdto.RoomInput) (*queries.RoomView, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, in reqdto.RoomInput) (*queries.RoomView, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow         shared.UnitOfWork
	roomQueries queries.RoomQueries
}

func NewRoomCommands(uow shared.UnitOfWork, roomQueries queries.RoomQueries) RoomCommands {
	return &roomCommandsImpl{
		uow:         uow,
		roomQueries: roomQueries,
	}
}

func (r *roomCommandsImpl) AddRoom(ctx context.Context, in reqdto.RoomInput) (*queries.RoomView, error) {
	if in.RoomType == nil || in.Price == nil {
		return nil, errs.Mark(errMissingRoomFields, ErrDomainValidation)
	}

	entity, err := room.NewRoom(*in.RoomType, *in.Price, in.Photo)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = r.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return r.readBack(ctx, entity.ID())
}

func (r *roomCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, in reqdto.RoomInput) (*queries.RoomView, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := entity.Update(in.RoomType, in.Price, in.Photo); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Rooms().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, mapRoomError(err)
	}

	return r.readBack(ctx, id)
}

// DeleteRoom also removes the room's bookings.
func (r *roomCommandsImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	err := r.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return mapRoomError(err)
	}
	return nil
}

// Read-after-write so the response carries the derived booked flag
func (r *roomCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	view, err := r.roomQueries.GetRoom(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func mapRoomError(err error) error {
	switch {
	case errs.Is(err, ErrDomainValidation):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return ErrRoomNotFound
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
