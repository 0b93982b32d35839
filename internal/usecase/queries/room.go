package queries

import (
	"context"

	"suitenest/internal/domain/stay"
	"suitenest/internal/infra"
	"suitenest/internal/pkg/clock"
	"suitenest/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound       = errs.New("room not found")
	ErrInvalidSearchDates = errs.New("invalid search dates")
)

type RoomReadStore interface {
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	// FindAvailable lists rooms with no active booking overlapping r.
	// An empty roomType matches every type.
	FindAvailable(ctx context.Context, r stay.DateRange, roomType string) ([]*RoomView, error)
	FindRoomTypes(ctx context.Context) ([]string, error)
}

type AvailabilityParams struct {
	CheckIn  string
	CheckOut string
	RoomType string
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListAvailableRooms(ctx context.Context, params AvailabilityParams) ([]*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]string, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
	clock     clock.Clock
}

func NewRoomQueries(readStore RoomReadStore, clock clock.Clock) RoomQueries {
	return &roomQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	room, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (q *roomQueriesImpl) ListAvailableRooms(ctx context.Context, params AvailabilityParams) ([]*RoomView, error) {
	r, err := stay.ParseDateRange(params.CheckIn, params.CheckOut, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchDates)
	}
	return q.readStore.FindAvailable(ctx, r, params.RoomType)
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]string, error) {
	return q.readStore.FindRoomTypes(ctx)
}
