//go:build unit || e2e

package builder

import (
	"time"

	"suitenest/internal/domain/pricing"
	"suitenest/internal/domain/room"
	"suitenest/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID         uuid.UUID
	RoomType   string
	PriceCents int64
	Photo      []byte
	IsBooked   bool
	CreatedAt  time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:         uuid.New(),
		RoomType:   "Deluxe Suite",
		PriceCents: 12000,
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(r.ID, r.RoomType, pricing.NewMoney(r.PriceCents), r.Photo, r.CreatedAt, r.CreatedAt)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:        r.ID,
		RoomType:  r.RoomType,
		Price:     pricing.NewMoney(r.PriceCents),
		Photo:     r.Photo,
		IsBooked:  r.IsBooked,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.CreatedAt,
	}
}

func (r *RoomBuilder) BuildFormFields() map[string]string {
	return map[string]string{
		"roomType":  r.RoomType,
		"roomPrice": pricing.NewMoney(r.PriceCents).String(),
	}
}
