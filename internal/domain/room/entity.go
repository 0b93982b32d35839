package room

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"suitenest/internal/domain/pricing"
	"suitenest/internal/pkg/patch"

	"github.com/google/uuid"
)

const maxRoomTypeLength = 64

var (
	ErrInvalidRoomType = errors.New("room type must be 1-64 characters")
	ErrInvalidPrice    = errors.New("room price must be greater than zero")
)

type Room struct {
	id        uuid.UUID
	roomType  string
	price     pricing.Money
	photo     []byte
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(roomType string, price pricing.Money, photo []byte) (*Room, error) {
	rt, err := normalizeRoomType(roomType)
	if err != nil {
		return nil, err
	}
	if price.Cents() <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Room{
		id:       uuid.New(),
		roomType: rt,
		price:    price,
		photo:    photo,
	}, nil
}

func ReconstructRoom(id uuid.UUID, roomType string, price pricing.Money, photo []byte, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		roomType:  roomType,
		price:     price,
		photo:     photo,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update applies the fields that are set; an empty photo keeps the current one.
func (r *Room) Update(roomType *string, price *pricing.Money, photo []byte) error {
	if roomType != nil {
		rt, err := normalizeRoomType(*roomType)
		if err != nil {
			return err
		}
		roomType = &rt
	}
	if price != nil && price.Cents() <= 0 {
		return ErrInvalidPrice
	}

	r.roomType = patch.Coalesce(roomType, r.roomType)
	r.price = patch.Coalesce(price, r.price)
	if len(photo) > 0 {
		r.photo = photo
	}
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) RoomType() string     { return r.roomType }
func (r *Room) Price() pricing.Money { return r.price }
func (r *Room) Photo() []byte        { return r.photo }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func normalizeRoomType(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxRoomTypeLength {
		return "", ErrInvalidRoomType
	}
	return s, nil
}
