//go:build unit

package room_test

import (
	"strings"
	"testing"

	"suitenest/internal/domain/pricing"
	"suitenest/internal/domain/room"
	"suitenest/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	tests := []struct {
		name     string
		roomType string
		cents    int64
		errIs    error
	}{
		{name: "trims room type", roomType: "  Deluxe Suite ", cents: 12000},
		{name: "blank room type", roomType: "   ", cents: 12000, errIs: room.ErrInvalidRoomType},
		{name: "room type too long", roomType: strings.Repeat("x", 65), cents: 12000, errIs: room.ErrInvalidRoomType},
		{name: "zero price", roomType: "Single", cents: 0, errIs: room.ErrInvalidPrice},
		{name: "negative price", roomType: "Single", cents: -1, errIs: room.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := room.NewRoom(tt.roomType, pricing.NewMoney(tt.cents), nil)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.roomType), r.RoomType())
			assert.Equal(t, tt.cents, r.Price().Cents())
		})
	}
}

func TestRoom_Update(t *testing.T) {
	photo := []byte{0xff, 0xd8, 0xff}

	t.Run("only set fields change", func(t *testing.T) {
		r := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Photo = photo }).BuildDomain()

		price := pricing.NewMoney(15000)
		require.NoError(t, r.Update(nil, &price, nil))

		assert.Equal(t, "Deluxe Suite", r.RoomType())
		assert.Equal(t, int64(15000), r.Price().Cents())
		assert.Equal(t, photo, r.Photo())
	})

	t.Run("new photo replaces the old one", func(t *testing.T) {
		r := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Photo = photo }).BuildDomain()

		require.NoError(t, r.Update(nil, nil, []byte{0x89, 0x50}))
		assert.Equal(t, []byte{0x89, 0x50}, r.Photo())
	})

	t.Run("invalid values leave the room untouched", func(t *testing.T) {
		r := builder.NewRoomBuilder().BuildDomain()

		blank := " "
		require.ErrorIs(t, r.Update(&blank, nil, nil), room.ErrInvalidRoomType)

		zero := pricing.NewMoney(0)
		require.ErrorIs(t, r.Update(nil, &zero, nil), room.ErrInvalidPrice)

		assert.Equal(t, "Deluxe Suite", r.RoomType())
		assert.Equal(t, int64(12000), r.Price().Cents())
	})
}
