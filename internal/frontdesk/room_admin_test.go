//go:build unit

package frontdesk_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"suitenest/internal/client"
	"suitenest/internal/frontdesk"
	resdto "suitenest/internal/handler/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomAdmin_Load(t *testing.T) {
	api := &mockAPI{}
	api.On("AllRooms", mock.Anything).Return([]resdto.RoomResponse{roomResp("Single", 5000), roomResp("Suite", 20000)}, nil).Once()
	api.On("RoomTypes", mock.Anything).Return([]string{"Single", "Suite"}, nil).Once()

	a := frontdesk.NewRoomAdmin(api, frontdesk.NewRoomCatalog(nil, 8), discardLogger())
	require.NoError(t, a.Load(context.Background()))

	assert.Equal(t, []string{"Single", "Suite"}, roomTypes(a.Catalog().Rooms()))
	assert.Equal(t, []string{"Single", "Suite"}, a.RoomTypes())
}

func TestRoomAdmin_LoadFailureKeepsCatalog(t *testing.T) {
	api := &mockAPI{}
	api.On("AllRooms", mock.Anything).Return(nil, errors.New("connection reset")).Once()
	api.On("RoomTypes", mock.Anything).Return([]string{"Single"}, nil).Maybe()

	catalog := frontdesk.NewRoomCatalog(makeRooms("Double"), 8)
	a := frontdesk.NewRoomAdmin(api, catalog, discardLogger())

	require.Error(t, a.Load(context.Background()))
	assert.Equal(t, []string{"Double"}, roomTypes(catalog.Rooms()))
	assert.Empty(t, a.RoomTypes())
}

func TestRoomAdmin_AddRefreshesCatalog(t *testing.T) {
	added := roomResp("Penthouse", 90000)
	upload := client.RoomUpload{RoomType: "Penthouse", RoomPrice: "900.00"}

	api := &mockAPI{}
	api.On("AddRoom", mock.Anything, upload).Return(&added, nil).Once()
	api.On("AllRooms", mock.Anything).Return([]resdto.RoomResponse{roomResp("Single", 5000), added}, nil).Once()
	api.On("RoomTypes", mock.Anything).Return([]string{"Penthouse", "Single"}, nil).Once()

	a := frontdesk.NewRoomAdmin(api, frontdesk.NewRoomCatalog(makeRooms("Single"), 8), discardLogger())
	room, err := a.Add(context.Background(), upload)
	require.NoError(t, err)

	assert.Equal(t, added.ID, room.ID)
	assert.Equal(t, []string{"Single", "Penthouse"}, roomTypes(a.Catalog().Rooms()))
	api.AssertExpectations(t)
}

func TestRoomAdmin_RejectedWriteSkipsRefresh(t *testing.T) {
	id := roomResp("Single", 5000).ID

	api := &mockAPI{}
	api.On("DeleteRoom", mock.Anything, id).
		Return(&client.APIError{Status: http.StatusForbidden, Message: "Insufficient permissions"}).Once()

	a := frontdesk.NewRoomAdmin(api, frontdesk.NewRoomCatalog(makeRooms("Single"), 8), discardLogger())
	err := a.Delete(context.Background(), id)
	assert.Equal(t, http.StatusForbidden, client.StatusOf(err))
	api.AssertNotCalled(t, "AllRooms", mock.Anything)

	a.Close()
	_, err = a.Update(context.Background(), id, client.RoomUpload{RoomPrice: "10"})
	assert.ErrorIs(t, err, frontdesk.ErrViewClosed)
}
