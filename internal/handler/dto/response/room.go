package response

import (
	"suitenest/internal/domain/pricing"
	"suitenest/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// RoomResponse carries the photo base64-encoded, as encoding/json does for []byte.
type RoomResponse struct {
	ID        uuid.UUID     `json:"id"`
	RoomType  string        `json:"roomType"`
	RoomPrice pricing.Money `json:"roomPrice"`
	IsBooked  bool          `json:"isBooked"`
	Photo     []byte        `json:"photo,omitempty"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	resp := &RoomResponse{}
	_ = copier.Copy(resp, v)
	resp.RoomPrice = v.Price
	return resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromRoomView(v))
	}
	return out
}
