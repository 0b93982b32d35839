package response

import (
	"suitenest/internal/domain/stay"
	"suitenest/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                      uuid.UUID    `json:"id"`
	CheckInDate             string       `json:"checkInDate"`
	CheckOutDate            string       `json:"checkOutDate"`
	GuestFullName           string       `json:"guestFullName"`
	GuestEmail              string       `json:"guestEmail"`
	NumOfAdults             int          `json:"numOfAdults"`
	NumOfChildren           int          `json:"numOfChildren"`
	TotalNumOfGuest         int          `json:"totalNumOfGuest"`
	BookingConfirmationCode string       `json:"bookingConfirmationCode"`
	Status                  string       `json:"status"`
	Room                    RoomResponse `json:"room"`
}

type BookingConfirmationResponse struct {
	ConfirmationCode string `json:"confirmationCode"`
	Message          string `json:"message"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, v)
	resp.CheckInDate = stay.FormatDate(v.CheckIn)
	resp.CheckOutDate = stay.FormatDate(v.CheckOut)
	resp.BookingConfirmationCode = v.ConfirmationCode
	resp.Room = *FromRoomView(&v.Room)
	return resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookingView(v))
	}
	return out
}
