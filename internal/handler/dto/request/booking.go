package request

import (
	"suitenest/internal/domain/booking"
)

// BookingRequest carries dates as "YYYY-MM-DD". Guest counts are checked by
// the domain so that out-of-range values get a specific message.
type BookingRequest struct {
	CheckInDate   string `json:"checkInDate" binding:"required"`
	CheckOutDate  string `json:"checkOutDate" binding:"required"`
	GuestFullName string `json:"guestFullName" binding:"required"`
	GuestEmail    string `json:"guestEmail" binding:"required,email"`
	NumOfAdults   int    `json:"numOfAdults"`
	NumOfChildren int    `json:"numOfChildren"`
}

func (r *BookingRequest) ToDomain() booking.Request {
	return booking.Request{
		CheckIn:       r.CheckInDate,
		CheckOut:      r.CheckOutDate,
		NumOfAdults:   r.NumOfAdults,
		NumOfChildren: r.NumOfChildren,
		GuestFullName: r.GuestFullName,
		GuestEmail:    r.GuestEmail,
	}
}

type AvailableRoomsQuery struct {
	CheckInDate  string `form:"checkInDate" binding:"required"`
	CheckOutDate string `form:"checkOutDate" binding:"required"`
	RoomType     string `form:"roomType"`
}
