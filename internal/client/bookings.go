package client

import (
	"context"
	"net/http"
	"net/url"

	reqdto "suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"

	"github.com/google/uuid"
)

func (c *Client) BookRoom(ctx context.Context, roomID uuid.UUID, req reqdto.BookingRequest) (*resdto.BookingConfirmationResponse, error) {
	var out resdto.BookingConfirmationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/bookings/room/"+roomID.String()+"/booking", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AllBookings(ctx context.Context) ([]resdto.BookingResponse, error) {
	var out []resdto.BookingResponse
	if err := c.do(ctx, http.MethodGet, "/bookings/all-bookings", nil, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserBookings lists the bookings made under the given email.
func (c *Client) UserBookings(ctx context.Context, email string) ([]resdto.BookingResponse, error) {
	var out []resdto.BookingResponse
	path := "/bookings/user/" + url.PathEscape(email) + "/bookings"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BookingByConfirmationCode(ctx context.Context, code string) (*resdto.BookingResponse, error) {
	var out resdto.BookingResponse
	if err := c.do(ctx, http.MethodGet, "/bookings/confirmation/"+url.PathEscape(code), nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/bookings/booking/"+id.String()+"/delete", nil, nil, "", nil)
}
