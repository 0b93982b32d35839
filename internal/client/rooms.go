package client

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"

	resdto "suitenest/internal/handler/dto/response"
	"suitenest/internal/pkg/errs"

	"github.com/google/uuid"
)

// RoomUpload is the multipart form of the admin room endpoints. Empty fields
// are not sent, so an update keeps the stored value.
type RoomUpload struct {
	RoomType  string
	RoomPrice string
	Photo     []byte
	PhotoName string
}

func (c *Client) AvailableRooms(ctx context.Context, checkIn, checkOut, roomType string) ([]resdto.RoomResponse, error) {
	q := url.Values{}
	q.Set("checkInDate", checkIn)
	q.Set("checkOutDate", checkOut)
	if roomType != "" {
		q.Set("roomType", roomType)
	}

	var out []resdto.RoomResponse
	if err := c.do(ctx, http.MethodGet, "/rooms/available-rooms", q, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllRooms(ctx context.Context) ([]resdto.RoomResponse, error) {
	var out []resdto.RoomResponse
	if err := c.do(ctx, http.MethodGet, "/rooms/all-rooms", nil, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Room(ctx context.Context, id uuid.UUID) (*resdto.RoomResponse, error) {
	var out resdto.RoomResponse
	if err := c.do(ctx, http.MethodGet, "/rooms/room/"+id.String(), nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RoomTypes(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/rooms/room/types", nil, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddRoom(ctx context.Context, in RoomUpload) (*resdto.RoomResponse, error) {
	return c.sendRoom(ctx, http.MethodPost, "/rooms/add/new-room", in)
}

func (c *Client) UpdateRoom(ctx context.Context, id uuid.UUID, in RoomUpload) (*resdto.RoomResponse, error) {
	return c.sendRoom(ctx, http.MethodPut, "/rooms/update/"+id.String(), in)
}

func (c *Client) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/rooms/delete/room/"+id.String(), nil, nil, "", nil)
}

func (c *Client) sendRoom(ctx context.Context, method, path string, in RoomUpload) (*resdto.RoomResponse, error) {
	body, contentType, err := in.encode()
	if err != nil {
		return nil, err
	}

	var out resdto.RoomResponse
	if err := c.do(ctx, method, path, nil, body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u RoomUpload) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if u.RoomType != "" {
		if err := w.WriteField("roomType", u.RoomType); err != nil {
			return nil, "", errs.Wrap(err, "write roomType")
		}
	}
	if u.RoomPrice != "" {
		if err := w.WriteField("roomPrice", u.RoomPrice); err != nil {
			return nil, "", errs.Wrap(err, "write roomPrice")
		}
	}
	if len(u.Photo) > 0 {
		name := u.PhotoName
		if name == "" {
			name = "photo"
		}
		part, err := w.CreateFormFile("photo", name)
		if err != nil {
			return nil, "", errs.Wrap(err, "create photo part")
		}
		if _, err := part.Write(u.Photo); err != nil {
			return nil, "", errs.Wrap(err, "write photo")
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errs.Wrap(err, "close multipart")
	}
	return &buf, w.FormDataContentType(), nil
}
