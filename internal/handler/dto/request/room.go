package request

import (
	"errors"
	"io"
	"mime/multipart"

	"suitenest/internal/domain/pricing"
	"suitenest/internal/pkg/patch"
)

var ErrPhotoTooLarge = errors.New("photo is too large")

// RoomForm is the multipart body of the add and update room endpoints.
// On update every field is optional.
type RoomForm struct {
	RoomType  string                `form:"roomType"`
	RoomPrice string                `form:"roomPrice"`
	Photo     *multipart.FileHeader `form:"photo" swaggerignore:"true"`
}

// RoomInput is the parsed form. Nil fields and an empty photo mean "unchanged".
type RoomInput struct {
	RoomType *string
	Price    *pricing.Money
	Photo    []byte
}

func (f *RoomForm) ToInput(maxPhotoBytes int64) (RoomInput, error) {
	var in RoomInput
	in.RoomType = patch.NonEmpty(f.RoomType)

	if f.RoomPrice != "" {
		price, err := pricing.ParseMoney(f.RoomPrice)
		if err != nil {
			return RoomInput{}, err
		}
		in.Price = &price
	}

	photo, err := f.readPhoto(maxPhotoBytes)
	if err != nil {
		return RoomInput{}, err
	}
	in.Photo = photo

	return in, nil
}

func (f *RoomForm) readPhoto(maxBytes int64) ([]byte, error) {
	if f.Photo == nil {
		return nil, nil
	}
	if maxBytes > 0 && f.Photo.Size > maxBytes {
		return nil, ErrPhotoTooLarge
	}

	file, err := f.Photo.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
