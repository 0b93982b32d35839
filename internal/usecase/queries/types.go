package queries

import (
	"time"

	"suitenest/internal/domain/pricing"

	"github.com/google/uuid"
)

// RoomView is the read model of a room. IsBooked reports whether an active
// booking for the room has not checked out yet.
type RoomView struct {
	ID        uuid.UUID     `json:"id"`
	RoomType  string        `json:"room_type"`
	Price     pricing.Money `json:"price"`
	Photo     []byte        `json:"photo,omitempty"`
	IsBooked  bool          `json:"is_booked"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	ConfirmationCode string    `json:"confirmation_code"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	GuestFullName    string    `json:"guest_full_name"`
	GuestEmail       string    `json:"guest_email"`
	NumOfAdults      int       `json:"num_of_adults"`
	NumOfChildren    int       `json:"num_of_children"`
	TotalNumOfGuest  int       `json:"total_num_of_guest"`
	Status           string    `json:"status"`
	Room             RoomView  `json:"room"`
	CreatedAt        time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}
