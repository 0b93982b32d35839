package response

import "github.com/google/uuid"

type LoginResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Token string    `json:"token"`
	Roles []string  `json:"roles"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
