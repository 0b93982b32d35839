package frontdesk

import (
	"context"
	"slices"

	"suitenest/internal/domain/user"
	reqdto "suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"

	"github.com/google/uuid"
)

// Session is the signed-in identity handed to every view at construction.
type Session struct {
	UserID uuid.UUID
	Email  string
	Token  string
	Roles  []string
}

func (s Session) IsZero() bool {
	return s.Token == ""
}

func (s Session) IsAdmin() bool {
	return slices.Contains(s.Roles, user.RoleAdmin.String())
}

type Authenticator interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*resdto.LoginResponse, error)
}

func Login(ctx context.Context, auth Authenticator, email, password string) (Session, error) {
	resp, err := auth.Login(ctx, reqdto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return Session{}, err
	}
	return Session{
		UserID: resp.ID,
		Email:  resp.Email,
		Token:  resp.Token,
		Roles:  slices.Clone(resp.Roles),
	}, nil
}
