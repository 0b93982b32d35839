package client

import (
	"context"
	"net/http"

	reqdto "suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"
)

func (c *Client) Register(ctx context.Context, req reqdto.RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/register-user", req, nil)
}

func (c *Client) Login(ctx context.Context, req reqdto.LoginRequest) (*resdto.LoginResponse, error) {
	var out resdto.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
