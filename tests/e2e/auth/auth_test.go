//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"suitenest/internal/domain/user"
	"suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"
	"suitenest/internal/usecase/queries"
	"suitenest/tests/common/authtest"
	"suitenest/tests/common/builder"
	"suitenest/tests/common/dbtest"
	"suitenest/tests/common/httptest"
	"suitenest/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/auth/register-user"
	loginURL    = "/auth/login"
	logoutURL   = "/auth/logout"
	meURL       = "/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleGuest))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleGuest))

	// 非アクティブユーザーを作成
	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	s.Run("登録後にログインできる", func() {
		req := builder.NewRegisterBuilder().With(func(b *builder.RegisterBuilder) { b.Email = "New.Guest@Example.com" }).BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, req, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)

		// メールアドレスは小文字で保存される
		token := authtest.LoginUser(s.T(), s.Router, "new.guest@example.com", req.Password)
		s.NotEmpty(token)
	})

	s.Run("同じメールアドレスは409", func() {
		req := builder.NewRegisterBuilder().With(func(b *builder.RegisterBuilder) { b.Email = "guest@example.com" }).BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, req, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already exists")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "正常なログイン", email: "guest@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "大文字のメールアドレス", email: "Guest@Example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "存在しないユーザー", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "間違ったパスワード", email: "guest@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "非アクティブユーザー", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp resdto.LoginResponse
			require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &resp))
			s.Equal("guest@example.com", resp.Email)
			s.Equal([]string{"guest"}, resp.Roles)
			s.NotEmpty(resp.Token)
			s.NotNil(httptest.ExtractCookie(w, "access_token"))
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("クッキーで認証できる", func() {
		token := authtest.LoginUser(s.T(), s.Router, "admin@example.com", dbtest.TestPassword)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil,
			[]*http.Cookie{{Name: "access_token", Value: token}}, "")

		var me queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("admin@example.com", me.Email)
		s.Equal("admin", me.Role)
	})

	s.Run("Bearerトークンで認証できる", func() {
		token := authtest.LoginUser(s.T(), s.Router, "guest@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("期限切れトークンは401", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), uuid.New(), "guest@example.com", user.RoleGuest)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("存在しないユーザーは404", func() {
		token := s.jwtHelper.GenerateToken(s.T(), uuid.New(), "ghost@example.com", user.RoleGuest)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("クッキーが削除される", func() {
		token := authtest.LoginUser(s.T(), s.Router, "guest@example.com", dbtest.TestPassword)
		cookies := []*http.Cookie{{Name: "access_token", Value: token, Expires: time.Now().Add(time.Hour)}}

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, logoutURL, nil, cookies, "")
		s.Equal(http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})
}
