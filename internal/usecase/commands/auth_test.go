//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"suitenest/internal/domain/user"
	reqdto "suitenest/internal/handler/dto/request"
	"suitenest/internal/infra"
	"suitenest/internal/pkg/errs"
	"suitenest/internal/pkg/jwt"
	"suitenest/internal/pkg/password"
	"suitenest/internal/usecase/commands"
	"suitenest/tests/common/builder"
	queriesmock "suitenest/tests/mock/queries"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	readStore  *queriesmock.MockUserReadStore
	uow        *fakeUoW
	jwtService *jwt.Service
	commands   commands.AuthCommands
	hash       string
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	s.uow = newFakeUoW()
	s.jwtService = jwt.NewService("test-secret-key-for-suitenest", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.commands = commands.NewAuthCommands(s.uow, s.readStore, s.jwtService, logger)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("creates a guest with a hashed password", func() {
		s.SetupTest()
		var created *user.User
		s.uow.tx.users.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { created = args.Get(1).(*user.User) }).
			Return(nil).Once()

		id, err := s.commands.Register(context.Background(), builder.NewRegisterBuilder().BuildDTO())

		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Equal(created.ID(), id)
		s.Equal(user.RoleGuest, created.Role())
		s.Equal("ada@example.com", created.Email().Value())
		s.NoError(password.ComparePassword(created.PasswordHash(), "password123"))
	})

	s.Run("duplicate email", func() {
		s.SetupTest()
		s.uow.tx.users.On("Create", mock.Anything, mock.Anything).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := s.commands.Register(context.Background(), builder.NewRegisterBuilder().BuildDTO())
		s.True(errs.Is(err, commands.ErrEmailAlreadyExists))
	})

	s.Run("weak password is a validation error", func() {
		s.SetupTest()
		req := builder.NewRegisterBuilder().With(func(b *builder.RegisterBuilder) { b.Password = "short" }).BuildDTO()

		_, err := s.commands.Register(context.Background(), req)
		s.True(errs.Is(err, commands.ErrDomainValidation))
		s.uow.tx.users.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	view := builder.NewUserBuilder().AsAdmin().BuildReadModel()
	req := reqdto.LoginRequest{Email: view.Email, Password: "password123"}

	s.Run("issues a token carrying the role", func() {
		s.SetupTest()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), view.Email).Return(view, s.hash, nil)
		s.uow.tx.users.On("UpdateLastLogin", mock.Anything, view.ID).Return(nil).Once()

		result, err := s.commands.Login(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(user.RoleAdmin, result.Role)
		claims, err := s.jwtService.ValidateToken(result.AccessToken)
		s.Require().NoError(err)
		s.Equal(view.ID, claims.UserID)
		s.Equal(view.Email, claims.Email)
		s.Equal("admin", claims.Role)
	})

	s.Run("last login failure does not fail the login", func() {
		s.SetupTest()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), view.Email).Return(view, s.hash, nil)
		s.uow.tx.users.On("UpdateLastLogin", mock.Anything, view.ID).Return(errors.New("db down"))

		_, err := s.commands.Login(context.Background(), req)
		s.NoError(err)
	})

	s.Run("unknown email and wrong password look the same", func() {
		s.SetupTest()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), view.Email).Return(nil, "", errors.New("not found"))
		_, errUnknown := s.commands.Login(context.Background(), req)

		s.readStore.EXPECT().FindByEmail(gomock.Any(), view.Email).Return(view, s.hash, nil)
		_, errWrong := s.commands.Login(context.Background(), reqdto.LoginRequest{Email: view.Email, Password: "password124"})

		s.True(errs.Is(errUnknown, commands.ErrInvalidCredentials))
		s.True(errs.Is(errWrong, commands.ErrInvalidCredentials))
	})

	s.Run("inactive user", func() {
		s.SetupTest()
		inactive := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), inactive.Email).Return(inactive, s.hash, nil)

		_, err := s.commands.Login(context.Background(), reqdto.LoginRequest{Email: inactive.Email, Password: "password123"})
		s.True(errs.Is(err, commands.ErrUserInactive))
	})
}
