//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"suitenest/internal/domain/stay"
	"suitenest/internal/domain/user"
	"suitenest/internal/handler/api"
	resdto "suitenest/internal/handler/dto/response"
	"suitenest/internal/pkg/errs"
	"suitenest/internal/usecase/commands"
	"suitenest/internal/usecase/queries"
	"suitenest/internal/usecase/shared"
	"suitenest/tests/common/builder"
	"suitenest/tests/common/httptest"
	"suitenest/tests/common/testutil"
	commandsmock "suitenest/tests/mock/commands"
	queriesmock "suitenest/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	actor        shared.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actor = shared.Actor{UserID: uuid.New(), Email: "ada@example.com", Role: user.RoleGuest}

	withActor := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("actor", s.actor)
		}
		c.Next()
	}

	s.router.POST("/bookings/room/:roomId/booking", h.BookRoom)
	s.router.GET("/bookings/all-bookings", h.ListBookings)
	s.router.GET("/bookings/confirmation/:code", h.GetByConfirmationCode)
	s.router.GET("/bookings/user/:userId/bookings", withActor, h.ListUserBookings)
	s.router.DELETE("/bookings/booking/:id/delete", h.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestBookRoom() {
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequestDTO()
	url := "/bookings/room/" + b.RoomID.String() + "/booking"

	s.Run("success: returns the confirmation code", func() {
		s.mockCommands.EXPECT().BookRoom(gomock.Any(), b.RoomID, reqBody).
			Return(&commands.BookingResult{ID: b.ID, ConfirmationCode: "0123456789"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("0123456789", response.ConfirmationCode)
		s.Equal("Room booked successfully! Your booking confirmation code is: 0123456789", response.Message)
	})

	s.Run("error: binding failures return 400", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing checkInDate", testutil.Field("checkInDate", nil)},
			{"missing checkOutDate", testutil.Field("checkOutDate", nil)},
			{"missing guestFullName", testutil.Field("guestFullName", nil)},
			{"invalid guestEmail", testutil.Field("guestEmail", "nobody")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: invalid room id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/room/123/booking", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID format")
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"invalid stay", errs.Mark(stay.ErrInvalidRange, commands.ErrDomainValidation), http.StatusBadRequest, stay.ErrInvalidRange.Error()},
			{"unknown room", commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
			{"overlapping stay", commands.ErrBookingConflict, http.StatusConflict, "Sorry, this room is not available for the selected dates"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BookRoom(gomock.Any(), b.RoomID, reqBody).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView(), builder.NewBookingBuilder().BuildView()}
	s.mockQueries.EXPECT().ListBookings(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/all-bookings", nil, "")

	var response []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.Equal(3, response[0].TotalNumOfGuest)
	s.Equal(views[0].Room.ID, response[0].Room.ID)
}

func (s *BookingHandlerTestSuite) TestGetByConfirmationCode() {
	s.Run("success", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByConfirmationCode(gomock.Any(), "1234567890").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/confirmation/1234567890", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("1234567890", response.BookingConfirmationCode)
		s.Equal(stay.FormatDate(view.CheckIn), response.CheckInDate)
	})

	s.Run("error: unknown code returns 404", func() {
		s.mockQueries.EXPECT().GetByConfirmationCode(gomock.Any(), "0000000000").Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/confirmation/0000000000", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No booking found with booking code: 0000000000")
	})
}

func (s *BookingHandlerTestSuite) TestListUserBookings() {
	url := "/bookings/user/ada@example.com/bookings"

	s.Run("success: passes the actor and the path email", func() {
		s.mockQueries.EXPECT().ListByGuestEmail(gomock.Any(), s.actor, "ada@example.com").
			Return([]*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: someone else's bookings return 403", func() {
		s.mockQueries.EXPECT().ListByGuestEmail(gomock.Any(), s.actor, "eve@example.com").
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/user/eve@example.com/bookings", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: missing actor returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()
	url := "/bookings/booking/" + id.String() + "/delete"

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"unknown booking", commands.ErrBookingNotFound, http.StatusNotFound},
			{"already cancelled", commands.ErrBookingAlreadyCancelled, http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}
