//go:build unit

package frontdesk_test

import (
	"context"
	"net/http"
	"testing"

	"suitenest/internal/client"
	"suitenest/internal/domain/pricing"
	"suitenest/internal/domain/stay"
	"suitenest/internal/frontdesk"
	reqdto "suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"
	"suitenest/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookingLifecycleTestSuite struct {
	suite.Suite
	api     *mockAPI
	roomID  uuid.UUID
	session frontdesk.Session
	l       *frontdesk.BookingLifecycle
}

func (s *BookingLifecycleTestSuite) SetupTest() {
	s.api = &mockAPI{}
	s.roomID = uuid.New()
	s.session = frontdesk.Session{UserID: uuid.New(), Email: "guest@example.com", Token: "token", Roles: []string{"guest"}}
	s.l = frontdesk.NewBookingLifecycle(
		s.session,
		s.roomID,
		s.api,
		s.api,
		pricing.NewNightlyPriceCalculator(),
		clock.NewMockClock(today),
		discardLogger(),
	)
}

func TestBookingLifecycleSuite(t *testing.T) {
	suite.Run(t, new(BookingLifecycleTestSuite))
}

func (s *BookingLifecycleTestSuite) fillValid() {
	s.Require().NoError(s.l.Edit(func(d *frontdesk.BookingDraft) {
		d.GuestFullName = "Ada Lovelace"
		d.CheckIn = "2024-01-01"
		d.CheckOut = "2024-01-04"
		d.NumOfAdults = "2"
		d.NumOfChildren = "1"
	}))
}

func (s *BookingLifecycleTestSuite) expectedRequest() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		CheckInDate:   "2024-01-01",
		CheckOutDate:  "2024-01-04",
		GuestFullName: "Ada Lovelace",
		GuestEmail:    "guest@example.com",
		NumOfAdults:   2,
		NumOfChildren: 1,
	}
}

func (s *BookingLifecycleTestSuite) TestStartsEditingWithSessionEmail() {
	s.Equal(frontdesk.StateEditing, s.l.State())
	s.Equal("guest@example.com", s.l.Draft().GuestEmail)
	s.Equal(s.roomID, s.l.Draft().RoomID)
}

func (s *BookingLifecycleTestSuite) TestValidate() {
	cases := []struct {
		name   string
		mutate func(d *frontdesk.BookingDraft)
		errIs  error
	}{
		{name: "check-out before check-in", mutate: func(d *frontdesk.BookingDraft) { d.CheckOut = "2023-12-30" }, errIs: stay.ErrInvalidRange},
		{name: "check-in in the past", mutate: func(d *frontdesk.BookingDraft) { d.CheckIn = "2023-12-31" }, errIs: stay.ErrInvalidRange},
		{name: "no adults", mutate: func(d *frontdesk.BookingDraft) { d.NumOfAdults = "0" }, errIs: stay.ErrInvalidGuestCount},
		{name: "too many children", mutate: func(d *frontdesk.BookingDraft) { d.NumOfChildren = "3" }, errIs: stay.ErrInvalidGuestCount},
		{name: "non-numeric adults", mutate: func(d *frontdesk.BookingDraft) { d.NumOfAdults = "two" }, errIs: stay.ErrInvalidGuestCount},
		{name: "missing name", mutate: func(d *frontdesk.BookingDraft) { d.GuestFullName = "  " }, errIs: frontdesk.ErrMissingField},
		{name: "missing email", mutate: func(d *frontdesk.BookingDraft) { d.GuestEmail = "" }, errIs: frontdesk.ErrMissingField},
		{name: "range reported before guests", mutate: func(d *frontdesk.BookingDraft) {
			d.CheckOut = "2024-01-01"
			d.NumOfAdults = "9"
		}, errIs: stay.ErrInvalidRange},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.fillValid()
			s.Require().NoError(s.l.Edit(c.mutate))

			err := s.l.Validate()
			s.ErrorIs(err, c.errIs)
			s.ErrorIs(s.l.LastError(), c.errIs)
			s.Equal(frontdesk.StateEditing, s.l.State())

			_, err = s.l.Confirm(context.Background())
			s.ErrorIs(err, frontdesk.ErrInvalidTransition)
		})
	}
	s.api.AssertNotCalled(s.T(), "BookRoom", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingLifecycleTestSuite) TestSummary() {
	s.Run("zero total before the room price is known", func() {
		s.fillValid()
		s.Require().NoError(s.l.Validate())

		summary, err := s.l.Summary()
		s.Require().NoError(err)
		s.Equal(3, summary.Nights)
		s.True(summary.Total.IsZero())
	})

	s.Run("nights times nightly price", func() {
		room := roomResp("Suite", 10000)
		s.api.On("Room", mock.Anything, s.roomID).Return(&room, nil).Once()
		s.Require().NoError(s.l.LoadRoom(context.Background()))

		summary, err := s.l.Summary()
		s.Require().NoError(err)
		s.Equal(pricing.NewMoney(30000), summary.Total)
	})

	s.Run("not available while editing", func() {
		s.fillValid()
		_, err := s.l.Summary()
		s.ErrorIs(err, frontdesk.ErrInvalidTransition)
	})
}

func (s *BookingLifecycleTestSuite) TestConfirmSuccess() {
	s.api.On("BookRoom", mock.Anything, s.roomID, s.expectedRequest()).
		Return(&resdto.BookingConfirmationResponse{ConfirmationCode: "1234567890", Message: "Room booked successfully"}, nil).Once()

	s.fillValid()
	s.Require().NoError(s.l.Validate())

	conf, err := s.l.Confirm(context.Background())
	s.Require().NoError(err)
	s.Equal("1234567890", conf.ConfirmationCode)
	s.Equal(frontdesk.StateConfirmed, s.l.State())
	s.Equal(frontdesk.BookingDraft{}, s.l.Draft())
	s.Equal(conf, s.l.Booking())

	s.ErrorIs(s.l.Edit(func(d *frontdesk.BookingDraft) {}), frontdesk.ErrInvalidTransition)

	s.Require().NoError(s.l.Restart())
	s.Equal(frontdesk.StateEditing, s.l.State())
	s.Equal("guest@example.com", s.l.Draft().GuestEmail)
	s.Nil(s.l.Booking())
	s.api.AssertExpectations(s.T())
}

func (s *BookingLifecycleTestSuite) TestConfirmRejected() {
	msg := "Sorry, this room is not available for the selected dates"
	s.api.On("BookRoom", mock.Anything, s.roomID, s.expectedRequest()).
		Return(nil, &client.APIError{Status: http.StatusConflict, Message: msg}).Once()

	s.fillValid()
	s.Require().NoError(s.l.Validate())
	before := s.l.Draft()

	_, err := s.l.Confirm(context.Background())
	s.ErrorIs(err, frontdesk.ErrSubmitConflict)
	s.Equal(http.StatusConflict, client.StatusOf(err))
	s.Equal(frontdesk.StateFailed, s.l.State())
	s.Equal(msg, s.l.FailureMessage())
	s.Equal(before, s.l.Draft())

	s.Run("editing a failed attempt starts over from the kept draft", func() {
		s.Require().NoError(s.l.Edit(func(d *frontdesk.BookingDraft) { d.CheckIn = "2024-01-02" }))
		s.Equal(frontdesk.StateEditing, s.l.State())
		s.Empty(s.l.FailureMessage())
		s.NoError(s.l.LastError())
		s.Equal("Ada Lovelace", s.l.Draft().GuestFullName)
		s.Equal("2024-01-02", s.l.Draft().CheckIn)
	})
}

func (s *BookingLifecycleTestSuite) TestEditWithoutChangesReturnsToEditing() {
	s.fillValid()
	s.Require().NoError(s.l.Validate())
	before := s.l.Draft()

	s.Require().NotPanics(func() {
		s.Require().NoError(s.l.Edit(nil))
	})
	s.Equal(frontdesk.StateEditing, s.l.State())
	s.Equal(before, s.l.Draft())
}

func (s *BookingLifecycleTestSuite) TestClosed() {
	s.l.Close()
	s.ErrorIs(s.l.Edit(func(d *frontdesk.BookingDraft) {}), frontdesk.ErrViewClosed)
	s.ErrorIs(s.l.Validate(), frontdesk.ErrViewClosed)
	s.ErrorIs(s.l.LoadRoom(context.Background()), frontdesk.ErrViewClosed)
}
