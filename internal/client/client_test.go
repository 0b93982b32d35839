//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"suitenest/internal/client"
	"suitenest/internal/domain/pricing"
	reqdto "suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"
	"suitenest/internal/pkg/config"
	"suitenest/internal/pkg/telemetry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client *client.Client
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)

	c, err := client.New(config.ClientConfig{BaseURL: s.server.URL + "/", Timeout: 2 * time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.client = c
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *ClientTestSuite) TestAvailableRooms() {
	room := resdto.RoomResponse{ID: uuid.New(), RoomType: "Suite", RoomPrice: pricing.NewMoney(12950)}
	s.mux.HandleFunc("GET /rooms/available-rooms", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("2024-01-02", r.URL.Query().Get("checkInDate"))
		s.Equal("2024-01-05", r.URL.Query().Get("checkOutDate"))
		s.Equal("Suite", r.URL.Query().Get("roomType"))
		writeJSON(w, http.StatusOK, []resdto.RoomResponse{room})
	})

	rooms, err := s.client.AvailableRooms(context.Background(), "2024-01-02", "2024-01-05", "Suite")
	s.Require().NoError(err)
	s.Require().Len(rooms, 1)
	s.Equal(room.ID, rooms[0].ID)
	s.Equal(int64(12950), rooms[0].RoomPrice.Cents())
}

func (s *ClientTestSuite) TestErrorBodyIsSurfacedVerbatim() {
	msg := "Sorry, this room is not available for the selected dates"
	roomID := uuid.New()
	s.mux.HandleFunc("POST /bookings/room/{roomId}/booking", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": msg})
	})

	_, err := s.client.BookRoom(context.Background(), roomID, reqdto.BookingRequest{})

	var apiErr *client.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusConflict, apiErr.Status)
	s.Equal(msg, apiErr.Message)
	s.Equal(http.StatusConflict, client.StatusOf(err))
}

func (s *ClientTestSuite) TestNonJSONErrorFallsBackToStatusText() {
	s.mux.HandleFunc("GET /rooms/all-rooms", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := s.client.AllRooms(context.Background())
	var apiErr *client.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func (s *ClientTestSuite) TestBearerToken() {
	s.mux.HandleFunc("GET /bookings/all-bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
			return
		}
		writeJSON(w, http.StatusOK, []resdto.BookingResponse{})
	})

	_, err := s.client.AllBookings(context.Background())
	s.Equal(http.StatusUnauthorized, client.StatusOf(err))

	bookings, err := s.client.WithToken("secret").AllBookings(context.Background())
	s.Require().NoError(err)
	s.Empty(bookings)
}

func (s *ClientTestSuite) TestAddRoomSendsMultipart() {
	s.mux.HandleFunc("POST /rooms/add/new-room", func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(r.ParseMultipartForm(1 << 20))
		s.Equal("Suite", r.FormValue("roomType"))
		s.Equal("199.99", r.FormValue("roomPrice"))

		f, _, err := r.FormFile("photo")
		s.Require().NoError(err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		s.Equal([]byte("jpeg-bytes"), data)

		writeJSON(w, http.StatusCreated, resdto.RoomResponse{ID: uuid.New(), RoomType: "Suite", RoomPrice: pricing.NewMoney(19999)})
	})

	room, err := s.client.AddRoom(context.Background(), client.RoomUpload{
		RoomType:  "Suite",
		RoomPrice: "199.99",
		Photo:     []byte("jpeg-bytes"),
		PhotoName: "suite.jpg",
	})
	s.Require().NoError(err)
	s.Equal("Suite", room.RoomType)
}

func (s *ClientTestSuite) TestUpdateRoomOmitsEmptyFields() {
	id := uuid.New()
	s.mux.HandleFunc("PUT /rooms/update/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(id.String(), r.PathValue("id"))
		s.Require().NoError(r.ParseMultipartForm(1 << 20))
		_, hasType := r.MultipartForm.Value["roomType"]
		s.False(hasType)
		s.Equal("80", r.FormValue("roomPrice"))
		writeJSON(w, http.StatusOK, resdto.RoomResponse{ID: id, RoomType: "Single", RoomPrice: pricing.NewMoney(8000)})
	})

	room, err := s.client.UpdateRoom(context.Background(), id, client.RoomUpload{RoomPrice: "80"})
	s.Require().NoError(err)
	s.Equal(id, room.ID)
}

func (s *ClientTestSuite) TestCancelBookingNoContent() {
	id := uuid.New()
	s.mux.HandleFunc("DELETE /bookings/booking/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(id.String(), r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	s.NoError(s.client.CancelBooking(context.Background(), id))
}

func (s *ClientTestSuite) TestTransportErrorHasNoStatus() {
	s.server.Close()

	_, err := s.client.RoomTypes(context.Background())
	s.Require().Error(err)
	s.Zero(client.StatusOf(err))
}

func (s *ClientTestSuite) TestTraceContextIsPropagated() {
	tp := telemetry.NewTracerProvider(config.TraceConfig{ServiceName: "frontdesk-test", SampleRatio: 1})
	shutdown := telemetry.Install(tp, telemetry.NewPropagator())
	defer func() { _ = shutdown(context.Background()) }()

	var traceparent string
	s.mux.HandleFunc("GET /rooms/room/types", func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("traceparent")
		writeJSON(w, http.StatusOK, []string{"Suite"})
	})

	ctx, span := tp.Tracer("frontdesk-test").Start(context.Background(), "room-types")
	_, err := s.client.RoomTypes(ctx)
	span.End()

	s.Require().NoError(err)
	s.Require().NotEmpty(traceparent)
	s.Contains(traceparent, span.SpanContext().TraceID().String())
}
