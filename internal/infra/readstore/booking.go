package readstore

import (
	"context"
	"log/slog"

	"suitenest/internal/domain/booking"
	"suitenest/internal/domain/pricing"
	"suitenest/internal/infra"
	"suitenest/internal/infra/db"
	"suitenest/internal/pkg/pgconv"
	"suitenest/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `
    b.id, b.confirmation_code, b.check_in_date, b.check_out_date,
    b.guest_full_name, b.guest_email, b.num_of_adults, b.num_of_children,
    b.status, b.created_at,
    r.id, r.room_type, r.price_cents`

const (
	selectAllBookingsSQL = `SELECT` + bookingColumns + `
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.status = 'active'
ORDER BY b.check_in_date, b.created_at`

	selectBookingByCodeSQL = `SELECT` + bookingColumns + `
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.confirmation_code = $1`

	selectBookingsByGuestEmailSQL = `SELECT` + bookingColumns + `
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE lower(b.guest_email) = lower($1)
  AND b.status = 'active'
ORDER BY b.check_in_date, b.created_at`
)

type BookingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(db db.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, selectAllBookingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgError(err), "failed to list bookings", err)
	}
	return s.collectBookings(rows)
}

func (s *BookingReadStore) FindByConfirmationCode(ctx context.Context, code booking.ConfirmationCode) (*queries.BookingView, error) {
	view, err := scanBooking(s.db.QueryRow(ctx, selectBookingByCodeSQL, code.String()))
	if err != nil {
		kind := infra.ClassifyPgError(err)
		if kind == infra.KindNotFound {
			return nil, infra.WrapRepoErr(s.logger, kind, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, kind, "failed to find booking by confirmation code", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByGuestEmail(ctx context.Context, email string) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, selectBookingsByGuestEmailSQL, email)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgError(err), "failed to list bookings by guest email", err)
	}
	return s.collectBookings(rows)
}

func (s *BookingReadStore) collectBookings(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return views, nil
}

func scanBooking(row pgx.Row) (*queries.BookingView, error) {
	var (
		id                pgtype.UUID
		code              string
		checkIn, checkOut pgtype.Date
		fullName, email   string
		adults, children  int32
		status            string
		createdAt         pgtype.Timestamptz
		roomID            pgtype.UUID
		roomType          string
		priceCents        int64
	)
	err := row.Scan(
		&id, &code, &checkIn, &checkOut,
		&fullName, &email, &adults, &children,
		&status, &createdAt,
		&roomID, &roomType, &priceCents,
	)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:               pgconv.UUIDFromPgtype(id),
		ConfirmationCode: code,
		CheckIn:          pgconv.DateFromPgtype(checkIn),
		CheckOut:         pgconv.DateFromPgtype(checkOut),
		GuestFullName:    fullName,
		GuestEmail:       email,
		NumOfAdults:      int(adults),
		NumOfChildren:    int(children),
		TotalNumOfGuest:  int(adults + children),
		Status:           status,
		Room: queries.RoomView{
			ID:       pgconv.UUIDFromPgtype(roomID),
			RoomType: roomType,
			Price:    pricing.NewMoney(priceCents),
		},
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
	}, nil
}
