package repository

import (
	"context"
	"log/slog"

	"suitenest/internal/domain/booking"
	"suitenest/internal/domain/stay"
	"suitenest/internal/infra"
	"suitenest/internal/infra/db"
	"suitenest/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertBookingSQL = `
INSERT INTO bookings (
    id, room_id, confirmation_code, check_in_date, check_out_date,
    guest_full_name, guest_email, num_of_adults, num_of_children, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	selectBookingForUpdateSQL = `
SELECT id, room_id, confirmation_code, check_in_date, check_out_date,
       guest_full_name, guest_email, num_of_adults, num_of_children, status, created_at
FROM bookings
WHERE id = $1
FOR UPDATE`

	updateBookingStatusSQL = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	selectActiveStaysSQL = `
SELECT check_in_date, check_out_date
FROM bookings
WHERE room_id = $1 AND status = 'active'
ORDER BY check_in_date`
)

type BookingRepository struct {
	logger *slog.Logger
}

func NewBookingRepository(logger *slog.Logger) *BookingRepository {
	return &BookingRepository{logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, insertBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.RoomID()),
		b.ConfirmationCode().String(),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Guest().FullName(),
		b.Guest().Email(),
		b.Guests().Adults(),
		b.Guests().Children(),
		b.Status().String(),
		pgconv.TimeToPgtype(b.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgError(err), "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	var (
		rowID, roomID     pgtype.UUID
		code              string
		checkIn, checkOut pgtype.Date
		fullName, email   string
		adults, children  int32
		status            string
		createdAt         pgtype.Timestamptz
	)

	err := tx.QueryRow(ctx, selectBookingForUpdateSQL, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &roomID, &code, &checkIn, &checkOut,
		&fullName, &email, &adults, &children, &status, &createdAt,
	)
	if err != nil {
		kind := infra.ClassifyPgError(err)
		if kind == infra.KindNotFound {
			return nil, infra.WrapRepoErr(r.logger, kind, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, kind, "failed to lock booking", err)
	}

	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "unexpected booking status", err)
	}

	return booking.ReconstructBooking(
		pgconv.UUIDFromPgtype(rowID),
		pgconv.UUIDFromPgtype(roomID),
		booking.ConfirmationCode(code),
		stay.ReconstructDateRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut)),
		booking.ReconstructGuest(fullName, email),
		stay.ReconstructGuestCount(int(adults), int(children)),
		st,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, pgconv.UUIDToPgtype(b.ID()), b.Status().String())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgError(err), "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) ActiveStays(ctx context.Context, tx db.DBTX, roomID uuid.UUID) ([]stay.DateRange, error) {
	rows, err := tx.Query(ctx, selectActiveStaysSQL, pgconv.UUIDToPgtype(roomID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgError(err), "failed to list active stays", err)
	}
	defer rows.Close()

	var stays []stay.DateRange
	for rows.Next() {
		var checkIn, checkOut pgtype.Date
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan active stay", err)
		}
		stays = append(stays, stay.ReconstructDateRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate active stays", err)
	}
	return stays, nil
}
