package readstore

import (
	"context"
	"log/slog"

	"suitenest/internal/domain/pricing"
	"suitenest/internal/domain/stay"
	"suitenest/internal/infra"
	"suitenest/internal/infra/db"
	"suitenest/internal/pkg/pgconv"
	"suitenest/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `
    r.id, r.room_type, r.price_cents, r.photo, r.created_at, r.updated_at,
    EXISTS (
        SELECT 1 FROM bookings b
        WHERE b.room_id = r.id AND b.status = 'active' AND b.check_out_date > CURRENT_DATE
    ) AS is_booked`

const (
	selectAllRoomsSQL = `SELECT` + roomColumns + `
FROM rooms r
ORDER BY r.created_at, r.id`

	selectRoomByIDSQL = `SELECT` + roomColumns + `
FROM rooms r
WHERE r.id = $1`

	// Half-open stays: a booking ending on the requested check-in does not block it.
	// The room type filter is a literal, case-insensitive substring match.
	selectAvailableRoomsSQL = `SELECT` + roomColumns + `
FROM rooms r
WHERE ($3::text IS NULL OR position(lower($3) in lower(r.room_type)) > 0)
  AND NOT EXISTS (
      SELECT 1 FROM bookings b
      WHERE b.room_id = r.id
        AND b.status = 'active'
        AND b.check_in_date < $2
        AND b.check_out_date > $1
  )
ORDER BY r.created_at, r.id`

	selectRoomTypesSQL = `SELECT DISTINCT room_type FROM rooms ORDER BY room_type`
)

type RoomReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewRoomReadStore(db db.DBTX, logger *slog.Logger) *RoomReadStore {
	return &RoomReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, selectAllRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgError(err), "failed to list rooms", err)
	}
	return s.collectRooms(rows)
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	view, err := scanRoom(s.db.QueryRow(ctx, selectRoomByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		kind := infra.ClassifyPgError(err)
		if kind == infra.KindNotFound {
			return nil, infra.WrapRepoErr(s.logger, kind, "room not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, kind, "failed to find room by ID", err)
	}
	return view, nil
}

func (s *RoomReadStore) FindAvailable(ctx context.Context, r stay.DateRange, roomType string) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, selectAvailableRoomsSQL,
		pgconv.DateToPgtype(r.CheckIn()),
		pgconv.DateToPgtype(r.CheckOut()),
		pgconv.StringToNullablePgtype(roomType),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgError(err), "failed to list available rooms", err)
	}
	return s.collectRooms(rows)
}

func (s *RoomReadStore) FindRoomTypes(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, selectRoomTypesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgError(err), "failed to list room types", err)
	}

	types, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan room types", err)
	}
	return types, nil
}

func (s *RoomReadStore) collectRooms(rows pgx.Rows) ([]*queries.RoomView, error) {
	defer rows.Close()

	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		view, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan room", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate rooms", err)
	}
	return views, nil
}

func scanRoom(row pgx.Row) (*queries.RoomView, error) {
	var (
		id         pgtype.UUID
		roomType   string
		priceCents int64
		photo      []byte
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
		isBooked   bool
	)
	if err := row.Scan(&id, &roomType, &priceCents, &photo, &createdAt, &updatedAt, &isBooked); err != nil {
		return nil, err
	}

	return &queries.RoomView{
		ID:        pgconv.UUIDFromPgtype(id),
		RoomType:  roomType,
		Price:     pricing.NewMoney(priceCents),
		Photo:     photo,
		IsBooked:  isBooked,
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
		UpdatedAt: pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
