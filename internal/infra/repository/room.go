package repository

import (
	"context"
	"log/slog"

	"suitenest/internal/domain/pricing"
	"suitenest/internal/domain/room"
	"suitenest/internal/infra"
	"suitenest/internal/infra/db"
	"suitenest/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertRoomSQL = `
INSERT INTO rooms (id, room_type, price_cents, photo)
VALUES ($1, $2, $3, $4)`

	selectRoomForUpdateSQL = `
SELECT id, room_type, price_cents, photo, created_at, updated_at
FROM rooms
WHERE id = $1
FOR UPDATE`

	updateRoomSQL = `
UPDATE rooms
SET room_type = $2, price_cents = $3, photo = $4, updated_at = now()
WHERE id = $1`

	deleteRoomSQL = `DELETE FROM rooms WHERE id = $1`
)

type RoomRepository struct {
	logger *slog.Logger
}

func NewRoomRepository(logger *slog.Logger) *RoomRepository {
	return &RoomRepository{logger: logger}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) error {
	_, err := tx.Exec(ctx, insertRoomSQL,
		pgconv.UUIDToPgtype(rm.ID()),
		rm.RoomType(),
		rm.Price().Cents(),
		rm.Photo(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgError(err), "failed to create room", err)
	}
	return nil
}

// FindByIDForUpdate locks the room row until the surrounding transaction ends.
// Bookings for the same room serialize on this lock.
func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error) {
	var (
		rowID      pgtype.UUID
		roomType   string
		priceCents int64
		photo      []byte
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := tx.QueryRow(ctx, selectRoomForUpdateSQL, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &roomType, &priceCents, &photo, &createdAt, &updatedAt)
	if err != nil {
		kind := infra.ClassifyPgError(err)
		if kind == infra.KindNotFound {
			return nil, infra.WrapRepoErr(r.logger, kind, "room not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, kind, "failed to lock room", err)
	}

	return room.ReconstructRoom(
		pgconv.UUIDFromPgtype(rowID),
		roomType,
		pricing.NewMoney(priceCents),
		photo,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, rm *room.Room) error {
	tag, err := tx.Exec(ctx, updateRoomSQL,
		pgconv.UUIDToPgtype(rm.ID()),
		rm.RoomType(),
		rm.Price().Cents(),
		rm.Photo(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgError(err), "failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", nil)
	}
	return nil
}

// Delete removes the room; its bookings go with it (ON DELETE CASCADE).
func (r *RoomRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteRoomSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgError(err), "failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", nil)
	}
	return nil
}
