package frontdesk

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"suitenest/internal/client"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RoomAdmin is the management view over the catalog. Each successful write
// reloads the catalog from the backend.
type RoomAdmin struct {
	api     RoomManager
	catalog *RoomCatalog
	logger  *slog.Logger

	view      viewState
	roomTypes []string
}

func NewRoomAdmin(api RoomManager, catalog *RoomCatalog, logger *slog.Logger) *RoomAdmin {
	return &RoomAdmin{
		api:     api,
		catalog: catalog,
		logger:  logger,
	}
}

func (a *RoomAdmin) Catalog() *RoomCatalog {
	return a.catalog
}

// RoomTypes is the backend's list from the last Load.
func (a *RoomAdmin) RoomTypes() []string {
	a.view.mu.Lock()
	defer a.view.mu.Unlock()
	return slices.Clone(a.roomTypes)
}

// Load fetches the rooms and the room types together.
func (a *RoomAdmin) Load(ctx context.Context) error {
	a.view.mu.Lock()
	seq, err := a.view.begin()
	a.view.mu.Unlock()
	if err != nil {
		return err
	}

	var (
		rooms []Room
		types []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := a.api.AllRooms(gctx)
		if err != nil {
			return fmt.Errorf("list rooms: %w", err)
		}
		rooms = roomsFromResponse(resp)
		return nil
	})
	g.Go(func() error {
		resp, err := a.api.RoomTypes(gctx)
		if err != nil {
			return fmt.Errorf("list room types: %w", err)
		}
		types = resp
		return nil
	})
	if err := g.Wait(); err != nil {
		a.logger.Warn("room catalog load failed", "operation", "load_rooms", "error", err)
		return a.closedOr(err)
	}

	a.view.mu.Lock()
	defer a.view.mu.Unlock()
	ok, err := a.view.accept(seq)
	if err != nil || !ok {
		return err
	}
	a.roomTypes = types
	a.catalog.SetRooms(rooms)
	return nil
}

func (a *RoomAdmin) Add(ctx context.Context, in client.RoomUpload) (Room, error) {
	if err := a.checkOpen(); err != nil {
		return Room{}, err
	}
	resp, err := a.api.AddRoom(ctx, in)
	if err != nil {
		a.logger.Warn("add room failed", "operation", "add_room", "error", err)
		return Room{}, a.closedOr(fmt.Errorf("add room: %w", err))
	}
	return roomFromResponse(*resp), a.Load(ctx)
}

func (a *RoomAdmin) Update(ctx context.Context, id uuid.UUID, in client.RoomUpload) (Room, error) {
	if err := a.checkOpen(); err != nil {
		return Room{}, err
	}
	resp, err := a.api.UpdateRoom(ctx, id, in)
	if err != nil {
		a.logger.Warn("update room failed", "operation", "update_room", "room_id", id, "error", err)
		return Room{}, a.closedOr(fmt.Errorf("update room: %w", err))
	}
	return roomFromResponse(*resp), a.Load(ctx)
}

func (a *RoomAdmin) Delete(ctx context.Context, id uuid.UUID) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	if err := a.api.DeleteRoom(ctx, id); err != nil {
		a.logger.Warn("delete room failed", "operation", "delete_room", "room_id", id, "error", err)
		return a.closedOr(fmt.Errorf("delete room: %w", err))
	}
	return a.Load(ctx)
}

func (a *RoomAdmin) Close() {
	a.view.close()
}

func (a *RoomAdmin) checkOpen() error {
	a.view.mu.Lock()
	defer a.view.mu.Unlock()
	if a.view.closed {
		return ErrViewClosed
	}
	return nil
}

func (a *RoomAdmin) closedOr(err error) error {
	if cerr := a.checkOpen(); cerr != nil {
		return cerr
	}
	return err
}
