package frontdesk

import (
	"slices"
	"strings"
	"sync"
)

const DefaultPageSize = 8

type Predicate func(Room) bool

func RoomTypeIs(roomType string) Predicate {
	return func(r Room) bool { return r.RoomType == roomType }
}

// RoomTypeContains matches case-insensitively anywhere in the room type.
func RoomTypeContains(s string) Predicate {
	needle := strings.ToLower(s)
	return func(r Room) bool { return strings.Contains(strings.ToLower(r.RoomType), needle) }
}

// Filter returns the matching rooms in source order. A nil predicate keeps all.
func Filter(rooms []Room, pred Predicate) []Room {
	if pred == nil {
		return slices.Clone(rooms)
	}
	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Paginate returns the 1-based page of items, clamped to the slice.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := min(start+size, len(items))
	return slices.Clone(items[start:end])
}

func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// RoomCatalog is a paged, filterable snapshot of the rooms. The loaded rooms
// are never modified by filtering.
type RoomCatalog struct {
	mu       sync.Mutex
	rooms    []Room
	filtered []Room
	filter   Predicate
	page     int
	pageSize int
}

func NewRoomCatalog(rooms []Room, pageSize int) *RoomCatalog {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	c := &RoomCatalog{pageSize: pageSize, page: 1}
	c.setRooms(rooms)
	return c
}

// SetRooms replaces the snapshot, keeps the active filter and returns to page 1.
func (c *RoomCatalog) SetRooms(rooms []Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setRooms(rooms)
}

func (c *RoomCatalog) setRooms(rooms []Room) {
	c.rooms = slices.Clone(rooms)
	c.applyFilter(c.filter)
}

// SetFilter applies pred, or removes the filter when pred is nil. Either way
// the catalog moves to page 1.
func (c *RoomCatalog) SetFilter(pred Predicate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyFilter(pred)
}

// FilterByRoomType keeps the rooms of exactly roomType; "" shows every room.
func (c *RoomCatalog) FilterByRoomType(roomType string) {
	if roomType == "" {
		c.SetFilter(nil)
		return
	}
	c.SetFilter(RoomTypeIs(roomType))
}

func (c *RoomCatalog) applyFilter(pred Predicate) {
	c.filter = pred
	if pred == nil {
		c.filtered = nil
	} else {
		c.filtered = Filter(c.rooms, pred)
	}
	c.page = 1
}

func (c *RoomCatalog) visible() []Room {
	if c.filter == nil {
		return c.rooms
	}
	return c.filtered
}

// Rooms returns every room that passes the filter.
func (c *RoomCatalog) Rooms() []Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.visible())
}

func (c *RoomCatalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.visible())
}

func (c *RoomCatalog) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return TotalPages(len(c.visible()), c.pageSize)
}

func (c *RoomCatalog) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// SetPage moves to page p, clamped to [1, TotalPages].
func (c *RoomCatalog) SetPage(p int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	last := max(TotalPages(len(c.visible()), c.pageSize), 1)
	c.page = min(max(p, 1), last)
}

func (c *RoomCatalog) PageRooms() []Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Paginate(c.visible(), c.page, c.pageSize)
}

// RoomTypes lists the distinct room types of the snapshot in first-seen order.
func (c *RoomCatalog) RoomTypes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	seen := make(map[string]struct{}, len(c.rooms))
	var out []string
	for _, r := range c.rooms {
		if _, ok := seen[r.RoomType]; ok {
			continue
		}
		seen[r.RoomType] = struct{}{}
		out = append(out, r.RoomType)
	}
	return out
}
