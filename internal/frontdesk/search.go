package frontdesk

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"suitenest/internal/domain/stay"
	"suitenest/internal/pkg/clock"
)

type SearchQuery struct {
	CheckIn  string
	CheckOut string
	RoomType string
}

// AvailabilitySearch finds rooms free for a stay. Every Search is a fresh
// remote query; when one fails the previous results stay on display.
type AvailabilitySearch struct {
	inventory Inventory
	clock     clock.Clock
	logger    *slog.Logger

	view    viewState
	query   SearchQuery
	results []Room
}

func NewAvailabilitySearch(inventory Inventory, clk clock.Clock, logger *slog.Logger) *AvailabilitySearch {
	return &AvailabilitySearch{
		inventory: inventory,
		clock:     clk,
		logger:    logger,
	}
}

// Search returns the rooms available for q. An invalid range fails with
// stay.ErrInvalidRange before anything is sent. A transport failure returns
// ErrSearchUnavailable and keeps the displayed results.
func (s *AvailabilitySearch) Search(ctx context.Context, q SearchQuery) (iter.Seq[Room], error) {
	r, err := stay.ParseDateRange(q.CheckIn, q.CheckOut, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.view.mu.Lock()
	seq, err := s.view.begin()
	s.view.mu.Unlock()
	if err != nil {
		return nil, err
	}

	resp, err := s.inventory.AvailableRooms(ctx, stay.FormatDate(r.CheckIn()), stay.FormatDate(r.CheckOut()), q.RoomType)

	s.view.mu.Lock()
	defer s.view.mu.Unlock()
	if err != nil {
		s.logger.Warn("availability search failed", "operation", "search", "error", err)
		if s.view.closed {
			return nil, ErrViewClosed
		}
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}

	rooms := roomsFromResponse(resp)
	ok, err := s.view.accept(seq)
	if err != nil {
		return nil, err
	}
	if ok {
		s.query = q
		s.results = rooms
	}
	return slices.Values(rooms), nil
}

func (s *AvailabilitySearch) Results() []Room {
	s.view.mu.Lock()
	defer s.view.mu.Unlock()
	return slices.Clone(s.results)
}

func (s *AvailabilitySearch) Query() SearchQuery {
	s.view.mu.Lock()
	defer s.view.mu.Unlock()
	return s.query
}

// Clear resets the query and results. Searches still in flight are discarded.
func (s *AvailabilitySearch) Clear() {
	s.view.mu.Lock()
	defer s.view.mu.Unlock()
	s.view.invalidate()
	s.query = SearchQuery{}
	s.results = nil
}

func (s *AvailabilitySearch) Close() {
	s.view.close()
}
