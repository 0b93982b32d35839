package frontdesk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"suitenest/internal/client"
	"suitenest/internal/domain/pricing"
	"suitenest/internal/pkg/clock"

	"github.com/google/uuid"
)

type State int

const (
	StateEditing State = iota
	StateValidated
	StateSubmitting
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidated:
		return "validated"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Confirmation is the backend's answer to an accepted booking.
type Confirmation struct {
	ConfirmationCode string
	Message          string
	Summary          Summary
}

// BookingLifecycle drives one room's booking form:
// Editing -> Validated -> Submitting -> Confirmed | Failed.
type BookingLifecycle struct {
	session Session
	roomID  uuid.UUID
	booker  Booker
	rooms   RoomFetcher
	calc    pricing.PriceCalculator
	clock   clock.Clock
	logger  *slog.Logger

	view         viewState
	state        State
	draft        BookingDraft
	price        *pricing.Money
	summary      Summary
	confirmation *Confirmation
	lastErr      error
	failure      string
}

func NewBookingLifecycle(
	session Session,
	roomID uuid.UUID,
	booker Booker,
	rooms RoomFetcher,
	calc pricing.PriceCalculator,
	clk clock.Clock,
	logger *slog.Logger,
) *BookingLifecycle {
	l := &BookingLifecycle{
		session: session,
		roomID:  roomID,
		booker:  booker,
		rooms:   rooms,
		calc:    calc,
		clock:   clk,
		logger:  logger,
	}
	l.reset()
	return l
}

// reset starts a fresh attempt. Must be called with mu held.
func (l *BookingLifecycle) reset() {
	l.state = StateEditing
	l.draft = BookingDraft{RoomID: l.roomID, GuestEmail: l.session.Email}
	l.summary = Summary{}
	l.confirmation = nil
	l.lastErr = nil
	l.failure = ""
}

// LoadRoom fetches the nightly price used by Summary. Until it succeeds the
// total is zero.
func (l *BookingLifecycle) LoadRoom(ctx context.Context) error {
	l.view.mu.Lock()
	seq, err := l.view.begin()
	l.view.mu.Unlock()
	if err != nil {
		return err
	}

	resp, err := l.rooms.Room(ctx, l.roomID)

	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if err != nil {
		l.logger.Warn("room lookup failed", "operation", "load_room", "room_id", l.roomID, "error", err)
		if l.view.closed {
			return ErrViewClosed
		}
		return fmt.Errorf("load room: %w", err)
	}
	ok, err := l.view.accept(seq)
	if err != nil || !ok {
		return err
	}
	price := resp.RoomPrice
	l.price = &price
	if l.state == StateValidated {
		l.summary = summarize(l.summary.Draft, l.price, l.calc)
	}
	return nil
}

func (l *BookingLifecycle) State() State {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	return l.state
}

func (l *BookingLifecycle) Draft() BookingDraft {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	return l.draft
}

// LastError is the failure recorded by the last Validate or Confirm.
func (l *BookingLifecycle) LastError() error {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	return l.lastErr
}

// FailureMessage is the backend's rejection message, unchanged.
func (l *BookingLifecycle) FailureMessage() string {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	return l.failure
}

// Edit changes the draft and returns to Editing. Editing a failed attempt
// starts a new one from the preserved draft; a confirmed one needs Restart.
// A nil mutate only returns to Editing.
func (l *BookingLifecycle) Edit(mutate func(*BookingDraft)) error {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if l.view.closed {
		return ErrViewClosed
	}
	switch l.state {
	case StateSubmitting, StateConfirmed:
		return ErrInvalidTransition
	}

	if mutate != nil {
		mutate(&l.draft)
	}
	l.draft.RoomID = l.roomID
	l.state = StateEditing
	l.summary = Summary{}
	l.lastErr = nil
	l.failure = ""
	return nil
}

func (l *BookingLifecycle) Validate() error {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if l.view.closed {
		return ErrViewClosed
	}
	if l.state != StateEditing && l.state != StateValidated {
		return ErrInvalidTransition
	}

	valid, err := l.draft.Validate(l.clock.Now())
	if err != nil {
		l.state = StateEditing
		l.lastErr = err
		return err
	}
	l.state = StateValidated
	l.summary = summarize(valid, l.price, l.calc)
	l.lastErr = nil
	return nil
}

func (l *BookingLifecycle) Summary() (Summary, error) {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if l.state != StateValidated {
		return Summary{}, ErrInvalidTransition
	}
	return l.summary, nil
}

// Confirm submits the validated draft. On success the draft is discarded; on
// rejection it is kept and the backend's message is available from
// FailureMessage.
func (l *BookingLifecycle) Confirm(ctx context.Context) (*Confirmation, error) {
	l.view.mu.Lock()
	if l.view.closed {
		l.view.mu.Unlock()
		return nil, ErrViewClosed
	}
	if l.state != StateValidated {
		l.view.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	l.state = StateSubmitting
	summary := l.summary
	req := summary.Draft.request()
	l.view.mu.Unlock()

	resp, err := l.booker.BookRoom(ctx, l.roomID, req)

	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if l.view.closed {
		return nil, ErrViewClosed
	}
	if err != nil {
		l.logger.Warn("booking rejected", "operation", "book_room", "room_id", l.roomID, "error", err)
		l.state = StateFailed
		l.failure = failureMessage(err)
		l.lastErr = fmt.Errorf("%w: %w", ErrSubmitConflict, err)
		return nil, l.lastErr
	}

	l.state = StateConfirmed
	l.draft = BookingDraft{}
	l.confirmation = &Confirmation{
		ConfirmationCode: resp.ConfirmationCode,
		Message:          resp.Message,
		Summary:          summary,
	}
	return l.confirmation, nil
}

// Booking is the confirmation of the last successful Confirm.
func (l *BookingLifecycle) Booking() *Confirmation {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	return l.confirmation
}

// Restart begins a new attempt with an empty draft.
func (l *BookingLifecycle) Restart() error {
	l.view.mu.Lock()
	defer l.view.mu.Unlock()
	if l.view.closed {
		return ErrViewClosed
	}
	if l.state == StateSubmitting {
		return ErrInvalidTransition
	}
	l.reset()
	return nil
}

func (l *BookingLifecycle) Close() {
	l.view.close()
}

func failureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
