package stay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Capacity policy for a single room.
const (
	MinAdults   = 1
	MaxAdults   = 3
	MaxChildren = 2
)

var ErrInvalidGuestCount = errors.New("invalid guest count")

type GuestCount struct {
	adults   int
	children int
}

func NewGuestCount(adults, children int) (GuestCount, error) {
	if adults < MinAdults || adults > MaxAdults {
		return GuestCount{}, fmt.Errorf("%w: adults must be between %d and %d", ErrInvalidGuestCount, MinAdults, MaxAdults)
	}
	if children < 0 || children > MaxChildren {
		return GuestCount{}, fmt.Errorf("%w: children must be between 0 and %d", ErrInvalidGuestCount, MaxChildren)
	}
	return GuestCount{adults: adults, children: children}, nil
}

// ParseGuestCount validates raw form input.
func ParseGuestCount(adults, children string) (GuestCount, error) {
	a, err := strconv.Atoi(strings.TrimSpace(adults))
	if err != nil {
		return GuestCount{}, fmt.Errorf("%w: adults %q is not a number", ErrInvalidGuestCount, adults)
	}
	c, err := strconv.Atoi(strings.TrimSpace(children))
	if err != nil {
		return GuestCount{}, fmt.Errorf("%w: children %q is not a number", ErrInvalidGuestCount, children)
	}
	return NewGuestCount(a, c)
}

// ReconstructGuestCount rebuilds persisted counts without re-checking the policy.
func ReconstructGuestCount(adults, children int) GuestCount {
	return GuestCount{adults: adults, children: children}
}

func (g GuestCount) Adults() int   { return g.adults }
func (g GuestCount) Children() int { return g.children }
func (g GuestCount) Total() int    { return g.adults + g.children }
