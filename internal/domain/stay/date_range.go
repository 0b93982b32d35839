package stay

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidRange = errors.New("invalid date range")

// DateRange is a stay between two calendar dates. CheckOut is the departure day
// and is not billed.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut, today time.Time) (DateRange, error) {
	in, out := CalendarDate(checkIn), CalendarDate(checkOut)

	if in.Before(CalendarDate(today)) {
		return DateRange{}, fmt.Errorf("%w: check-in date cannot be in the past", ErrInvalidRange)
	}
	if !out.After(in) {
		return DateRange{}, fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidRange)
	}

	return DateRange{checkIn: in, checkOut: out}, nil
}

func ParseDateRange(checkIn, checkOut string, today time.Time) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check-in date %q is not a valid date", ErrInvalidRange, checkIn)
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check-out date %q is not a valid date", ErrInvalidRange, checkOut)
	}
	return NewDateRange(in, out, today)
}

// ReconstructDateRange rebuilds a persisted range. The "not in the past" rule only
// applies when a stay is requested, so it is not checked here.
func ReconstructDateRange(checkIn, checkOut time.Time) DateRange {
	return DateRange{checkIn: CalendarDate(checkIn), checkOut: CalendarDate(checkOut)}
}

func (r DateRange) CheckIn() time.Time  { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }
func (r DateRange) IsZero() bool        { return r.checkIn.IsZero() && r.checkOut.IsZero() }

func (r DateRange) Nights() int {
	if r.IsZero() {
		return 0
	}
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Overlaps treats both ranges as half-open, so a guest may check in on the day
// the previous guest checks out.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

// Within reports whether the stay starts on or after from, ends on or before to,
// and ends after from.
func (r DateRange) Within(from, to time.Time) bool {
	from, to = CalendarDate(from), CalendarDate(to)
	return !r.checkIn.Before(from) && !r.checkOut.After(to) && r.checkOut.After(from)
}

func (r DateRange) String() string {
	return FormatDate(r.checkIn) + "/" + FormatDate(r.checkOut)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CalendarDate drops the clock part of t, keeping the calendar day as seen in t's
// own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
