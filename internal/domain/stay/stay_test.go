//go:build unit

package stay_test

import (
	"testing"
	"time"

	"suitenest/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)

func date(s string) time.Time {
	t, err := stay.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDateRange(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		errIs    error
	}{
		{name: "three nights OK", checkIn: "2024-01-01", checkOut: "2024-01-04"},
		{name: "check-in today OK", checkIn: "2024-01-01", checkOut: "2024-01-02"},
		{name: "surrounding spaces OK", checkIn: " 2024-01-02 ", checkOut: "2024-01-03 "},
		{name: "same day NG", checkIn: "2024-01-05", checkOut: "2024-01-05", errIs: stay.ErrInvalidRange},
		{name: "check-out before check-in NG", checkIn: "2024-01-05", checkOut: "2024-01-03", errIs: stay.ErrInvalidRange},
		{name: "check-in in the past NG", checkIn: "2023-12-31", checkOut: "2024-01-03", errIs: stay.ErrInvalidRange},
		{name: "unparseable check-in NG", checkIn: "01/02/2024", checkOut: "2024-01-03", errIs: stay.ErrInvalidRange},
		{name: "unparseable check-out NG", checkIn: "2024-01-02", checkOut: "", errIs: stay.ErrInvalidRange},
		{name: "impossible date NG", checkIn: "2024-02-30", checkOut: "2024-03-02", errIs: stay.ErrInvalidRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := stay.ParseDateRange(c.checkIn, c.checkOut, today)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, r.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, date(c.checkIn).Format(stay.DateLayout), stay.FormatDate(r.CheckIn()))
		})
	}
}

func TestNewDateRange_RejectsExactlyInvalidRanges(t *testing.T) {
	base := stay.CalendarDate(today)
	for inOffset := -3; inOffset <= 3; inOffset++ {
		for outOffset := -3; outOffset <= 6; outOffset++ {
			checkIn := base.AddDate(0, 0, inOffset)
			checkOut := base.AddDate(0, 0, outOffset)

			_, err := stay.NewDateRange(checkIn, checkOut, today)

			wantReject := !checkOut.After(checkIn) || checkIn.Before(base)
			if wantReject {
				assert.ErrorIs(t, err, stay.ErrInvalidRange, "in=%d out=%d", inOffset, outOffset)
			} else {
				assert.NoError(t, err, "in=%d out=%d", inOffset, outOffset)
			}
		}
	}
}

func TestDateRange_Nights(t *testing.T) {
	r, err := stay.ParseDateRange("2024-01-01", "2024-01-04", today)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Nights())
	assert.Equal(t, "2024-01-01/2024-01-04", r.String())

	assert.Equal(t, 0, stay.DateRange{}.Nights())

	acrossMonth := stay.ReconstructDateRange(date("2024-02-27"), date("2024-03-02"))
	assert.Equal(t, 4, acrossMonth.Nights())
}

func TestDateRange_Overlaps(t *testing.T) {
	booked := stay.ReconstructDateRange(date("2024-03-10"), date("2024-03-15"))

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{name: "identical", checkIn: "2024-03-10", checkOut: "2024-03-15", want: true},
		{name: "inside", checkIn: "2024-03-11", checkOut: "2024-03-12", want: true},
		{name: "covering", checkIn: "2024-03-01", checkOut: "2024-03-20", want: true},
		{name: "straddles start", checkIn: "2024-03-08", checkOut: "2024-03-11", want: true},
		{name: "straddles end", checkIn: "2024-03-14", checkOut: "2024-03-18", want: true},
		{name: "checks in on departure day", checkIn: "2024-03-15", checkOut: "2024-03-17", want: false},
		{name: "checks out on arrival day", checkIn: "2024-03-08", checkOut: "2024-03-10", want: false},
		{name: "entirely before", checkIn: "2024-03-01", checkOut: "2024-03-03", want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			other := stay.ReconstructDateRange(date(c.checkIn), date(c.checkOut))
			assert.Equal(t, c.want, booked.Overlaps(other))
			assert.Equal(t, c.want, other.Overlaps(booked))
		})
	}
}

func TestDateRange_Within(t *testing.T) {
	r := stay.ReconstructDateRange(date("2024-03-10"), date("2024-03-15"))

	assert.True(t, r.Within(date("2024-03-01"), date("2024-03-31")))
	assert.True(t, r.Within(date("2024-03-10"), date("2024-03-15")))
	assert.False(t, r.Within(date("2024-03-11"), date("2024-03-31")))
	assert.False(t, r.Within(date("2024-03-01"), date("2024-03-14")))
}

func TestCalendarDate_KeepsLocalDay(t *testing.T) {
	tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)
	lateEvening := time.Date(2024, 5, 1, 23, 30, 0, 0, tokyo)

	assert.Equal(t, "2024-05-01", stay.FormatDate(stay.CalendarDate(lateEvening)))
}

func TestGuestCount(t *testing.T) {
	for adults := -1; adults <= 5; adults++ {
		for children := -1; children <= 4; children++ {
			g, err := stay.NewGuestCount(adults, children)

			wantAccept := adults >= 1 && adults <= 3 && children >= 0 && children <= 2
			if wantAccept {
				require.NoError(t, err, "adults=%d children=%d", adults, children)
				assert.Equal(t, adults+children, g.Total())
			} else {
				assert.ErrorIs(t, err, stay.ErrInvalidGuestCount, "adults=%d children=%d", adults, children)
			}
		}
	}
}

func TestParseGuestCount(t *testing.T) {
	cases := []struct {
		name     string
		adults   string
		children string
		errIs    error
	}{
		{name: "numeric OK", adults: "2", children: "1"},
		{name: "padded OK", adults: " 3 ", children: "0"},
		{name: "non-numeric adults NG", adults: "two", children: "0", errIs: stay.ErrInvalidGuestCount},
		{name: "non-numeric children NG", adults: "1", children: "1.5", errIs: stay.ErrInvalidGuestCount},
		{name: "empty adults NG", adults: "", children: "0", errIs: stay.ErrInvalidGuestCount},
		{name: "zero adults NG", adults: "0", children: "2", errIs: stay.ErrInvalidGuestCount},
		{name: "too many children NG", adults: "1", children: "3", errIs: stay.ErrInvalidGuestCount},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := stay.ParseGuestCount(c.adults, c.children)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
