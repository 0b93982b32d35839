package pricing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount  = errors.New("invalid money amount")
	ErrNegativeAmount = errors.New("money amount cannot be negative")
)

// Money is an amount in cents of the single house currency.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// maxUnits keeps units*100 + 99 within int64.
const maxUnits = (math.MaxInt64 - 99) / 100

// ParseMoney accepts decimal strings such as "100", "99.5" or "120.00".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		return fromFloat(f)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if strings.HasPrefix(whole, "-") {
		return Money{}, ErrNegativeAmount
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2 || !isDigits(frac)) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > maxUnits {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents = int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	}

	return Money{cents: units*100 + cents}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func fromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, ErrInvalidAmount
	}
	if f < 0 {
		return Money{}, ErrNegativeAmount
	}
	cents := math.Round(f * 100)
	// float64(MaxInt64) rounds up to 2^63, which no longer fits
	if cents >= math.MaxInt64 {
		return Money{}, ErrInvalidAmount
	}
	return Money{cents: int64(cents)}, nil
}

func (m Money) Cents() int64 { return m.cents }
func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) String() string {
	sign, u := "", uint64(m.cents)
	if m.cents < 0 {
		sign, u = "-", -u
	}
	return fmt.Sprintf("%s%d.%02d", sign, u/100, u%100)
}

// MarshalJSON writes the amount as a plain decimal number, e.g. 120.50.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}

	var raw json.Number
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = json.Number(s)
	} else {
		raw = json.Number(data)
	}

	parsed, err := ParseMoney(raw.String())
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
