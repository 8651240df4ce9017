package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// moneyLimit is 2^63, the first magnitude whose cents no longer fit in an int64.
const moneyLimit = float64(1 << 63)

// Money is an amount in cents. It is stored as an integer column and
// rendered in JSON as a decimal number with two fraction digits.
type Money int64

// NewMoney converts a decimal amount to cents, rounding half away from zero.
func NewMoney(amount float64) Money {
	return Money(math.Round(amount * 100))
}

func (m Money) Float64() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || string(b) == "null" {
		*m = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", string(b))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid amount %q", string(b))
	}
	if math.Abs(math.Round(f*100)) >= moneyLimit {
		return fmt.Errorf("amount %q is out of range", string(b))
	}
	*m = NewMoney(f)
	return nil
}
