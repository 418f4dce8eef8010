// Package money provides fixed-point currency amounts stored as integer
// minor units (cents). All balance and split arithmetic happens on Amount;
// floating point appears only at the JSON boundary.
package money

import (
	"encoding/json"
	"fmt"
	"math"
)

// Amount is a currency amount in minor units (e.g. cents).
type Amount int64

// Tolerance is the maximum reconciliation drift allowed when validating that
// split amounts add up to an expense total: one minor unit (0.01).
const Tolerance Amount = 1

// FromFloat converts a decimal currency value to minor units, rounding half
// away from zero.
func FromFloat(v float64) Amount {
	return Amount(math.Round(v * 100))
}

// Float converts the amount back to a decimal currency value.
func (a Amount) Float() float64 {
	return float64(a) / 100
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// String formats the amount with exactly two decimal places.
func (a Amount) String() string {
	sign := ""
	v := a
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a plain decimal number (12.34), matching
// what API clients expect for currency values.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a decimal number and stores it as minor units.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = FromFloat(v)
	return nil
}

// Sum adds up a list of amounts.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total += a
	}
	return total
}
