package split

import "fairsplit/internal/money"

// Kind identifies a split method on the wire and in storage.
type Kind string

const (
	KindEqual      Kind = "equal"
	KindCustom     Kind = "custom"
	KindPercentage Kind = "percentage"
)

// Method is a sealed variant describing how an expense is divided among
// participants. The three implementations below are the only ones; using a
// closed type set instead of string dispatch means an unknown method cannot
// reach the calculator.
type Method interface {
	Kind() Kind
	sealed()
}

// Equal divides the total evenly among all participants.
type Equal struct{}

func (Equal) Kind() Kind { return KindEqual }
func (Equal) sealed()    {}

// Custom assigns each participant the exact amount from Amounts. Members
// absent from the map owe zero.
type Custom struct {
	Amounts map[int64]money.Amount
}

func (Custom) Kind() Kind { return KindCustom }
func (Custom) sealed()    {}

// Percentage assigns each participant a share of the total based on
// Percentages. The calculator does not require the percentages to sum to
// 100; callers validate the resulting total instead (see Total).
type Percentage struct {
	Percentages map[int64]float64
}

func (Percentage) Kind() Kind { return KindPercentage }
func (Percentage) sealed()    {}

// Total reports the sum of the configured percentages so callers can check
// whether they add up to 100 before trusting the computed shares.
func (p Percentage) Total() float64 {
	var sum float64
	for _, pct := range p.Percentages {
		sum += pct
	}
	return sum
}
