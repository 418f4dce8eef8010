// Package currency provides a simulated exchange-rate source for display
// purposes. Balances are always computed in each expense's native currency;
// nothing in the balance or split math calls into this package.
package currency

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	"fairsplit/internal/money"
)

// ErrUnsupportedCurrency is returned for currency codes outside the rate table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Currency describes a supported currency with its current USD rate.
type Currency struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

// RatePoint is one day of simulated rate history.
type RatePoint struct {
	Date string  `json:"date"` // "2006-01-02"
	Rate float64 `json:"rate"`
}

type currencyInfo struct {
	name   string
	symbol string
}

var currencyDetails = map[string]currencyInfo{
	"USD": {"US Dollar", "$"},
	"EUR": {"Euro", "€"},
	"GBP": {"British Pound", "£"},
	"INR": {"Indian Rupee", "₹"},
	"JPY": {"Japanese Yen", "¥"},
	"CAD": {"Canadian Dollar", "C$"},
	"AUD": {"Australian Dollar", "A$"},
	"CHF": {"Swiss Franc", "CHF"},
	"CNY": {"Chinese Yuan", "¥"},
	"SGD": {"Singapore Dollar", "S$"},
}

// Service simulates an exchange-rate provider. Rates are USD-based and
// drift ±1% on every refresh to look alive.
type Service struct {
	mu          sync.Mutex
	rates       map[string]float64
	lastUpdated time.Time
	rng         *rand.Rand
}

// NewService creates a converter seeded with plausible USD-based rates.
func NewService() *Service {
	return &Service{
		rates: map[string]float64{
			"USD": 1.0,
			"EUR": 0.92,
			"GBP": 0.79,
			"INR": 83.12,
			"JPY": 149.50,
			"CAD": 1.36,
			"AUD": 1.53,
			"CHF": 0.88,
			"CNY": 7.24,
			"SGD": 1.34,
		},
		lastUpdated: time.Now(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Rates refreshes and returns the current rate table.
func (s *Service) Rates() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	for code, rate := range s.rates {
		if code == "USD" {
			continue
		}
		fluctuation := (s.rng.Float64() - 0.5) * 0.02 // ±1%
		next := rate + rate*fluctuation
		if next < 0.01 {
			next = 0.01
		}
		s.rates[code] = next
	}
	s.lastUpdated = time.Now()

	out := make(map[string]float64, len(s.rates))
	for code, rate := range s.rates {
		out[code] = rate
	}
	return out
}

// Convert converts an amount between currencies via the USD pivot, rounding
// to minor units. Display only; never used inside balance math.
func (s *Service) Convert(amount money.Amount, from, to string) (money.Amount, error) {
	if from == to {
		return amount, nil
	}

	s.mu.Lock()
	fromRate, okFrom := s.rates[from]
	toRate, okTo := s.rates[to]
	s.mu.Unlock()

	if !okFrom || !okTo {
		return 0, ErrUnsupportedCurrency
	}

	usd := amount.Float() / fromRate
	return money.FromFloat(usd * toRate), nil
}

// Supported lists the supported currencies with display metadata.
func (s *Service) Supported() []Currency {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes := make([]string, 0, len(s.rates))
	for code := range s.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	currencies := make([]Currency, 0, len(codes))
	for _, code := range codes {
		info := currencyDetails[code]
		currencies = append(currencies, Currency{
			Code:   code,
			Name:   info.name,
			Symbol: info.symbol,
			Rate:   s.rates[code],
		})
	}
	return currencies
}

// Historical simulates a daily rate history for a currency.
func (s *Service) Historical(code string, days int) ([]RatePoint, error) {
	if days < 1 || days > 90 {
		days = 7
	}

	// rng is shared with Rates and not goroutine-safe, so the lock covers
	// the whole simulation loop.
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.rates[code]
	if !ok {
		return nil, ErrUnsupportedCurrency
	}

	points := make([]RatePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		variation := (s.rng.Float64() - 0.5) * 0.05 // ±2.5%
		rate := current + current*variation
		if rate < 0.01 {
			rate = 0.01
		}
		points = append(points, RatePoint{
			Date: date.Format("2006-01-02"),
			Rate: float64(int(rate*10000)) / 10000,
		})
	}
	return points, nil
}

// LastUpdated reports when the rate table last changed.
func (s *Service) LastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdated
}
