package currency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairsplit/internal/money"
)

func TestConvertSameCurrency(t *testing.T) {
	svc := NewService()

	got, err := svc.Convert(money.FromFloat(12.34), "EUR", "EUR")
	require.NoError(t, err)
	assert.Equal(t, money.FromFloat(12.34), got)
}

func TestConvertPivotsThroughUSD(t *testing.T) {
	svc := NewService()

	// 100 USD at the seeded 0.92 EUR rate.
	got, err := svc.Convert(money.FromFloat(100), "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, money.FromFloat(92), got)

	// Converting back recovers the original within rounding.
	back, err := svc.Convert(got, "EUR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 100, back.Float(), 0.01)
}

func TestConvertUnsupportedCurrency(t *testing.T) {
	svc := NewService()

	_, err := svc.Convert(money.FromFloat(10), "USD", "XYZ")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)

	_, err = svc.Convert(money.FromFloat(10), "XYZ", "USD")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestRatesFluctuateWithinBounds(t *testing.T) {
	svc := NewService()
	before := svc.Supported()

	rates := svc.Rates()
	assert.Equal(t, 1.0, rates["USD"], "USD is the pivot and never moves")

	for _, c := range before {
		if c.Code == "USD" {
			continue
		}
		// One refresh drifts at most ±1%.
		assert.InDelta(t, c.Rate, rates[c.Code], c.Rate*0.011, c.Code)
		assert.Greater(t, rates[c.Code], 0.0)
	}
}

func TestSupportedSortedAndComplete(t *testing.T) {
	svc := NewService()
	currencies := svc.Supported()

	require.Len(t, currencies, 10)
	for i := 1; i < len(currencies); i++ {
		assert.Less(t, currencies[i-1].Code, currencies[i].Code)
	}
	assert.Equal(t, "USD", currencies[len(currencies)-1].Code)
	assert.Equal(t, "$", currencies[len(currencies)-1].Symbol)
}

func TestConcurrentRatesAndHistory(t *testing.T) {
	svc := NewService()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				svc.Rates()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := svc.Historical("EUR", 30)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestHistoricalDefaultsAndBounds(t *testing.T) {
	svc := NewService()

	points, err := svc.Historical("EUR", 0)
	require.NoError(t, err)
	assert.Len(t, points, 7, "out-of-range day counts fall back to a week")

	points, err = svc.Historical("EUR", 30)
	require.NoError(t, err)
	assert.Len(t, points, 30)

	_, err = svc.Historical("XYZ", 7)
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}
