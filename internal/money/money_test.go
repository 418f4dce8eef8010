package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Amount
	}{
		{"whole dollars", 12.00, 1200},
		{"cents", 12.34, 1234},
		{"rounds half up", 0.005, 1},
		{"rounds half away from zero", -0.005, -1},
		{"float noise", 0.1 + 0.2, 30},
		{"negative", -45.67, -4567},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFloat(tt.in))
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Amount
		want string
	}{
		{1234, "12.34"},
		{-1234, "-12.34"},
		{5, "0.05"},
		{-5, "-0.05"},
		{0, "0.00"},
		{100, "1.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Amount(1234))
	assert.NoError(t, err)
	assert.Equal(t, "12.34", string(data))

	var a Amount
	assert.NoError(t, json.Unmarshal([]byte("12.34"), &a))
	assert.Equal(t, Amount(1234), a)
}

func TestAbs(t *testing.T) {
	assert.Equal(t, Amount(50), Amount(-50).Abs())
	assert.Equal(t, Amount(50), Amount(50).Abs())
	assert.Equal(t, Amount(0), Amount(0).Abs())
}

func TestSum(t *testing.T) {
	assert.Equal(t, Amount(0), Sum())
	assert.Equal(t, Amount(60), Sum(10, 20, 30))
	assert.Equal(t, Amount(-10), Sum(10, -20))
}
