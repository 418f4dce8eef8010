package split

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fairsplit/internal/money"
)

var members = []Participant{
	{ID: 1, Name: "Alice"},
	{ID: 2, Name: "Bob"},
	{ID: 3, Name: "Carol"},
}

func shareAmounts(shares []Share) []money.Amount {
	amounts := make([]money.Amount, len(shares))
	for i, s := range shares {
		amounts[i] = s.Amount
	}
	return amounts
}

func TestCalculateEqual(t *testing.T) {
	tests := []struct {
		name    string
		total   money.Amount
		members []Participant
		want    []money.Amount
	}{
		{
			name:    "divides evenly",
			total:   9000,
			members: members,
			want:    []money.Amount{3000, 3000, 3000},
		},
		{
			name:    "remainder goes to first member",
			total:   10000, // 100.00 / 3
			members: members,
			want:    []money.Amount{3334, 3333, 3333},
		},
		{
			name:    "single member takes everything",
			total:   5000,
			members: members[:1],
			want:    []money.Amount{5000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Calculate(tt.total, Equal{}, tt.members)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, shareAmounts(shares))
			assert.NoError(t, Validate(tt.total, shares))
		})
	}
}

func TestCalculateCustom(t *testing.T) {
	method := Custom{Amounts: map[int64]money.Amount{
		1: 6000,
		2: 4000,
	}}

	shares, err := Calculate(10000, method, members)
	assert.NoError(t, err)
	// Carol is not in the map, she owes zero.
	assert.Equal(t, []money.Amount{6000, 4000, 0}, shareAmounts(shares))
	assert.NoError(t, Validate(10000, shares))
}

func TestCalculatePercentage(t *testing.T) {
	method := Percentage{Percentages: map[int64]float64{
		1: 50,
		2: 30,
		3: 20,
	}}

	shares, err := Calculate(20000, method, members)
	assert.NoError(t, err)
	assert.Equal(t, []money.Amount{10000, 6000, 4000}, shareAmounts(shares))
	assert.NoError(t, Validate(20000, shares))
	assert.InDelta(t, 100, method.Total(), 1e-9)
}

func TestCalculateDoesNotRejectMismatch(t *testing.T) {
	// Mid-edit custom amounts may not reconcile yet; Calculate stays quiet
	// and Validate is where creation fails.
	method := Custom{Amounts: map[int64]money.Amount{1: 100}}

	shares, err := Calculate(10000, method, members)
	assert.NoError(t, err)
	assert.ErrorIs(t, Validate(10000, shares), ErrSplitMismatch)
}

func TestCalculateInputErrors(t *testing.T) {
	_, err := Calculate(1000, nil, members)
	assert.ErrorIs(t, err, ErrNilMethod)

	_, err = Calculate(1000, Equal{}, nil)
	assert.ErrorIs(t, err, ErrNoMembers)

	_, err = Calculate(0, Equal{}, members)
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = Calculate(-500, Equal{}, members)
	assert.ErrorIs(t, err, ErrNonPositiveAmount)
}

func TestValidateTolerance(t *testing.T) {
	shares := []Share{{MemberID: 1, Amount: 3333}, {MemberID: 2, Amount: 3333}, {MemberID: 3, Amount: 3333}}

	// One cent off reconciles, two cents off does not.
	assert.NoError(t, Validate(10000, shares))
	assert.ErrorIs(t, Validate(10001, shares), ErrSplitMismatch)
}
