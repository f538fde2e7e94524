package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_AddSubtract(t *testing.T) {
	a := Ledger(decimal.NewFromInt(220))
	b := Ledger(decimal.RequireFromString("80.50"))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "300.50 BOB", sum.String())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.RequireFromString("139.5")))

	_, err = a.Add(Zero(USD))
	assert.Error(t, err)
}

func TestMoney_MinAndSum(t *testing.T) {
	a := Ledger(decimal.NewFromInt(10))
	b := Ledger(decimal.NewFromInt(3))
	assert.True(t, a.Min(b).Equals(b))
	assert.True(t, b.Min(a).Equals(b))

	total := Sum(decimal.NewFromInt(100), decimal.NewFromInt(120))
	assert.True(t, total.Equals(Ledger(decimal.NewFromInt(220))))
}

func TestNewMoney_EmptyCurrency(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(1), "")
	assert.Error(t, err)
}
