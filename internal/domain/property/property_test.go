package property

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewUnit(t *testing.T) {
	u, err := NewUnit(" A-101 ", " apartment ", "Torre A")
	require.NoError(t, err)
	assert.Equal(t, "A-101", u.Code)
	assert.Equal(t, "APARTMENT", u.UnitType)
	assert.True(t, u.Active)

	_, err = NewUnit("", "APARTMENT", "")
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
	_, err = NewUnit("A-1", " ", "")
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
}

func TestContract_CoversPeriod(t *testing.T) {
	end := date(2025, time.March, 15)
	c, err := NewContract(uuid.New(), uuid.New(), decimal.NewFromInt(220), date(2025, time.January, 20), &end)
	require.NoError(t, err)

	tests := []struct {
		period string
		covers bool
	}{
		{"2024-12", false},
		{"2025-01", true},
		{"2025-02", true},
		{"2025-03", true},
		{"2025-04", false},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			assert.Equal(t, tt.covers, c.CoversPeriod(valueobject.MustParsePeriod(tt.period)))
		})
	}
}

func TestNewContract_Validation(t *testing.T) {
	_, err := NewContract(uuid.New(), uuid.New(), decimal.Zero, date(2025, 1, 1), nil)
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))

	before := date(2024, 1, 1)
	_, err = NewContract(uuid.New(), uuid.New(), decimal.NewFromInt(1), date(2025, 1, 1), &before)
	assert.Equal(t, shared.CodeValidation, shared.ErrorCode(err))
}

func TestPickActive_LatestStartWins(t *testing.T) {
	unitID := uuid.New()
	older, err := NewContract(unitID, uuid.New(), decimal.NewFromInt(200), date(2024, 1, 1), nil)
	require.NoError(t, err)
	newer, err := NewContract(unitID, uuid.New(), decimal.NewFromInt(250), date(2025, 2, 1), nil)
	require.NoError(t, err)

	picked := PickActive([]Contract{*older, *newer}, valueobject.MustParsePeriod("2025-03"))
	require.NotNil(t, picked)
	assert.True(t, picked.MonthlyAmount.Equal(decimal.NewFromInt(250)))

	picked = PickActive([]Contract{*older, *newer}, valueobject.MustParsePeriod("2025-01"))
	require.NotNil(t, picked)
	assert.True(t, picked.MonthlyAmount.Equal(decimal.NewFromInt(200)))

	require.NoError(t, older.Terminate(date(2024, 6, 30)))
	assert.Nil(t, PickActive([]Contract{*older}, valueobject.MustParsePeriod("2025-01")))
}

func TestContract_TerminateKeepsHistory(t *testing.T) {
	c, err := NewContract(uuid.New(), uuid.New(), decimal.NewFromInt(200), date(2024, 1, 1), nil)
	require.NoError(t, err)
	require.NoError(t, c.Terminate(date(2024, 6, 30)))

	assert.True(t, c.CoversPeriod(valueobject.MustParsePeriod("2024-06")))
	assert.False(t, c.CoversPeriod(valueobject.MustParsePeriod("2024-07")))
	assert.Equal(t, shared.CodeInvalidState, shared.ErrorCode(c.Terminate(date(2024, 7, 1))))
}
