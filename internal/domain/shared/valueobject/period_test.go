package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, p.Year())
	assert.Equal(t, time.March, p.Month())
	assert.Equal(t, "2024-03", p.String())

	for _, bad := range []string{"", "2024-13", "2024-3-1", "March 2024", "0001-01"} {
		_, err := ParsePeriod(bad)
		assert.Error(t, err, bad)
	}
}

func TestPeriod_Arithmetic(t *testing.T) {
	jan := MustParsePeriod("2024-01")

	assert.Equal(t, "2023-12", jan.AddMonths(-1).String())
	assert.Equal(t, "2025-01", jan.AddMonths(12).String())
	assert.Equal(t, "2024-02", jan.Next().String())
	assert.True(t, jan.Before(jan.Next()))
	assert.False(t, jan.Before(jan))
	assert.True(t, MustParsePeriod("2023-12").Before(jan))
}

func TestPeriod_Days(t *testing.T) {
	feb := MustParsePeriod("2024-02")

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), feb.FirstDay())
	assert.Equal(t, 29, feb.LastDay().Day())
	assert.Equal(t, 10, feb.DayOf(10).Day())
	assert.Equal(t, 29, feb.DayOf(31).Day())
	assert.Equal(t, 1, feb.DayOf(0).Day())
}

func TestPeriod_JSONAndSQL(t *testing.T) {
	p := MustParsePeriod("2024-07")

	data, err := p.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-07"`, string(data))

	var decoded Period
	require.NoError(t, decoded.UnmarshalJSON([]byte(`"2024-07"`)))
	assert.True(t, decoded.Equal(p))
	assert.Error(t, decoded.UnmarshalJSON([]byte(`"2024-7"`)))

	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-07", v)

	var scanned Period
	require.NoError(t, scanned.Scan([]byte("2024-07")))
	assert.Equal(t, p, scanned)
	assert.Error(t, scanned.Scan(42))
}
