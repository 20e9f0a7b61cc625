package stock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"150.00", 150.00, true},
		{"-1.5", -1.5, true},
		{"0", 0, true},
		{" 42.5 ", 42.5, true},
		{"", 0, false},
		{"None", 0, false},
		{"none", 0, false},
		{"-", 0, false},
		{"NaN", 0, false},
		{"null", 0, false},
		{"not a number", 0, false},
	}
	for _, tc := range cases {
		got := ParseFloat(tc.in)
		if tc.valid {
			assert.Equal(t, FloatOf(tc.want), got, "input %q", tc.in)
		} else {
			assert.False(t, got.Valid(), "input %q should parse as null", tc.in)
		}
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		in   string
		want Int
	}{
		{"2500000000000", IntOf(2500000000000)},
		{"0", IntOf(0)},
		{"-12", IntOf(-12)},
		{"2.5e12", IntOf(2500000000000)},
		{"52000000.0", IntOf(52000000)},
		{"", NullInt()},
		{"None", NullInt()},
		{"-", NullInt()},
		{"garbage", NullInt()},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseInt(tc.in), "input %q", tc.in)
	}
}

func TestFloatJSON(t *testing.T) {
	b, err := json.Marshal(FloatOf(1.01))
	require.NoError(t, err)
	assert.Equal(t, "1.01", string(b))

	b, err = json.Marshal(NullFloat())
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var f Float
	require.NoError(t, json.Unmarshal([]byte("null"), &f))
	assert.False(t, f.Valid())
	require.NoError(t, json.Unmarshal([]byte("3.5"), &f))
	assert.Equal(t, FloatOf(3.5), f)
}

func TestIntJSON(t *testing.T) {
	b, err := json.Marshal(IntOf(52000000))
	require.NoError(t, err)
	assert.Equal(t, "52000000", string(b))

	b, err = json.Marshal(NullInt())
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var i Int
	require.NoError(t, json.Unmarshal([]byte("null"), &i))
	assert.False(t, i.Set)
	require.NoError(t, json.Unmarshal([]byte("7"), &i))
	assert.Equal(t, IntOf(7), i)
}

func TestRecordJSON_NullsAndOmissions(t *testing.T) {
	rec := Record{
		Symbol:        "ZZZZ",
		Price:         NullFloat(),
		Change:        NullFloat(),
		ChangePercent: NullFloat(),
		Volume:        NullInt(),
		MarketCap:     NullInt(),
		Earnings:      []Earning{},
	}

	b, err := json.Marshal(rec)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "null", string(m["price"]))
	assert.Equal(t, "null", string(m["volume"]))
	assert.Equal(t, "null", string(m["logo"]))
	// Equity-only and ETF-only sections disappear when absent.
	assert.NotContains(t, m, "fundamentals")
	assert.NotContains(t, m, "etfProfile")
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "AAPL", NormalizeSymbol("  aapl "))
	assert.Equal(t, "BRK.B", NormalizeSymbol("brk.b"))
	assert.Equal(t, "", NormalizeSymbol("   "))
}
