package stock

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Providers deliver numbers as strings and mark missing values with empty
// strings or placeholder tokens. Float and Int carry the parsed value or an
// explicit null through to JSON output; raw provider strings never reach the
// domain model.

// Float is a float64 whose null state is NaN. It marshals to JSON null when
// null, so records survive encoding/json (which rejects bare NaN).
type Float float64

// NullFloat returns the null Float.
func NullFloat() Float { return Float(math.NaN()) }

// FloatOf wraps an available float64 value.
func FloatOf(v float64) Float { return Float(v) }

func (f Float) Valid() bool { return !math.IsNaN(float64(f)) }

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

func (f *Float) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = NullFloat()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// Int is an int64 with an explicit null state, marshaled as JSON null.
type Int struct {
	Value int64
	Set   bool
}

// NullInt returns the null Int.
func NullInt() Int { return Int{} }

// IntOf wraps an available int64 value.
func IntOf(v int64) Int { return Int{Value: v, Set: true} }

func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Set {
		return []byte("null"), nil
	}
	return json.Marshal(i.Value)
}

func (i *Int) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*i = Int{}
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*i = IntOf(v)
	return nil
}

// absent reports whether a provider string marks a missing value.
func absent(s string) bool {
	switch s {
	case "", "None", "none", "-", "NaN", "null":
		return true
	}
	return false
}

// ParseFloat coerces a provider string to a Float, null on failure.
func ParseFloat(s string) Float {
	s = strings.TrimSpace(s)
	if absent(s) {
		return NullFloat()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NullFloat()
	}
	return Float(v)
}

// ParseInt coerces a provider string to an Int, null on failure. Values in
// scientific or decimal notation are truncated toward zero, matching how
// market-cap style figures arrive from some providers.
func ParseInt(s string) Int {
	s = strings.TrimSpace(s)
	if absent(s) {
		return NullInt()
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntOf(v)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return IntOf(int64(f))
	}
	return NullInt()
}
