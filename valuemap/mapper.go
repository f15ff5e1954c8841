// Package valuemap normalises argument values before they reach the key
// encoder. A Mapper sees every value the encoder visits, top-level arguments
// and nested members alike, and whatever it returns is what gets encoded.
package valuemap

import (
	"math"
	"unicode/utf8"
)

// Mapper transforms a raw value into its canonical form.
// Returning nil removes the value from the key.
type Mapper interface {
	Map(v any) any
}

// Func adapts a plain function to a Mapper.
type Func func(v any) any

func (f Func) Map(v any) any { return f(v) }

type identity struct{}

func (identity) Map(v any) any { return v }

// Identity leaves every value untouched.
var Identity Mapper = identity{}

// RoundFloats rounds float32 and float64 values to the given number of
// decimal places so representation noise does not cause cache misses.
func RoundFloats(places int) Mapper {
	scale := math.Pow10(places)
	round := func(f float64) float64 {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return f
		}
		return math.Round(f*scale) / scale
	}
	return Func(func(v any) any {
		switch f := v.(type) {
		case float64:
			return round(f)
		case float32:
			return float32(round(float64(f)))
		}
		return v
	})
}

// TruncateStrings keeps only the first n runes of string values.
func TruncateStrings(n int) Mapper {
	return Func(func(v any) any {
		s, ok := v.(string)
		if !ok || utf8.RuneCountInString(s) <= n {
			return v
		}
		return string([]rune(s)[:n])
	})
}

// Omit redacts values matching pred. Redacted values do not influence the key.
func Omit(pred func(v any) bool) Mapper {
	return Func(func(v any) any {
		if pred(v) {
			return nil
		}
		return v
	})
}

// Chain applies mappers left to right.
func Chain(mappers ...Mapper) Mapper {
	return Func(func(v any) any {
		for _, m := range mappers {
			v = m.Map(v)
		}
		return v
	})
}
