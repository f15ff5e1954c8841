package valuemap_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/memo_ive_go/valuemap"

	"github.com/stretchr/testify/assert"
)

type secret string

func TestIdentity(t *testing.T) {
	x := &struct{ A int }{A: 1}
	assert.Same(t, x, valuemap.Identity.Map(x))
	assert.Equal(t, 3, valuemap.Identity.Map(3))
	assert.Nil(t, valuemap.Identity.Map(nil))
}

func TestRoundFloats(t *testing.T) {
	m := valuemap.RoundFloats(2)

	assert.Equal(t, 0.3, m.Map(0.1+0.2))
	assert.Equal(t, 1.23, m.Map(1.2345))
	assert.Equal(t, float32(2.5), m.Map(float32(2.4999)))
	assert.Equal(t, "1.2345", m.Map("1.2345"))
	assert.Equal(t, 7, m.Map(7))
	assert.True(t, math.IsInf(m.Map(math.Inf(1)).(float64), 1))
}

func TestTruncateStrings(t *testing.T) {
	m := valuemap.TruncateStrings(3)

	assert.Equal(t, "abc", m.Map("abcdef"))
	assert.Equal(t, "ab", m.Map("ab"))
	assert.Equal(t, "한국어", m.Map("한국어입니다"))
	assert.Equal(t, 12345, m.Map(12345))
}

func TestOmit(t *testing.T) {
	m := valuemap.Omit(func(v any) bool {
		_, ok := v.(secret)
		return ok
	})

	assert.Nil(t, m.Map(secret("hunter2")))
	assert.Equal(t, "public", m.Map("public"))
}

func TestChain(t *testing.T) {
	m := valuemap.Chain(
		valuemap.RoundFloats(0),
		valuemap.Func(func(v any) any {
			if f, ok := v.(float64); ok {
				return int(f)
			}
			return v
		}),
	)

	assert.Equal(t, 3, m.Map(2.6))
	assert.Equal(t, "x", m.Map("x"))
	assert.Equal(t, 5, valuemap.Chain().Map(5))
}
