package pure_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/on-the-ground/memo_ive_go/hashing"
	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/pure"

	"github.com/stretchr/testify/assert"
)

func TestTableizeI0O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI0O1(func() string {
		count++
		return "abc"
	})

	fn()
	fn()
	assert.Equal(t, "abc", fn())
	assert.Equal(t, 1, count)
}

func TestTableizeI1O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestTableizeI2O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI2O1(func(a int, b string) string {
		count++
		return strconv.Itoa(a) + b
	})

	fn(1, "a")
	fn(1, "a")
	fn(2, "a")
	assert.Equal(t, "1a", fn(1, "a"))
	assert.Equal(t, 2, count)
}

func TestTableizeI3O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	})

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableizeI4O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI4O1(func(a, b, c, d int) int {
		count++
		return a + b + c + d
	}, memo.WithHashingStrategy(hashing.XXHash{}))

	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableizeI1O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	})

	a, b := fn(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a2, b2 := fn(10)
	assert.Equal(t, 10, a2)
	assert.Equal(t, "val", b2)
	assert.Equal(t, 1, count)
}

func TestTableizeI2O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI2O2(func(a, b int) (int, string) {
		count++
		return a * b, "mul"
	})

	x, y := fn(3, 4)
	assert.Equal(t, 12, x)
	assert.Equal(t, "mul", y)
	_, _ = fn(3, 4)
	assert.Equal(t, 1, count)
}

func TestTableizeI3O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI3O2(func(a, b, c int) (int, string) {
		count++
		return a + b + c, "sum"
	})

	x, y := fn(1, 2, 3)
	assert.Equal(t, 6, x)
	assert.Equal(t, "sum", y)
	_, _ = fn(1, 2, 3)
	assert.Equal(t, 1, count)
}

func TestTableizeI4O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI4O2(func(a, b, c, d int) (int, string) {
		count++
		return a * b * c * d, "product"
	})

	x, y := fn(1, 2, 3, 4)
	assert.Equal(t, 24, x)
	assert.Equal(t, "product", y)
	_, _ = fn(1, 2, 3, 4)
	assert.Equal(t, 1, count)
}

func TestTableizeI1O2_ErrorsAreNotCached(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O2(func(s string) (int, error) {
		count++
		return strconv.Atoi(s)
	})

	_, err := fn("x")
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	_, err = fn("x")
	assert.Error(t, err)
	assert.Equal(t, 2, count)

	n, err := fn("12")
	assert.NoError(t, err)
	assert.Equal(t, 12, n)
	_, _ = fn("12")
	assert.Equal(t, 3, count)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func TestTableizeWithNonComparableArgument(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(n NonComparable) int {
		count++
		return len(n.Field)
	})

	val := fn(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn(NonComparable{Field: []int{1, 2, 3}})
	val3 := fn(NonComparable{Field: []int{1, 2}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 2, val3)
	assert.Equal(t, 2, count)
}

func TestTableizeWithSliceArgument(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(xs []int) int {
		count++
		acc := 1
		for range xs[1] {
			acc *= xs[0]
		}
		return acc
	})

	fn([]int{2, 3})
	fn([]int{3, 2})
	fn([]int{2, 3})
	assert.Equal(t, 8, fn([]int{2, 3}))
	assert.Equal(t, 2, count)
}

func TestTableizeWithNilInterfaceArgument(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(err error) string {
		count++
		if err == nil {
			return "ok"
		}
		return err.Error()
	})

	assert.Equal(t, "ok", fn(nil))
	assert.Equal(t, "ok", fn(nil))
	assert.Equal(t, 1, count)
}

func TestTableizeWithInvalidOptionPanics(t *testing.T) {
	assert.Panics(t, func() {
		pure.TableizeI1O1(func(i int) int { return i }, memo.WithStore(nil))
	})
}
