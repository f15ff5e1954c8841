package pure

import (
	"errors"

	"github.com/on-the-ground/memo_ive_go/memo"
)

func TableizeI1O2[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...memo.Option,
) func(I1) (O1, O2) {
	tableized := tableize_dual_output(
		func(args ...any) (O1, O2) {
			return pureFn(arg[I1](args[0]))
		},
		opts...,
	)
	return func(i1 I1) (O1, O2) {
		return tableized(i1)
	}
}

func TableizeI2O2[I1, I2, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...memo.Option,
) func(I1, I2) (O1, O2) {
	tableized := tableize_dual_output(
		func(args ...any) (O1, O2) {
			return pureFn(arg[I1](args[0]), arg[I2](args[1]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		return tableized(i1, i2)
	}
}

func TableizeI3O2[I1, I2, I3, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	opts ...memo.Option,
) func(I1, I2, I3) (O1, O2) {
	tableized := tableize_dual_output(
		func(args ...any) (O1, O2) {
			return pureFn(arg[I1](args[0]), arg[I2](args[1]), arg[I3](args[2]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return tableized(i1, i2, i3)
	}
}

func TableizeI4O2[I1, I2, I3, I4, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	opts ...memo.Option,
) func(I1, I2, I3, I4) (O1, O2) {
	tableized := tableize_dual_output(
		func(args ...any) (O1, O2) {
			return pureFn(arg[I1](args[0]), arg[I2](args[1]), arg[I3](args[2]), arg[I4](args[3]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return tableized(i1, i2, i3, i4)
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

// errUncached marks results whose second output is a non-nil error.
var errUncached = errors.New("result carries an error")

func tableize_dual_output[O1, O2 any](
	pureFn func(...any) (O1, O2),
	opts ...memo.Option,
) func(...any) (O1, O2) {
	memoized := memo.Must(func(_ any, args ...any) (result[O1, O2], error) {
		v1, v2 := pureFn(args...)
		res := result[O1, O2]{O1: v1, O2: v2}
		if err, ok := any(v2).(error); ok && err != nil {
			return res, errUncached
		}
		return res, nil
	}, opts...)
	return func(args ...any) (O1, O2) {
		res, err := memoized.Invoke(nil, args...)
		if err != nil && !errors.Is(err, errUncached) {
			panic(err)
		}
		return res.O1, res.O2
	}
}
