package pure

import (
	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

func TableizeI0O1[O1 any](
	pureFn func() O1,
	opts ...memo.Option,
) func() O1 {
	tableized := tableize(
		func(...any) O1 {
			return pureFn()
		},
		opts...,
	)
	return func() O1 {
		return tableized()
	}
}

func TableizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	opts ...memo.Option,
) func(I1) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args[0]))
		},
		opts...,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	opts ...memo.Option,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args[0]), arg[I2](args[1]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...memo.Option,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args[0]), arg[I2](args[1]), arg[I3](args[2]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...memo.Option,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args[0]), arg[I2](args[1]), arg[I3](args[2]), arg[I4](args[3]))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

// arg recovers a typed argument. Nil interface arguments become T's zero value.
func arg[T any](v any) T {
	t, err := helper.GetTypedValueOf[T](v)
	if err != nil {
		panic(err)
	}
	return t
}

func tableize[O any](
	pureFn func(...any) O,
	opts ...memo.Option,
) func(...any) O {
	memoized := memo.Must(func(_ any, args ...any) (O, error) {
		return pureFn(args...), nil
	}, opts...)
	return func(args ...any) O {
		return mustInvoke(memoized, nil, args...)
	}
}
