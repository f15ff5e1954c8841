package pure

import "github.com/on-the-ground/memo_ive_go/memo"

// TableizeMethodI1O1 memoizes a method expression such as (*T).Area.
// The receiver is passed through to the method but is not part of the key
// unless memo.WithKeyedReceiver is given, so by default every receiver
// shares one table.
func TableizeMethodI1O1[R, I1, O1 any](
	method func(R, I1) O1,
	opts ...memo.Option,
) func(R, I1) O1 {
	memoized := memo.Must(func(receiver any, args ...any) (O1, error) {
		return method(arg[R](receiver), arg[I1](args[0])), nil
	}, opts...)
	return func(r R, i1 I1) O1 {
		return mustInvoke(memoized, r, i1)
	}
}

// TableizeMethodI2O1 is TableizeMethodI1O1 for two-argument methods.
func TableizeMethodI2O1[R, I1, I2, O1 any](
	method func(R, I1, I2) O1,
	opts ...memo.Option,
) func(R, I1, I2) O1 {
	memoized := memo.Must(func(receiver any, args ...any) (O1, error) {
		return method(arg[R](receiver), arg[I1](args[0]), arg[I2](args[1])), nil
	}, opts...)
	return func(r R, i1 I1, i2 I2) O1 {
		return mustInvoke(memoized, r, i1, i2)
	}
}

func mustInvoke[O any](fn *memo.Function[O], receiver any, args ...any) O {
	v, err := fn.Invoke(receiver, args...)
	if err != nil {
		panic(err)
	}
	return v
}
