package purefn

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Decorator turns a function into its memoized form.
type Decorator[A, R any] func(fn func(A) (R, error)) func(A) (R, error)

// Memoize returns a decorator caching results of the decorated function by
// keyOf(arg). Every application of the decorator gets its own table.
//
//	square := purefn.Memoize[int, int, int](purefn.Identity[int])(
//		func(n int) (int, error) { return n * n, nil },
//	)
func Memoize[A any, K comparable, R any](keyOf func(A) (K, error), opts ...Option) Decorator[A, R] {
	if keyOf == nil {
		panic("memoize: nil key function")
	}
	cfg := newConfig(opts)
	return func(fn func(A) (R, error)) func(A) (R, error) {
		return memoize(keyOf, fn, cfg.named(2))
	}
}

// Wrap memoizes fn by keyOf(arg) in one step.
func Wrap[A any, K comparable, R any](keyOf func(A) (K, error), fn func(A) (R, error), opts ...Option) func(A) (R, error) {
	if keyOf == nil {
		panic("memoize: nil key function")
	}
	return memoize(keyOf, fn, newConfig(opts).named(2))
}

type args2[I1, I2 any] struct {
	i1 I1
	i2 I2
}

type args3[I1, I2, I3 any] struct {
	i1 I1
	i2 I2
	i3 I3
}

// MemoizeI2 is Memoize for two-argument functions.
func MemoizeI2[I1, I2 any, K comparable, R any](
	keyOf func(I1, I2) (K, error),
	opts ...Option,
) func(func(I1, I2) (R, error)) func(I1, I2) (R, error) {
	if keyOf == nil {
		panic("memoize: nil key function")
	}
	cfg := newConfig(opts)
	return func(fn func(I1, I2) (R, error)) func(I1, I2) (R, error) {
		if fn == nil {
			panic("memoize: nil function")
		}
		memoized := memoize(
			func(a args2[I1, I2]) (K, error) {
				return keyOf(a.i1, a.i2)
			},
			func(a args2[I1, I2]) (R, error) {
				return fn(a.i1, a.i2)
			},
			cfg.named(2),
		)
		return func(i1 I1, i2 I2) (R, error) {
			return memoized(args2[I1, I2]{i1: i1, i2: i2})
		}
	}
}

// MemoizeI3 is Memoize for three-argument functions.
func MemoizeI3[I1, I2, I3 any, K comparable, R any](
	keyOf func(I1, I2, I3) (K, error),
	opts ...Option,
) func(func(I1, I2, I3) (R, error)) func(I1, I2, I3) (R, error) {
	if keyOf == nil {
		panic("memoize: nil key function")
	}
	cfg := newConfig(opts)
	return func(fn func(I1, I2, I3) (R, error)) func(I1, I2, I3) (R, error) {
		if fn == nil {
			panic("memoize: nil function")
		}
		memoized := memoize(
			func(a args3[I1, I2, I3]) (K, error) {
				return keyOf(a.i1, a.i2, a.i3)
			},
			func(a args3[I1, I2, I3]) (R, error) {
				return fn(a.i1, a.i2, a.i3)
			},
			cfg.named(2),
		)
		return func(i1 I1, i2 I2, i3 I3) (R, error) {
			return memoized(args3[I1, I2, I3]{i1: i1, i2: i2, i3: i3})
		}
	}
}

// Lift adapts an infallible function to the signature Memoize expects.
func Lift[A, R any](fn func(A) R) func(A) (R, error) {
	return func(a A) (R, error) {
		return fn(a), nil
	}
}

func memoize[A any, K comparable, R any](
	keyOf func(A) (K, error),
	fn func(A) (R, error),
	cfg config,
) func(A) (R, error) {
	if fn == nil {
		panic("memoize: nil function")
	}
	memo := newTable[K, R]()
	logger := cfg.logger.With(
		zap.String("memo", cfg.name),
		zap.String("memo_id", uuid.New().String()),
		zap.Stringer("hit_policy", cfg.policy),
	)

	return func(a A) (R, error) {
		key, err := keyOf(a)
		if err != nil {
			var zero R
			return zero, err
		}

		if v, ok := memo.Load(key); ok && cfg.policy.hit(v) {
			if ce := logger.Check(zap.DebugLevel, "returning from cache"); ce != nil {
				ce.Write(zap.Any("key", key))
			}
			return v, nil
		}

		v, err := fn(a)
		if err != nil {
			return v, err
		}
		memo.Store(key, v)
		if ce := logger.Check(zap.DebugLevel, "caching results of execution"); ce != nil {
			ce.Write(zap.Any("key", key), zap.Int("size", memo.Len()))
		}
		return v, nil
	}
}
