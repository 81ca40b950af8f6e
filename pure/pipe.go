package pure

import "fmt"

// Pipe feeds init through fns in order and returns the last result.
// It stops at the first result that is not Truthy and returns it.
// fns is never modified.
func Pipe[T any](init T, fns ...func(T) T) T {
	v := init
	for _, fn := range fns {
		v = fn(v)
		if !Truthy(v) {
			return v
		}
	}
	return v
}

// PipeErr is Pipe for fallible steps. It also stops at the first error,
// returning the value fed into the failing step.
func PipeErr[T any](init T, fns ...func(T) (T, error)) (T, error) {
	v := init
	for i, fn := range fns {
		next, err := fn(v)
		if err != nil {
			return v, fmt.Errorf("pipe: step %d: %w", i, err)
		}
		v = next
		if !Truthy(v) {
			return v, nil
		}
	}
	return v, nil
}
