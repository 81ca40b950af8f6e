package pure

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Flatten yields the leaf values of n depth first, left to right.
// nil entries hold no value and are skipped. Every call returns a fresh
// iterator.
func Flatten[T any](n Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(n, yield)
	}
}

// walk reports false once yield asked to stop.
func walk[T any](n Node[T], yield func(T) bool) bool {
	switch x := n.(type) {
	case Leaf[T]:
		return yield(x.Value)
	case List[T]:
		for _, child := range x {
			if !walk(child, yield) {
				return false
			}
		}
	case Tuple[T]:
		for _, child := range x.items {
			if !walk(child, yield) {
				return false
			}
		}
	}
	return true
}

// FlattenAny yields the leaves of an arbitrarily nested value, descending
// into everything IsSeq accepts. Maps contribute their keys ordered by
// their formatted representation; channels are drained until closed.
// A value that is not a sequence yields itself.
func FlattenAny(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		walkAny(v, yield)
	}
}

func walkAny(v any, yield func(any) bool) bool {
	if !IsSeq(v) {
		return yield(v)
	}
	for item := range items(v) {
		if !walkAny(item, yield) {
			return false
		}
	}
	return true
}

// items iterates over the direct children of a sequence.
func items(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		if s, ok := v.(sequence); ok {
			for c := range s.children() {
				if !yield(c) {
					return
				}
			}
			return
		}

		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := range rv.Len() {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		case reflect.Map:
			keys := rv.MapKeys()
			slices.SortFunc(keys, func(a, b reflect.Value) int {
				return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
			})
			for _, k := range keys {
				if !yield(k.Interface()) {
					return
				}
			}
		case reflect.Chan:
			for {
				x, ok := rv.Recv()
				if !ok || !yield(x.Interface()) {
					return
				}
			}
		}
	}
}
