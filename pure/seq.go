package pure

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Node is an element of a nested sequence: a Leaf, a List or a Tuple.
type Node[T any] interface {
	node()
}

// Leaf holds a single value.
type Leaf[T any] struct {
	Value T
}

func (Leaf[T]) node() {}

func (l Leaf[T]) String() string {
	return fmt.Sprint(l.Value)
}

// Val wraps v in a Leaf.
func Val[T any](v T) Leaf[T] {
	return Leaf[T]{Value: v}
}

// List is a mutable nested list.
type List[T any] []Node[T]

func (List[T]) node() {}

func (l List[T]) children() iter.Seq[any] {
	return childrenOf[T](l)
}

// ListOf builds a flat List from values.
func ListOf[T any](vs ...T) List[T] {
	l := make(List[T], len(vs))
	for i, v := range vs {
		l[i] = Val(v)
	}
	return l
}

// Tuple is an immutable nested sequence. The zero value is the empty tuple.
type Tuple[T any] struct {
	items []Node[T]
}

func (Tuple[T]) node() {}

func (t Tuple[T]) children() iter.Seq[any] {
	return childrenOf[T](t.items)
}

// NewTuple returns a tuple holding a copy of items.
func NewTuple[T any](items ...Node[T]) Tuple[T] {
	return Tuple[T]{items: append([]Node[T](nil), items...)}
}

// Len returns the number of direct children.
func (t Tuple[T]) Len() int {
	return len(t.items)
}

// At returns the i-th direct child. It panics when i is out of range.
func (t Tuple[T]) At(i int) Node[T] {
	return t.items[i]
}

// All iterates over the direct children with their index.
func (t Tuple[T]) All() iter.Seq2[int, Node[T]] {
	return func(yield func(int, Node[T]) bool) {
		for i, n := range t.items {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Values iterates over the leaf values of the tuple, depth first.
func (t Tuple[T]) Values() iter.Seq[T] {
	return Flatten[T](t)
}

// Equal reports whether t and other have the same shape and leaf values.
func (t Tuple[T]) Equal(other Tuple[T]) bool {
	if len(t.items) != len(other.items) {
		return false
	}
	for i := range t.items {
		if !nodeEqual[T](t.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

func nodeEqual[T any](a, b Node[T]) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Leaf[T]:
		y, ok := b.(Leaf[T])
		return ok && reflect.DeepEqual(x.Value, y.Value)
	case Tuple[T]:
		y, ok := b.(Tuple[T])
		return ok && x.Equal(y)
	case List[T]:
		y, ok := b.(List[T])
		return ok && NewTuple[T](x...).Equal(NewTuple[T](y...))
	default:
		return false
	}
}

// String formats the tuple like "(1, (2, 3), 4)". A single-element tuple
// keeps its trailing comma: "(1,)".
func (t Tuple[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, n := range t.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, n)
	}
	if len(t.items) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')
	return sb.String()
}

// sequence is implemented by the container nodes of this package.
type sequence interface {
	children() iter.Seq[any]
}

// childrenOf unwraps leaves so dynamic traversal sees plain values.
func childrenOf[T any](nodes []Node[T]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, n := range nodes {
			var v any = n
			if leaf, ok := n.(Leaf[T]); ok {
				v = leaf.Value
			}
			if !yield(v) {
				return
			}
		}
	}
}

var byteType = reflect.TypeFor[byte]()

// IsSeq reports whether v is a container whose items should be visited
// rather than a leaf.
//
// Lists, Tuples, slices, arrays, maps and receivable channels are
// sequences. Strings, byte slices and byte arrays are leaves.
func IsSeq(v any) bool {
	if _, ok := v.(sequence); ok {
		return true
	}
	if v == nil {
		return false
	}
	rt := reflect.TypeOf(v)
	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		return rt.Elem() != byteType
	case reflect.Map:
		return true
	case reflect.Chan:
		return rt.ChanDir()&reflect.RecvDir != 0
	default:
		return false
	}
}
