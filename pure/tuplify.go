package pure

// Tuplify converts l and every nested List or Tuple into Tuples of the same
// shape, applying modifier to each leaf value. A nil modifier keeps leaves
// as they are. nil entries are kept, so the result always has the shape of
// l.
func Tuplify[T any](l List[T], modifier func(T) T) Tuple[T] {
	return tuplify([]Node[T](l), modifier)
}

func tuplify[T any](nodes []Node[T], modifier func(T) T) Tuple[T] {
	out := make([]Node[T], 0, len(nodes))
	for _, n := range nodes {
		switch x := n.(type) {
		case List[T]:
			out = append(out, tuplify([]Node[T](x), modifier))
		case Tuple[T]:
			out = append(out, tuplify(x.items, modifier))
		case Leaf[T]:
			if modifier != nil {
				x.Value = modifier(x.Value)
			}
			out = append(out, x)
		default:
			out = append(out, n)
		}
	}
	return Tuple[T]{items: out}
}
