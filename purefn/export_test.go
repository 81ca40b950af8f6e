package purefn

func NewTable[K comparable, V any]() *table[K, V] {
	return newTable[K, V]()
}
