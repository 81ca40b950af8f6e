package helper

// GetTypedValueOf2 asserts the value returned by a comma-ok getter to T.
// ok is false when the getter misses or the stored value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}
