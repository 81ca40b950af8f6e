package purefn

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrUnhashableKey is returned by HashKey and StringKey when a part has no
// canonical encoding.
var ErrUnhashableKey = errors.New("purefn: key part cannot be encoded")

// Identity uses the argument itself as the key.
func Identity[K comparable](k K) (K, error) {
	return k, nil
}

// KeyBy adapts an infallible key function.
func KeyBy[A any, K comparable](fn func(A) K) func(A) (K, error) {
	return func(a A) (K, error) {
		return fn(a), nil
	}
}

// HashKey hashes the canonical encoding of parts with xxhash.
//
// fmt.Stringer parts are encoded by their String(), everything else as
// JSON, which orders map keys. Slices, maps and structs therefore make
// usable keys even though they are not comparable. Values holding structs
// with unexported fields, which JSON would silently drop, are encoded with
// %#v instead; pointers inside them are keyed by address.
func HashKey(parts ...any) (uint64, error) {
	d := xxhash.New()
	for i, p := range parts {
		b, err := canonicalize(p)
		if err != nil {
			return 0, fmt.Errorf("%w: part %d: %w", ErrUnhashableKey, i, err)
		}
		_, _ = d.Write(b)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64(), nil
}

// StringKey joins the canonical encodings of parts with "|". Prefer it over
// HashKey when keys show up in logs.
func StringKey(parts ...any) (string, error) {
	encoded := make([]string, len(parts))
	for i, p := range parts {
		b, err := canonicalize(p)
		if err != nil {
			return "", fmt.Errorf("%w: part %d: %w", ErrUnhashableKey, i, err)
		}
		encoded[i] = string(b)
	}
	return strings.Join(encoded, "|"), nil
}

func canonicalize(v any) ([]byte, error) {
	if stringer, ok := v.(fmt.Stringer); ok {
		return json.Marshal(stringer.String())
	}
	if v != nil && hasUnexported(reflect.TypeOf(v), map[reflect.Type]bool{}) {
		return []byte(fmt.Sprintf("%#v", v)), nil
	}
	return json.Marshal(v)
}

// hasUnexported reports whether values of t can contain a struct field
// that encoding/json skips.
func hasUnexported(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true

	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				ft := f.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				// json promotes the fields of embedded structs
				if !f.Anonymous || ft.Kind() != reflect.Struct {
					return true
				}
			}
			if hasUnexported(f.Type, seen) {
				return true
			}
		}
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return hasUnexported(t.Elem(), seen)
	case reflect.Map:
		return hasUnexported(t.Key(), seen) || hasUnexported(t.Elem(), seen)
	}
	return false
}
