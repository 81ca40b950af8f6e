package pure_test

import (
	"testing"

	"github.com/on-the-ground/funcutils/pure"
	"github.com/stretchr/testify/assert"
)

func TestRemoveWS(t *testing.T) {
	cases := map[string]string{
		"  a   b\tc\n":       "a b c",
		"":                   "",
		" \t\n ":             "",
		"already clean":      "already clean",
		"non\u00a0breaking":  "non breaking",
		"line\r\nbreaks\v\f": "line breaks",
	}
	for in, want := range cases {
		assert.Equal(t, want, pure.RemoveWS(in), "%q", in)
	}
}
