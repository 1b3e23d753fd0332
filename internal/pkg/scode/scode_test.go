package scode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := New()
		assert.Len(t, code, Length)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected rune %q in %s", r, code)
		}
		seen[code] = true
	}
	// collisions over 100 draws from a 31^12 space mean the generator is broken
	assert.Len(t, seen, 100)
}
