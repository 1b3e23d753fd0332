package scode

import "github.com/dchest/uniuri"

// Alphabet deliberately omits characters that read ambiguously when a code is
// shared as a screenshot (0/O, 1/I/l).
const Alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const Length = 12

// New generates an opaque scenario code.
func New() string {
	return uniuri.NewLenChars(Length, []byte(Alphabet))
}
