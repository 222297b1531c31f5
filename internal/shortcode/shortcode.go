// Package shortcode generates the public codes embedded in share URLs.
package shortcode

import (
	"crypto/rand"
	"io"
)

const (
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	Length   = 8

	// Bytes at or above this value are discarded: 4*62 = 248, so every
	// accepted byte maps onto the alphabet with equal probability.
	acceptBelow = 256 / len(Alphabet) * len(Alphabet)
)

// Generator draws codes from a cryptographically secure source.
// It is safe for concurrent use as long as the underlying reader is.
type Generator struct {
	src io.Reader
}

func New() *Generator {
	return &Generator{src: rand.Reader}
}

// NewWithReader is used by tests to feed a deterministic byte stream.
func NewWithReader(src io.Reader) *Generator {
	return &Generator{src: src}
}

// Generate returns a Length-character code over Alphabet.
// It panics if the random source fails, which crypto/rand does not do on
// supported platforms.
func (g *Generator) Generate() string {
	out := make([]byte, 0, Length)
	buf := make([]byte, Length)

	for len(out) < Length {
		draw := buf[:Length-len(out)]
		if _, err := io.ReadFull(g.src, draw); err != nil {
			panic("shortcode: random source failed: " + err.Error())
		}
		for _, b := range draw {
			if int(b) >= acceptBelow {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
		}
	}
	return string(out)
}

// Valid reports whether s has the shape of a generated code.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
