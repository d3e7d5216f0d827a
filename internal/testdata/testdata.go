// Package testdata provides deterministic inputs and failing I/O types for tests.
package testdata

import (
	"crypto/sha3"
	"io"
)

// DRBG is a deterministic random bit generator based on the standard library's SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Messages returns count messages of deterministic data with lengths drawn from [0, maxLen).
func (d *DRBG) Messages(count, maxLen int) [][]byte {
	msgs := make([][]byte, count)
	for i := range msgs {
		var n [2]byte
		_, _ = d.h.Read(n[:])
		msgs[i] = d.Data((int(n[0])<<8 | int(n[1])) % maxLen)
	}
	return msgs
}

// Reader returns pseudorandom reader seeded with a value from this DRBG.
func (d *DRBG) Reader() io.Reader {
	h := sha3.NewSHAKE128()
	_, _ = h.Write(d.Data(32))
	return h
}
