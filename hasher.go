package shake128

import (
	"hash"

	"github.com/codahale/shake128/hazmat/keccak"
	"github.com/codahale/shake128/internal/mem"
)

// Hasher is an incremental SHAKE128 instance that implements hash.XOF.
// Writes absorb data into the sponge and reads squeeze output from it.
// Once Read is called, no further writes are permitted until Reset.
//
// The output of a Hasher is identical to Sum over the concatenation of everything written, regardless of how the
// writes and reads are split.
type Hasher struct {
	s         [keccak.Size]byte
	pos       int
	squeezing bool
}

// New returns a new Hasher.
func New() (h Hasher) {
	return h
}

// Reset zeros the hasher, returning it to the absorbing state.
func (h *Hasher) Reset() {
	clear(h.s[:])
	h.pos = 0
	h.squeezing = false
}

// Clone returns an independent copy of the hasher.
func (h *Hasher) Clone() Hasher {
	return *h
}

// BlockSize returns the SHAKE128 rate in bytes.
func (h *Hasher) BlockSize() int {
	return Rate
}

// Write absorbs p into the sponge state. It panics if called after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.squeezing {
		panic("shake128: write after read")
	}

	n := len(p)
	for len(p) > 0 {
		w := min(Rate-h.pos, len(p))
		mem.XORInPlace(h.s[h.pos:h.pos+w], p[:w])
		h.pos += w
		p = p[w:]
		if h.pos == Rate {
			keccak.P1600(&h.s)
			h.pos = 0
		}
	}
	return n, nil
}

// Read squeezes output from the sponge state into p. On the first call,
// it finalizes absorption by applying padding and permuting. Subsequent
// calls continue squeezing.
func (h *Hasher) Read(p []byte) (int, error) {
	if !h.squeezing {
		h.s[h.pos] ^= dsByte
		h.s[Rate-1] ^= 0x80
		keccak.P1600(&h.s)
		h.pos = 0
		h.squeezing = true
	}
	n := len(p)
	for len(p) > 0 {
		if h.pos == Rate {
			keccak.P1600(&h.s)
			h.pos = 0
		}
		r := copy(p, h.s[h.pos:Rate])
		h.pos += r
		p = p[r:]
	}
	return n, nil
}

var _ hash.XOF = (*Hasher)(nil)
