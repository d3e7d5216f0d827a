// Package shake128 implements the SHAKE128 extendable-output function as specified in FIPS 202.
//
// SHAKE128 is a sponge over the Keccak-f[1600] permutation with a rate of 168 bytes and a capacity of 32 bytes. Any
// input can be extended to any output length; shorter outputs are always prefixes of longer ones.
package shake128

import (
	"encoding/binary"

	"github.com/codahale/shake128/hazmat/keccak"
)

const (
	// Rate is the SHAKE128 rate in bytes (200 - 32).
	Rate = 168

	// RateLanes is the SHAKE128 rate in 64-bit lanes.
	RateLanes = Rate / 8

	// Size is the output length, in bytes, which provides the full 128-bit security level.
	Size = 32

	// dsByte is the SHAKE domain separation suffix (1111) followed by the first bit of pad10*1.
	dsByte = 0x1F
)

// Sum computes SHAKE128(msg, 8*outLen) and returns the outLen-byte result. It panics if outLen is negative.
func Sum(msg []byte, outLen int) []byte {
	if outLen < 0 {
		panic("shake128: negative output length")
	}

	var s keccak.State
	absorb(&s, loadWords(pad(msg)))
	return squeeze(&s, outLen)
}

// pad returns a copy of msg with the domain separation byte appended, zero-filled to a multiple of Rate, and the
// final bit of pad10*1 set.
func pad(msg []byte) []byte {
	n := (len(msg)/Rate + 1) * Rate
	p := make([]byte, n)
	copy(p, msg)
	p[len(msg)] = dsByte
	p[n-1] ^= 0x80
	return p
}

// absorb XORs each RateLanes-word block of words into the rate lanes of s and permutes. len(words) must be a multiple
// of RateLanes.
func absorb(s *keccak.State, words []uint64) {
	for blk := words; len(blk) > 0; blk = blk[RateLanes:] {
		for x := range 5 {
			for y := range 5 {
				if i := x + 5*y; i < RateLanes {
					s[x][y] ^= blk[i]
				}
			}
		}
		s.Permute()
	}
}

// squeeze reads the rate lanes of s, permuting after each read, until it has outLen bytes of output.
func squeeze(s *keccak.State, outLen int) []byte {
	n := (outLen + 7) / 8
	z := make([]uint64, 0, (n+RateLanes-1)/RateLanes*RateLanes)
	for len(z) < n {
		for y := range 5 {
			for x := range 5 {
				if x+5*y < RateLanes {
					z = append(z, s[x][y])
				}
			}
		}
		s.Permute()
	}

	out := appendBytes(make([]byte, 0, 8*n), z[:n])
	return out[:outLen:outLen]
}

// loadWords interprets b as a sequence of little-endian 64-bit words. Trailing bytes which do not fill a word are
// ignored.
func loadWords(b []byte) []uint64 {
	w := make([]uint64, len(b)/8)
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return w
}

// appendBytes appends the little-endian encoding of each word in w to dst.
func appendBytes(dst []byte, w []uint64) []byte {
	for _, v := range w {
		dst = binary.LittleEndian.AppendUint64(dst, v)
	}
	return dst
}
