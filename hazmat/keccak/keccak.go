// Package keccak provides the Keccak-f[1600] permutation over a 5×5 array of 64-bit lanes.
package keccak

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

const (
	// Rounds is the number of rounds in Keccak-f[1600].
	Rounds = 24

	// Lanes is the number of 64-bit lanes in the state.
	Lanes = 25

	// Size is the size of the state in bytes.
	Size = Lanes * 8
)

// State is the 1600-bit Keccak state, indexed as [x][y]. The zero value is the initial state.
//
// Lane (x, y) has linear index x+5y; the byte form of the state stores lane i little-endian at bytes 8i through 8i+7.
type State [5][5]uint64

// Permute applies all 24 rounds of Keccak-f[1600] to the state.
func (s *State) Permute() {
	for i := range Rounds {
		s.Round(i)
	}
}

// Load sets the state from its 200-byte little-endian form.
func (s *State) Load(b *[Size]byte) {
	for y := range 5 {
		for x := range 5 {
			i := 8 * (x + 5*y)
			s[x][y] = binary.LittleEndian.Uint64(b[i : i+8])
		}
	}
}

// Store writes the state in its 200-byte little-endian form.
func (s *State) Store(b *[Size]byte) {
	for y := range 5 {
		for x := range 5 {
			i := 8 * (x + 5*y)
			binary.LittleEndian.PutUint64(b[i:i+8], s[x][y])
		}
	}
}

// String returns a hex dump of the state: lanes in linear order, two per line, each lane as its little-endian bytes.
func (s *State) String() string {
	var sb strings.Builder
	var lane [8]byte
	n := 0
	for y := range 5 {
		for x := range 5 {
			binary.LittleEndian.PutUint64(lane[:], s[x][y])
			sb.WriteString(hex.EncodeToString(lane[:]))
			n++
			if n%2 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// P1600 applies the Keccak-f[1600] permutation to the state in its byte form.
func P1600(a *[Size]byte) {
	var s State
	s.Load(a)
	s.Permute()
	s.Store(a)
}
