package keccak

import "math/bits"

// rc holds the round constants for the ι step.
var rc = [Rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rot holds the ρ rotation offsets, indexed as [x][y].
var rot = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// RoundConstant returns the ι constant for round i.
func RoundConstant(i int) uint64 {
	return rc[i]
}

// Round applies round i of Keccak-f[1600] to the state. It panics if i is not in [0, Rounds).
func (s *State) Round(i int) {
	if i < 0 || i >= Rounds {
		panic("keccak: round index out of range")
	}

	// θ
	var c, d [5]uint64
	for x := range 5 {
		c[x] = s[x][0] ^ s[x][1] ^ s[x][2] ^ s[x][3] ^ s[x][4]
	}
	for x := range 5 {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	for x := range 5 {
		for y := range 5 {
			s[x][y] ^= d[x]
		}
	}

	// ρ and π
	var b State
	for x := range 5 {
		for y := range 5 {
			b[y][(2*x+3*y)%5] = bits.RotateLeft64(s[x][y], rot[x][y])
		}
	}

	// χ
	for x := range 5 {
		for y := range 5 {
			s[x][y] = b[x][y] ^ (^b[(x+1)%5][y] & b[(x+2)%5][y])
		}
	}

	// ι
	s[0][0] ^= rc[i]
}
