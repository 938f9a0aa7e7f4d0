package keccak

import "math/bits"

// Keccak-f[1600] in pure Go. Lane (x, y) of the 5x5 state lives at index x+5*y.

const rounds = 24

// roundConstants holds the iota constant for each round.
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A,
	0x8000000080008000, 0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008A,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets holds the rho rotation for the lane at index x+5*y.
var rotationOffsets = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// piTarget maps the lane at index x+5*y to its rho-pi destination
// (y, 2x+3y mod 5).
var piTarget = func() (t [25]int) {
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			t[x+5*y] = y + 5*((2*x+3*y)%5)
		}
	}
	return t
}()

// keccakF1600 applies the 24-round Keccak-f[1600] permutation to a.
func keccakF1600(a *[25]uint64) {
	var c, d [5]uint64
	var b [25]uint64

	for round := 0; round < rounds; round++ {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for i := 0; i < 25; i++ {
			a[i] ^= d[i%5]
		}

		// ρ and π
		for i := 0; i < 25; i++ {
			b[piTarget[i]] = bits.RotateLeft64(a[i], rotationOffsets[i])
		}

		// χ, reading rows from the snapshot in b.
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
			}
		}

		// ι
		a[0] ^= roundConstants[round]
	}
}
