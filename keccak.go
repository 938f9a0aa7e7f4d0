// Package keccak provides Keccak-256 hashing as used by Ethereum.
//
// This is the original Keccak padding (domain separator 0x01), not the
// FIPS 202 SHA3-256 variant (0x06). Go's stdlib crypto/sha3 only exposes the
// latter, so addresses, transaction hashes and signed message hashes need
// this package.
//
// Sum256 is the one-shot entry point. Hasher streams input across any number
// of Write calls and is designed for stack allocation.
package keccak

import (
	"encoding/hex"
	"hash"
)

const (
	// Size is the length of a Keccak-256 digest in bytes.
	Size = 32

	// BlockSize is the sponge rate for Keccak-256: (1600 - 2*256) / 8 = 136 bytes.
	BlockSize = rate

	rate = 136
)

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [Size]byte {
	var state [25]uint64

	// Absorb full blocks.
	for len(data) >= rate {
		xorIn(&state, data[:rate])
		keccakF1600(&state)
		data = data[rate:]
	}

	var last [rate]byte
	copy(last[:], data)
	return padAndSqueeze(&state, &last, len(data))
}

// Sum256String computes the Keccak-256 hash of the raw bytes of s.
func Sum256String(s string) [Size]byte {
	var h Hasher
	h.writeString(s)
	return h.Sum256()
}

// Sum256Multi computes the Keccak-256 hash of the concatenation of data.
func Sum256Multi(data ...[]byte) [Size]byte {
	var h Hasher
	for _, b := range data {
		h.absorb(b)
	}
	return h.Sum256()
}

// HexSum256 returns the Keccak-256 hash of data as 64 lowercase hex digits.
func HexSum256(data []byte) string {
	d := Sum256(data)
	return hex.EncodeToString(d[:])
}

// HexSum256String returns the Keccak-256 hash of s as 64 lowercase hex digits.
func HexSum256String(s string) string {
	d := Sum256String(s)
	return hex.EncodeToString(d[:])
}

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a streaming Keccak-256 hasher. The zero value is ready to use.
//
// A Hasher must not be used from multiple goroutines at once. Finalize is
// terminal: further Write or Finalize calls fail with ErrFinalized and Sum
// panics until Reset.
type Hasher struct {
	state    [25]uint64
	buf      [rate]byte
	absorbed int

	finalized bool
}

// New returns a reset Hasher.
func New() *Hasher {
	return new(Hasher)
}

// Reset resets the hasher to its initial state.
func (h *Hasher) Reset() {
	*h = Hasher{}
}

// Write absorbs p into the hasher. It never fails before Finalize.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.finalized {
		return 0, ErrFinalized
	}
	h.absorb(p)
	return len(p), nil
}

func (h *Hasher) absorb(p []byte) {
	if h.absorbed > 0 {
		n := copy(h.buf[h.absorbed:rate], p)
		h.absorbed += n
		p = p[n:]
		if h.absorbed == rate {
			xorIn(&h.state, h.buf[:])
			keccakF1600(&h.state)
			h.absorbed = 0
		}
	}

	for len(p) >= rate {
		xorIn(&h.state, p[:rate])
		keccakF1600(&h.state)
		p = p[rate:]
	}

	if len(p) > 0 {
		h.absorbed = copy(h.buf[:], p)
	}
}

func (h *Hasher) writeString(s string) {
	for len(s) > 0 {
		n := copy(h.buf[h.absorbed:rate], s)
		h.absorbed += n
		s = s[n:]
		if h.absorbed == rate {
			xorIn(&h.state, h.buf[:])
			keccakF1600(&h.state)
			h.absorbed = 0
		}
	}
}

// Sum256 returns the digest of everything written so far.
// Does not modify the hasher state. Panics after Finalize.
func (h *Hasher) Sum256() [Size]byte {
	if h.finalized {
		panic("keccak: Sum after Finalize")
	}
	state := h.state
	buf := h.buf
	return padAndSqueeze(&state, &buf, h.absorbed)
}

// Finalize pads the pending input, runs the last permutation and returns the
// digest. The hasher cannot absorb more input afterwards without Reset.
func (h *Hasher) Finalize() ([Size]byte, error) {
	if h.finalized {
		return [Size]byte{}, ErrFinalized
	}
	sum := padAndSqueeze(&h.state, &h.buf, h.absorbed)
	h.absorbed = 0
	h.finalized = true
	return sum, nil
}

// Sum appends the current digest to b. Does not modify the hasher state.
// Panics after Finalize.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Sum256()
	return append(b, d[:]...)
}

// Size returns the number of bytes Sum will produce (32).
func (h *Hasher) Size() int { return Size }

// BlockSize returns the sponge rate in bytes (136).
func (h *Hasher) BlockSize() int { return rate }

// padAndSqueeze applies pad10*1 to the first n bytes of buf, absorbs the
// final block into state and reads out the first four lanes.
// Keccak uses domain separator 0x01 (NOT SHA-3's 0x06).
func padAndSqueeze(state *[25]uint64, buf *[rate]byte, n int) [Size]byte {
	clear(buf[n:])
	buf[n] = 0x01
	// pad10*1 end bit. With n == rate-1 this yields 0x81 in one byte.
	buf[rate-1] |= 0x80
	xorIn(state, buf[:])
	keccakF1600(state)

	// Squeeze 32 bytes.
	var out [Size]byte
	for i := 0; i < Size/8; i++ {
		putLE64(out[8*i:], state[i])
	}
	return out
}

// xorIn XORs a block of little-endian words into the leading lanes of state.
// len(data) must be a multiple of 8.
func xorIn(state *[25]uint64, data []byte) {
	n := len(data) >> 3
	for i := 0; i < n; i++ {
		state[i] ^= le64(data[8*i:])
	}
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
