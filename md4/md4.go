// Package md4 implements the MD4 hash algorithm as defined in RFC 1320.
//
// Unlike crypto/md5 and friends, the working state is an ordinary value that
// callers may construct, inspect and resume from. That makes it convenient
// for length-extension exercises: a digest is just the four registers, so a
// leaked digest can be turned back into a State and compression can continue
// from there.
//
// MD4 is cryptographically broken. It should only be used where
// compatibility with legacy systems is the goal, or for breaking things.
package md4

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// The size of an MD4 checksum in bytes.
const Size = 16

// The blocksize of MD4 in bytes.
const BlockSize = 64

// BlockWords is the number of 32-bit words in a block.
const BlockWords = BlockSize / 4

const (
	Init0 = 0x67452301
	Init1 = 0xEFCDAB89
	Init2 = 0x98BADCFE
	Init3 = 0x10325476
)

// State holds the four MD4 registers between blocks.
type State struct {
	A, B, C, D uint32
}

// ErrSumLength is returned by ParseSum when the decoded digest is not Size
// bytes long.
var ErrSumLength = errors.New("md4: digest must be 16 bytes")

// Reset returns the standard initial state.
func Reset() State {
	return State{Init0, Init1, Init2, Init3}
}

// NewState returns a state with the registers set to the given values.
func NewState(a, b, c, d uint32) State {
	return State{A: a, B: b, C: c, D: d}
}

// FromSum returns the state that produced sum. It is the inverse of
// State.Sum.
func FromSum(sum [Size]byte) State {
	return State{
		A: binary.LittleEndian.Uint32(sum[0:]),
		B: binary.LittleEndian.Uint32(sum[4:]),
		C: binary.LittleEndian.Uint32(sum[8:]),
		D: binary.LittleEndian.Uint32(sum[12:]),
	}
}

// ParseSum decodes a hex digest and returns the state that produced it.
func ParseSum(s string) (State, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return State{}, fmt.Errorf("md4: parsing digest %q: %w", s, err)
	}
	if len(b) != Size {
		return State{}, fmt.Errorf("md4: parsing digest %q: %w", s, ErrSumLength)
	}
	var sum [Size]byte
	copy(sum[:], b)
	return FromSum(sum), nil
}

// Words returns the registers in the order A, B, C, D.
func (s State) Words() [4]uint32 {
	return [4]uint32{s.A, s.B, s.C, s.D}
}

// Sum formats the registers as a digest. Each register is written with its
// bytes reversed relative to a big-endian read, i.e. little-endian.
func (s State) Sum() [Size]byte {
	var sum [Size]byte
	for i, w := range s.Words() {
		binary.LittleEndian.PutUint32(sum[i*4:], w)
	}
	return sum
}

// String returns the digest in lowercase hex.
func (s State) String() string {
	sum := s.Sum()
	return hex.EncodeToString(sum[:])
}

// Sum returns the MD4 checksum of data.
func Sum(data []byte) [Size]byte {
	return Compress(Reset(), Pad(data)).Sum()
}

// SumFrom returns the checksum of data as if hashing had started from s
// after prefixLen bytes. prefixLen must be a multiple of BlockSize.
func SumFrom(s State, prefixLen uint64, data []byte) [Size]byte {
	return Compress(s, PadFrom(data, prefixLen)).Sum()
}
