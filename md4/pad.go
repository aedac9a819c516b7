package md4

import (
	"encoding/binary"
	"math"
)

// Pad frames data as MD4 input words: data, a 1 bit, zero bits until the
// length is 56 mod 64 bytes, then the 64-bit length in bits. The result
// always holds a whole number of blocks.
func Pad(data []byte) []uint32 {
	return PadFrom(data, 0)
}

// PadFrom is like Pad, but the encoded length counts prefixLen bytes that
// were hashed before data. prefixLen must be a multiple of BlockSize.
func PadFrom(data []byte, prefixLen uint64) []uint32 {
	if prefixLen%BlockSize != 0 {
		panic("md4: prefix length is not a multiple of the block size")
	}
	n := paddedLen(len(data))

	buf := make([]byte, n)
	copy(buf, data)
	buf[len(data)] = 0x80

	// Message words are packed little-endian. The length words are not
	// byte-swapped: they are the low and high halves of the bit count.
	words := make([]uint32, n/4)
	for i := range words[:len(words)-2] {
		words[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	bits := (prefixLen + uint64(len(data))) << 3
	words[len(words)-2] = uint32(bits)
	words[len(words)-1] = uint32(bits >> 32)

	if len(words)%BlockWords != 0 {
		panic("md4: padded length is not block aligned")
	}
	return words
}

// Padding returns the bytes MD4 appends to a message of n bytes before
// compressing it. For a message m, m followed by Padding(len(m)) is exactly
// what Pad(m) compresses.
func Padding(n uint64) []byte {
	var p []byte
	if r := n % BlockSize; r < 56 {
		p = make([]byte, 56-r+8)
	} else {
		p = make([]byte, BlockSize+56-r+8)
	}
	p[0] = 0x80
	binary.LittleEndian.PutUint64(p[len(p)-8:], n<<3)
	return p
}

// paddedLen returns the framed length in bytes of an n-byte message.
func paddedLen(n int) int {
	if n > math.MaxInt-2*BlockSize {
		panic("md4: message too large")
	}
	// One byte for 0x80 and eight for the length, rounded up to a block.
	return (n + 1 + 8 + BlockSize - 1) &^ (BlockSize - 1)
}
