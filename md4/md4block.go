package md4

import "math/bits"

type round struct {
	f     func(x, y, z uint32) uint32
	k     uint32
	x     [16]uint8 // message word for each step
	shift [4]int
}

var rounds = [3]round{
	{
		f:     func(x, y, z uint32) uint32 { return x&y | ^x&z },
		x:     [16]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		shift: [4]int{3, 7, 11, 19},
	},
	{
		f:     func(x, y, z uint32) uint32 { return x&y | x&z | y&z },
		k:     0x5A827999,
		x:     [16]uint8{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15},
		shift: [4]int{3, 5, 9, 13},
	},
	{
		f:     func(x, y, z uint32) uint32 { return x ^ y ^ z },
		k:     0x6ED9EBA1,
		x:     [16]uint8{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15},
		shift: [4]int{3, 9, 11, 15},
	},
}

// Block runs the compression function over one block of words.
func (s State) Block(x *[BlockWords]uint32) State {
	r := s.Words()
	for _, rd := range rounds {
		for i, xi := range rd.x {
			// Steps update A, D, C, B in turn; the other three
			// registers follow the target in A, B, C, D order.
			t := (4 - i%4) % 4
			a, b, c, d := r[t], r[(t+1)%4], r[(t+2)%4], r[(t+3)%4]
			r[t] = bits.RotateLeft32(a+rd.f(b, c, d)+x[xi]+rd.k, rd.shift[i%4])
		}
	}
	return State{
		A: s.A + r[0],
		B: s.B + r[1],
		C: s.C + r[2],
		D: s.D + r[3],
	}
}

// Compress runs the compression function over each block of words in turn,
// starting from s, and returns the final state. len(words) must be a
// multiple of BlockWords.
func Compress(s State, words []uint32) State {
	if len(words)%BlockWords != 0 {
		panic("md4: input is not block aligned")
	}
	var x [BlockWords]uint32
	for len(words) > 0 {
		copy(x[:], words)
		s = s.Block(&x)
		words = words[BlockWords:]
	}
	return s
}
