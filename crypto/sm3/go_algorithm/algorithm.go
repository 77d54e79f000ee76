// Package go_algorithm carries the portable SM3 compression function.
// It is the mandatory backend: every other backend must produce
// bit-identical state transitions.
package go_algorithm

import (
	"encoding/binary"
	"math/bits"
)

// IV is the SM3 initial chaining value.
var IV = [8]uint32{
	0x7380166f, 0x4914b2b9, 0x172442d7, 0xda8a0600,
	0xa96f30bc, 0x163138aa, 0xe38dee4d, 0xb0fb0e4e,
}

// tj holds rotl(0x79cc4519, j) for rounds 0..15 and
// rotl(0x7a879d8a, j mod 32) for rounds 16..63. The table is baked
// with the rotate applied so the round loop adds it directly.
var tj = [64]uint32{
	0x79cc4519, 0xf3988a32, 0xe7311465, 0xce6228cb,
	0x9cc45197, 0x3988a32f, 0x7311465e, 0xe6228cbc,
	0xcc451979, 0x988a32f3, 0x311465e7, 0x6228cbce,
	0xc451979c, 0x88a32f39, 0x11465e73, 0x228cbce6,
	0x9d8a7a87, 0x3b14f50f, 0x7629ea1e, 0xec53d43c,
	0xd8a7a879, 0xb14f50f3, 0x629ea1e7, 0xc53d43ce,
	0x8a7a879d, 0x14f50f3b, 0x29ea1e76, 0x53d43cec,
	0xa7a879d8, 0x4f50f3b1, 0x9ea1e762, 0x3d43cec5,
	0x7a879d8a, 0xf50f3b14, 0xea1e7629, 0xd43cec53,
	0xa879d8a7, 0x50f3b14f, 0xa1e7629e, 0x43cec53d,
	0x879d8a7a, 0x0f3b14f5, 0x1e7629ea, 0x3cec53d4,
	0x79d8a7a8, 0xf3b14f50, 0xe7629ea1, 0xcec53d43,
	0x9d8a7a87, 0x3b14f50f, 0x7629ea1e, 0xec53d43c,
	0xd8a7a879, 0xb14f50f3, 0x629ea1e7, 0xc53d43ce,
	0x8a7a879d, 0x14f50f3b, 0x29ea1e76, 0x53d43cec,
	0xa7a879d8, 0x4f50f3b1, 0x9ea1e762, 0x3d43cec5,
}

func p0(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17)
}

func p1(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23)
}

// CompressBlocks folds every whole 64-byte block of p into the
// chaining state h, strictly in order. Blocks are read big-endian.
func CompressBlocks(h *[8]uint32, p []byte) {
	var w [68]uint32
	var w1 [64]uint32

	for len(p) >= 64 {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		for j := 16; j < 68; j++ {
			w[j] = p1(w[j-16]^w[j-9]^bits.RotateLeft32(w[j-3], 15)) ^
				bits.RotateLeft32(w[j-13], 7) ^ w[j-6]
		}
		for j := 0; j < 64; j++ {
			w1[j] = w[j] ^ w[j+4]
		}

		a, b, c, d := h[0], h[1], h[2], h[3]
		e, f, g, hv := h[4], h[5], h[6], h[7]

		for j := 0; j < 16; j++ {
			a12 := bits.RotateLeft32(a, 12)
			ss1 := bits.RotateLeft32(a12+e+tj[j], 7)
			ss2 := ss1 ^ a12
			tt1 := (a ^ b ^ c) + d + ss2 + w1[j]
			tt2 := (e ^ f ^ g) + hv + ss1 + w[j]
			d = c
			c = bits.RotateLeft32(b, 9)
			b = a
			a = tt1
			hv = g
			g = bits.RotateLeft32(f, 19)
			f = e
			e = p0(tt2)
		}

		for j := 16; j < 64; j++ {
			a12 := bits.RotateLeft32(a, 12)
			ss1 := bits.RotateLeft32(a12+e+tj[j], 7)
			ss2 := ss1 ^ a12
			tt1 := ((a & b) | (a & c) | (b & c)) + d + ss2 + w1[j]
			tt2 := ((e & f) | (^e & g)) + hv + ss1 + w[j]
			d = c
			c = bits.RotateLeft32(b, 9)
			b = a
			a = tt1
			hv = g
			g = bits.RotateLeft32(f, 19)
			f = e
			e = p0(tt2)
		}

		h[0] ^= a
		h[1] ^= b
		h[2] ^= c
		h[3] ^= d
		h[4] ^= e
		h[5] ^= f
		h[6] ^= g
		h[7] ^= hv

		p = p[64:]
	}
}
