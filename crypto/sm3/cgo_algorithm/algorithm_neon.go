// +build sm3ni,arm64

package cgo_algorithm

/*
#cgo CFLAGS: -O3 -march=armv8-a

#include <arm_neon.h>
#include <stddef.h>
#include <stdint.h>

#define ROTL(x, n) (((x) << (n)) | ((x) >> (32 - (n))))

static const uint32_t TJ[64] = {
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
};

static inline uint32_t P0(uint32_t x) { return x ^ ROTL(x, 9) ^ ROTL(x, 17); }
static inline uint32_t P1(uint32_t x) { return x ^ ROTL(x, 15) ^ ROTL(x, 23); }

void sm3ni_compress_blocks(uint32_t* h, const uint8_t* p, size_t nblocks) {
	uint32_t W[68];
	uint32_t W1[64];

	for (size_t n = 0; n < nblocks; n++, p += 64) {
		// NEON byte-swap load: reverse bytes inside each 32-bit lane.
		vst1q_u32(W, vreinterpretq_u32_u8(vrev32q_u8(vld1q_u8(p))));
		vst1q_u32(W + 4, vreinterpretq_u32_u8(vrev32q_u8(vld1q_u8(p + 16))));
		vst1q_u32(W + 8, vreinterpretq_u32_u8(vrev32q_u8(vld1q_u8(p + 32))));
		vst1q_u32(W + 12, vreinterpretq_u32_u8(vrev32q_u8(vld1q_u8(p + 48))));

		for (int j = 16; j < 68; j++) {
			W[j] = P1(W[j-16] ^ W[j-9] ^ ROTL(W[j-3], 15)) ^ ROTL(W[j-13], 7) ^ W[j-6];
		}
		for (int j = 0; j < 64; j++) {
			W1[j] = W[j] ^ W[j+4];
		}

		uint32_t A = h[0], B = h[1], C = h[2], D = h[3];
		uint32_t E = h[4], F = h[5], G = h[6], H = h[7];

		for (int j = 0; j < 16; j++) {
			uint32_t A12 = ROTL(A, 12);
			uint32_t SS1 = ROTL(A12 + E + TJ[j], 7);
			uint32_t SS2 = SS1 ^ A12;
			uint32_t TT1 = (A ^ B ^ C) + D + SS2 + W1[j];
			uint32_t TT2 = (E ^ F ^ G) + H + SS1 + W[j];
			D = C;
			C = ROTL(B, 9);
			B = A;
			A = TT1;
			H = G;
			G = ROTL(F, 19);
			F = E;
			E = P0(TT2);
		}
		for (int j = 16; j < 64; j++) {
			uint32_t A12 = ROTL(A, 12);
			uint32_t SS1 = ROTL(A12 + E + TJ[j], 7);
			uint32_t SS2 = SS1 ^ A12;
			uint32_t TT1 = ((A & B) | (A & C) | (B & C)) + D + SS2 + W1[j];
			uint32_t TT2 = ((E & F) | (~E & G)) + H + SS1 + W[j];
			D = C;
			C = ROTL(B, 9);
			B = A;
			A = TT1;
			H = G;
			G = ROTL(F, 19);
			F = E;
			E = P0(TT2);
		}

		h[0] ^= A;
		h[1] ^= B;
		h[2] ^= C;
		h[3] ^= D;
		h[4] ^= E;
		h[5] ^= F;
		h[6] ^= G;
		h[7] ^= H;
	}
}
*/
import "C"

import "unsafe"

// Available reports whether this build carries the accelerated backend.
const Available = true

// CompressBlocks folds every whole 64-byte block of p into h using the
// NEON byte-swap compression kernel.
func CompressBlocks(h *[8]uint32, p []byte) {
	nblocks := len(p) / 64
	if nblocks == 0 {
		return
	}
	C.sm3ni_compress_blocks(
		(*C.uint32_t)(unsafe.Pointer(&h[0])),
		(*C.uint8_t)(unsafe.Pointer(&p[0])),
		C.size_t(nblocks),
	)
}
