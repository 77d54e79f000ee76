package sm3

import (
	"encoding/binary"

	"github.com/pagehash/pagehash/crypto/sm3/go_algorithm"
)

// pageTrailer is the padding block shared by every 4096-byte message:
// a full page leaves the data blocks exactly aligned, so the trailer
// is one constant block holding the marker byte, zero fill and the
// 32768-bit length field. Built eagerly, never mutated.
var pageTrailer = buildPageTrailer()

func buildPageTrailer() (b [BlockSize]byte) {
	b[0] = 0x80
	binary.BigEndian.PutUint64(b[BlockSize-8:], PageSize*8)
	return
}

// SumPage returns the SM3 digest of one 4096-byte page without
// building a padded copy of the input. The result is identical to
// Sum256 of the same bytes.
func SumPage(page []byte) (digest [Size]byte, err error) {
	if len(page) != PageSize {
		return digest, ErrInvalidLength
	}

	h := go_algorithm.IV
	compressBlocks(&h, page)
	compressBlocks(&h, pageTrailer[:])
	serialize(&h, digest[:])
	return digest, nil
}
