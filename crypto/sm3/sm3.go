// Package sm3 implements the SM3 hash algorithm as defined in
// GB/T 32905-2016, with a fast path for 4096-byte memory pages.
//
// The package is one-shot by design: a message is padded, folded
// block by block through the compression function and serialized in
// a single call. There is no streaming Write API.
package sm3

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/pagehash/pagehash/crypto/sm3/cgo_algorithm"
	"github.com/pagehash/pagehash/crypto/sm3/go_algorithm"
)

const (
	// Size is the length of a full SM3 digest in bytes.
	Size = 32

	// Size128 is the length of a truncated SM3 digest in bytes.
	Size128 = 16

	// BlockSize is the SM3 block size in bytes.
	BlockSize = 64

	// PageSize is the message length served by SumPage.
	PageSize = 4096
)

var (
	// ErrInvalidWidth is returned when a digest width other than 128
	// or 256 bits is requested.
	ErrInvalidWidth = errors.New("sm3: digest width must be 128 or 256")

	// ErrInvalidLength is returned by SumPage for messages that are
	// not exactly one 4096-byte page.
	ErrInvalidLength = errors.New("sm3: message is not a 4096-byte page")
)

// UseAccel routes compression through the accelerated cgo backend.
// It is switched on by the caller (see the accel config section) only
// when the build carries the backend and the CPU supports it; the Go
// path is always available and always correct.
var UseAccel = false

// EnableAccel switches the accelerated backend on or off. Turning it
// on succeeds only when the build carries the backend and the CPU
// supports it; otherwise the software path stays active. It reports
// whether acceleration is now in use.
func EnableAccel(enable bool) bool {
	UseAccel = enable && cgo_algorithm.Available && hasAccelCPU()
	return UseAccel
}

func compressBlocks(h *[8]uint32, p []byte) {
	if UseAccel {
		cgo_algorithm.CompressBlocks(h, p)
		return
	}
	go_algorithm.CompressBlocks(h, p)
}

// Pad returns msg extended with the SM3 length-encoding trailer: the
// 0x80 marker byte, zero fill and the original length in bits as a
// big-endian 64-bit integer. The result length is always a multiple
// of BlockSize.
func Pad(msg []byte) []byte {
	l := len(msg)
	padded := make([]byte, (l+9+BlockSize-1)/BlockSize*BlockSize)
	copy(padded, msg)
	padded[l] = 0x80
	binary.BigEndian.PutUint64(padded[len(padded)-8:], uint64(l)<<3)
	return padded
}

// Sum256 returns the SM3 digest of data.
func Sum256(data []byte) (digest [Size]byte) {
	h := go_algorithm.IV
	compressBlocks(&h, Pad(data))
	serialize(&h, digest[:])
	return
}

// Sum128 returns the truncated SM3 digest of data, the first 16 bytes
// of the 256-bit value.
func Sum128(data []byte) (digest [Size128]byte) {
	full := Sum256(data)
	copy(digest[:], full[:Size128])
	return
}

// Digest hashes data at the requested output width in bits.
func Digest(data []byte, width int) ([]byte, error) {
	switch width {
	case 256:
		d := Sum256(data)
		return d[:], nil
	case 128:
		d := Sum128(data)
		return d[:], nil
	default:
		return nil, ErrInvalidWidth
	}
}

func serialize(h *[8]uint32, out []byte) {
	for i, v := range h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
}
