// +build sm3ni,!arm64

package cgo_algorithm

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/pagehash/pagehash/crypto/sm3/go_algorithm"
)

// Available reports whether this build carries the accelerated backend.
const Available = false

var warnOnce sync.Once

// CompressBlocks falls back to the portable backend; the NEON kernel
// is arm64 only.
func CompressBlocks(h *[8]uint32, p []byte) {
	warnOnce.Do(func() {
		log.Warn("NEON compression hasn't been implemented on this architecture, disable it by default.")
	})
	go_algorithm.CompressBlocks(h, p)
}
