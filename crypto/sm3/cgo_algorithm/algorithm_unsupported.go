// +build !sm3ni

package cgo_algorithm

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/pagehash/pagehash/crypto/sm3/go_algorithm"
)

// Available reports whether this build carries the accelerated backend.
const Available = false

var warnOnce sync.Once

// CompressBlocks falls back to the portable backend. The accelerated
// path is only compiled in with the sm3ni build tag.
func CompressBlocks(h *[8]uint32, p []byte) {
	warnOnce.Do(func() {
		log.Warn("NEON compression is not supported on release version, please compile with the sm3ni tag to enable this feature.")
	})
	go_algorithm.CompressBlocks(h, p)
}
