// Package batch fans independent message digests out across CPU
// cores. Messages are partitioned into contiguous ranges, one range
// per worker, and every worker writes only its own slice of the
// output, so the hot path needs no locks.
package batch

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/pagehash/pagehash/crypto/sm3"
)

const logModule = "batch"

// ErrWorkerFailure is returned when a worker dies before finishing
// its range. No partial output is ever returned alongside it.
var ErrWorkerFailure = errors.New("batch: worker failed")

// Affinity requests best-effort pinning of workers to CPU cores. It
// is advisory only and never changes the digests.
var Affinity = false

// hashFn is what workers run per message; swapped out in tests to
// exercise the failure path.
var hashFn = sm3.Digest

// Digest hashes every message at the requested width in bits and
// returns the digests in input order. The effective worker count is
// min(threadHint, NumCPU, len(msgs)); a hint of zero or less means
// one worker per CPU. The call returns only after every worker has
// finished.
func Digest(msgs [][]byte, threadHint int, width int) ([][]byte, error) {
	switch width {
	case 128, 256:
	default:
		return nil, sm3.ErrInvalidWidth
	}

	n := len(msgs)
	out := make([][]byte, n)
	if n == 0 {
		return out, nil
	}

	workers := threadHint
	if workers <= 0 || workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	log.WithFields(log.Fields{
		"module":   logModule,
		"messages": n,
		"workers":  workers,
		"width":    width,
	}).Debug("dispatching batch")

	var wg sync.WaitGroup
	errs := make([]error, workers)
	per := n / workers
	for i := 0; i < workers; i++ {
		lo := i * per
		hi := lo + per
		if i == workers-1 {
			// The last range absorbs the remainder.
			hi = n
		}

		wg.Add(1)
		go func(id, lo, hi int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[id] = errors.Wrapf(ErrWorkerFailure, "worker %d: %v", id, r)
				}
			}()

			pinWorker(id)
			for j := lo; j < hi; j++ {
				d, err := hashFn(msgs[j], width)
				if err != nil {
					errs[id] = err
					return
				}
				out[j] = d
			}
		}(i, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
