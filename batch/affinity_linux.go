// +build linux

package batch

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// pinWorker binds the calling goroutine's OS thread to one core. The
// thread is left locked so the pin holds for the worker's lifetime;
// batch workers are spawned fresh per call, so the thread dies with
// the goroutine.
func pinWorker(id int) {
	if !Affinity {
		return
	}

	runtime.LockOSThread()
	var set unix.CPUSet
	set.Set(id % runtime.NumCPU())
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		log.WithFields(log.Fields{
			"module": logModule,
			"worker": id,
			"err":    err,
		}).Debug("cpu pinning failed")
	}
}
