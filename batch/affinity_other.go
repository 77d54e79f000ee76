// +build !linux

package batch

// Affinity pinning is only wired up on linux.
func pinWorker(id int) {}
