// +build arm64

package sm3

import "golang.org/x/sys/cpu"

// hasAccelCPU reports whether this CPU can run the NEON backend.
func hasAccelCPU() bool {
	return cpu.ARM64.HasASIMD
}
