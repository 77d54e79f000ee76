// +build !arm64

package sm3

func hasAccelCPU() bool {
	return false
}
