//go:build darwin
// +build darwin

// File: cacheline/detect_darwin.go
// Author: momentics <momentics@gmail.com>
//
// Darwin probe: asks sysctl for hw.cachelinesize.

package cacheline

import "golang.org/x/sys/unix"

// detectHost queries hw.cachelinesize; returns 0 when sysctl fails.
// The key is typed as a 64-bit quantity on current macOS, with a 32-bit
// fallback for older kernels.
func detectHost() int {
	if v, err := unix.SysctlUint64("hw.cachelinesize"); err == nil && v > 0 {
		return int(v)
	}
	if v, err := unix.SysctlUint32("hw.cachelinesize"); err == nil && v > 0 {
		return int(v)
	}
	return 0
}
