//go:build !linux && !darwin
// +build !linux,!darwin

// File: cacheline/detect_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub for platforms without a line size probe; Detect falls back to
// DefaultLineSize.

package cacheline

func detectHost() int {
	return 0
}
