//go:build linux
// +build linux

// File: cacheline/detect_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux probe: reads the L1 data cache coherency line size from sysfs.

package cacheline

import (
	"os"
	"strconv"
	"strings"
)

const coherencyLineSizePath = "/sys/devices/system/cpu/cpu0/cache/index0/coherency_line_size"

// detectHost reads the coherency line size of cpu0; returns 0 when the
// sysfs node is absent or malformed.
func detectHost() int {
	data, err := os.ReadFile(coherencyLineSizePath)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return n
}
