// File: cacheline/cacheline.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cache line geometry for padding and alignment decisions.
// PadSize is resolved per GOARCH at compile time; Detect probes the
// running host so deployments can verify the compiled assumption
// against the actual hardware.

package cacheline

import (
	"unsafe"

	tcpu "github.com/templexxx/cpu"
	"golang.org/x/sys/cpu"
)

// Pad occupies one full cache line. Embed as a blank field to keep the
// neighboring struct fields on separate lines.
type Pad = cpu.CacheLinePad

// PadSize is the compile-time cache line size for the target GOARCH.
const PadSize = unsafe.Sizeof(cpu.CacheLinePad{})

// FalseSharingRange is the distance two hot variables must keep on x86
// to avoid destructive interference; the spatial prefetcher pulls cache
// lines in adjacent pairs.
const FalseSharingRange = tcpu.X86FalseSharingRange

// DefaultLineSize is the fallback when the host exposes no probe for
// its coherency line size.
const DefaultLineSize = 64

// Detect returns the cache line size of the host in bytes, or
// DefaultLineSize when the platform offers no way to ask.
func Detect() int {
	if n := detectHost(); n > 0 {
		return n
	}
	return DefaultLineSize
}
