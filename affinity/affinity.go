// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.
//
// Pinning the producer and consumer endpoints of a ring to dedicated
// cores keeps their cache lines resident and their wakeups predictable.

package affinity

import (
	"fmt"
	"runtime"
)

// SetAffinity pins current OS thread to a given logical CPU/core on supported platforms.
// On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	if cpuID < 0 {
		return fmt.Errorf("affinity: invalid cpu %d", cpuID)
	}
	return setAffinityPlatform(cpuID)
}

// Pin locks the calling goroutine to its OS thread and binds that thread
// to the given logical CPU. The goroutine remains locked to its thread
// even when binding fails.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	return SetAffinity(cpuID)
}
