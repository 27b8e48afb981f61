// File: cmd/cachelinesize/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Prints the cache line geometry seen by this build and by the host.
// Useful for checking the compiled padding against the hardware before
// deploying latency-sensitive rings.

package main

import (
	"fmt"

	"github.com/Vaibhav-20022002/RingMaster/cacheline"
)

func main() {
	fmt.Printf("detected line size: %d bytes\n", cacheline.Detect())
	fmt.Printf("compiled pad size:  %d bytes\n", cacheline.PadSize)
	fmt.Printf("false sharing span: %d bytes\n", cacheline.FalseSharingRange)
}
