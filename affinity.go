//go:build linux

package stealpool

import (
	"golang.org/x/sys/unix"
)

// PinToCPU restricts the calling thread to a single CPU core. Callers
// must hold runtime.LockOSThread for the pinning to stick.
func PinToCPU(cpu int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpu)
	return unix.SchedSetaffinity(0, &mask)
}
