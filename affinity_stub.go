//go:build !linux

package stealpool

// PinToCPU is a no-op on platforms without sched_setaffinity.
func PinToCPU(int) error { return nil }
