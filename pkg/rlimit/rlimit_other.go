//go:build !linux && !darwin
// +build !linux,!darwin

package rlimit

// Supported reports whether the platform exposes an open file limit
const Supported = false

// Current always reports no limit on platforms without RLIMIT_NOFILE
func Current() (uint64, error) {
	return 0, nil
}

// Raise is a no-op on platforms without RLIMIT_NOFILE
func Raise(want uint64) (uint64, error) {
	return want, nil
}
