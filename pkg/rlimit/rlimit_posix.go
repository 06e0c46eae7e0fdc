//go:build linux || darwin
// +build linux darwin

package rlimit

import "golang.org/x/sys/unix"

// Supported reports whether the platform exposes an open file limit
const Supported = true

// Current returns the soft open file limit
func Current() (uint64, error) {
	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &limit); err != nil {
		return 0, err
	}
	return uint64(limit.Cur), nil
}

// Raise lifts the soft open file limit to want and returns the effective
// limit. A limit above the hard ceiling needs privileges; when raising the
// ceiling is refused the soft limit is raised up to the ceiling instead.
// The limit is never lowered.
func Raise(want uint64) (uint64, error) {
	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &limit); err != nil {
		return 0, err
	}
	if uint64(limit.Cur) >= want {
		return uint64(limit.Cur), nil
	}

	if want <= uint64(limit.Max) {
		raised := unix.Rlimit{Cur: want, Max: limit.Max}
		if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &raised); err != nil {
			return uint64(limit.Cur), err
		}
		return want, nil
	}

	raised := unix.Rlimit{Cur: want, Max: want}
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &raised); err == nil {
		return want, nil
	}

	capped := unix.Rlimit{Cur: limit.Max, Max: limit.Max}
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &capped); err != nil {
		return uint64(limit.Cur), err
	}
	return uint64(limit.Max), nil
}
