// Package rlimit adjusts the open file ceiling of the process so that the
// worker pool can keep its probes in flight.
package rlimit

// DefaultNoFile is the open file limit requested before a sweep
const DefaultNoFile = 10240

const (
	// filesPerProbe covers the output pipe pair, the null stdin and the
	// child process handle of one running ping
	filesPerProbe = 4
	// reservedFiles is kept for the log, the csv export and the runtime
	reservedFiles = 64
)

// Required returns the number of open files needed to run workers probes
// concurrently
func Required(workers int) uint64 {
	if workers < 0 {
		workers = 0
	}
	return uint64(workers)*filesPerProbe + reservedFiles
}
