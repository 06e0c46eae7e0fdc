package pingsweep

import (
	"context"
	"errors"
	"time"

	"github.com/projectdiscovery/subnetping/pkg/types"
)

const (
	// DefaultCount is the number of echo requests sent per host
	DefaultCount = 4
	// DefaultTimeout bounds a whole probe attempt
	DefaultTimeout = 15 * time.Second
	// DefaultWorkers is the worker-pool width
	DefaultWorkers = 50
)

// ErrProbeUnavailable marks a probe that could not be launched at all
// (missing ping binary, socket not permitted).
var ErrProbeUnavailable = errors.New("probe unavailable")

// Prober performs a single reachability check against one address.
// A probe that times out is not an error: it is classified from whatever
// was observed before the deadline.
type Prober interface {
	Probe(ctx context.Context, ip string) (types.Status, error)
}

// ProberFunc adapts a function to the Prober interface
type ProberFunc func(ctx context.Context, ip string) (types.Status, error)

func (f ProberFunc) Probe(ctx context.Context, ip string) (types.Status, error) {
	return f(ctx, ip)
}
