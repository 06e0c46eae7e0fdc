package pingsweep

import (
	"context"
	"fmt"
	"time"

	"github.com/projectdiscovery/subnetping/pkg/types"
	probing "github.com/prometheus-community/pro-bing"
)

// ICMPProber sends echo requests in process instead of spawning ping
type ICMPProber struct {
	Count   int
	Timeout time.Duration
	// Privileged selects raw ICMP sockets over unprivileged datagram sockets
	Privileged bool
}

// NewICMPProber creates an in-process ICMP prober
func NewICMPProber(count int, timeout time.Duration, privileged bool) *ICMPProber {
	return &ICMPProber{
		Count:      count,
		Timeout:    timeout,
		Privileged: privileged,
	}
}

// Probe pings ip and reports it up when at least one reply came back
func (p *ICMPProber) Probe(ctx context.Context, ip string) (types.Status, error) {
	pinger, err := probing.NewPinger(ip)
	if err != nil {
		return types.StatusDown, fmt.Errorf("%w: %v", ErrProbeUnavailable, err)
	}

	pinger.Count = p.Count
	if pinger.Count <= 0 {
		pinger.Count = DefaultCount
	}
	pinger.Timeout = p.Timeout
	if pinger.Timeout <= 0 {
		pinger.Timeout = DefaultTimeout
	}
	pinger.SetPrivileged(p.Privileged)

	done := make(chan error, 1)
	go func() {
		done <- pinger.Run()
	}()

	select {
	case runErr := <-done:
		if runErr != nil {
			return types.StatusDown, fmt.Errorf("%w: %v", ErrProbeUnavailable, runErr)
		}
	case <-ctx.Done():
		pinger.Stop()
		<-done
	}

	return statusOf(pinger.Statistics().PacketsRecv > 0), nil
}
