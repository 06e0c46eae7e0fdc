package pingsweep

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/projectdiscovery/mapcidr"
	"github.com/projectdiscovery/subnetping/pkg/netutil"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// DefaultMaxHostBits caps a single network at 2^20 addresses
const DefaultMaxHostBits = 20

var (
	// ErrInvalidTarget is returned for targets that are neither CIDR nor IP
	ErrInvalidTarget = errors.New("invalid target")
	// ErrRangeTooLarge is returned for networks above the host bits cap
	ErrRangeTooLarge = errors.New("network range too large")
)

// ExpandTargets expands CIDRs and individual IPs into the ordered list of
// host addresses to probe. Duplicate addresses are dropped, keeping the
// first occurrence. Any malformed target fails the whole expansion.
func ExpandTargets(targets []string, maxHostBits int) ([]string, error) {
	if maxHostBits <= 0 {
		maxHostBits = DefaultMaxHostBits
	}

	var hosts []string
	for _, target := range targets {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}

		expanded, err := expandTarget(target, maxHostBits)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, expanded...)
	}

	// Overlapping targets keep the first occurrence of each host
	return sliceutil.Dedupe(hosts), nil
}

func expandTarget(target string, maxHostBits int) ([]string, error) {
	// Bare address, probed as is
	if !strings.Contains(target, "/") {
		ip := net.ParseIP(target)
		if ip == nil {
			return nil, fmt.Errorf("%w: %s (must be CIDR or IP)", ErrInvalidTarget, target)
		}
		return []string{ip.String()}, nil
	}

	_, network, err := net.ParseCIDR(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTarget, target, err)
	}

	// Refuse ranges too large to sweep host by host
	ones, bits := network.Mask.Size()
	if bits-ones > maxHostBits {
		return nil, fmt.Errorf("%w: %s has 2^%d addresses (max 2^%d)", ErrRangeTooLarge, target, bits-ones, maxHostBits)
	}

	// Get all IPs in the CIDR range
	ips, err := mapcidr.IPAddresses(network.String())
	if err != nil {
		return nil, fmt.Errorf("failed to expand CIDR %s: %w", network, err)
	}

	hosts := make([]string, 0, len(ips))
	for _, ipStr := range ips {
		ip := net.ParseIP(ipStr)
		if ip == nil {
			continue
		}
		// Skip network and broadcast/multicast addresses
		if !netutil.IsUsableHost(ip, network) {
			continue
		}
		hosts = append(hosts, ip.String())
	}

	return hosts, nil
}
