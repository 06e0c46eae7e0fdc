package netutil

import (
	"net"
)

// LocalNetworks returns the private IPv4 networks of the up, non-loopback
// interfaces, widened to /24. IPv6 prefixes are skipped since a /64 cannot be
// swept host by host.
func LocalNetworks() ([]*net.IPNet, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var networks []*net.IPNet
	seen := make(map[string]struct{})

	for _, iface := range interfaces {
		// Skip loopback and down interfaces
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			// Only IPv4 networks can be swept
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipNet.IP.To4()
			// Public addresses are never swept implicitly
			if ip4 == nil || !ip4.IsPrivate() {
				continue
			}

			// Widen to /24 so a /16 interface does not expand to 65k hosts
			mask24 := net.CIDRMask(24, 32)
			network := &net.IPNet{IP: ip4.Mask(mask24), Mask: mask24}
			key := network.String()
			// Several interfaces can share a network
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			networks = append(networks, network)
		}
	}

	return networks, nil
}
