package netutil

import "net"

// IsUsableHost reports whether ip is a host address of network in the usual
// CIDR host enumeration sense. The network address and, for IPv4, the
// broadcast address are excluded, as are IPv6 multicast addresses.
// Point-to-point (/31, /127) and single host (/32, /128) networks keep
// every address.
func IsUsableHost(ip net.IP, network *net.IPNet) bool {
	if network == nil || !network.Contains(ip) {
		return false
	}

	ones, bits := network.Mask.Size()
	if bits-ones <= 1 {
		return true
	}

	if ip.Equal(network.IP) {
		return false
	}

	if ip4 := ip.To4(); ip4 != nil {
		return !ip.Equal(Broadcast(network))
	}

	return !ip.IsMulticast()
}

// Broadcast returns the all-ones host address of network
func Broadcast(network *net.IPNet) net.IP {
	base := network.IP
	if ip4 := base.To4(); ip4 != nil && len(network.Mask) == net.IPv4len {
		base = ip4
	}
	broadcast := make(net.IP, len(base))
	copy(broadcast, base)
	for i := range broadcast {
		broadcast[i] |= ^network.Mask[i]
	}
	return broadcast
}

// CompareIP compares two IPs by numeric value. Returns -1 if ip1 < ip2,
// 0 if equal, 1 if ip1 > ip2. IPv4 always comes before IPv6.
func CompareIP(ip1, ip2 net.IP) int {
	ip1v4 := ip1.To4()
	ip2v4 := ip2.To4()

	switch {
	case ip1v4 != nil && ip2v4 == nil:
		return -1
	case ip1v4 == nil && ip2v4 != nil:
		return 1
	case ip1v4 != nil && ip2v4 != nil:
		return compareBytes(ip1v4, ip2v4)
	}
	return compareBytes(ip1.To16(), ip2.To16())
}

// CompareAddr is CompareIP for textual addresses. Unparsable strings sort
// after every valid address, in lexical order.
func CompareAddr(a, b string) int {
	ipA, ipB := net.ParseIP(a), net.ParseIP(b)
	switch {
	case ipA != nil && ipB != nil:
		return CompareIP(ipA, ipB)
	case ipA != nil:
		return -1
	case ipB != nil:
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBytes(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
