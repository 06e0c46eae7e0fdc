package netutil

import (
	"net"
	"testing"
)

func TestIsUsableHost(t *testing.T) {
	tests := []struct {
		name string
		cidr string
		ip   string
		want bool
	}{
		{name: "first host of /24", cidr: "192.168.1.0/24", ip: "192.168.1.1", want: true},
		{name: "network address of /24", cidr: "192.168.1.0/24", ip: "192.168.1.0", want: false},
		{name: "broadcast address of /24", cidr: "192.168.1.0/24", ip: "192.168.1.255", want: false},
		{name: "last host of /30", cidr: "10.0.0.0/30", ip: "10.0.0.2", want: true},
		{name: "broadcast of /30", cidr: "10.0.0.0/30", ip: "10.0.0.3", want: false},
		{name: "point-to-point low address", cidr: "10.0.0.0/31", ip: "10.0.0.0", want: true},
		{name: "point-to-point high address", cidr: "10.0.0.0/31", ip: "10.0.0.1", want: true},
		{name: "single host", cidr: "10.0.0.7/32", ip: "10.0.0.7", want: true},
		{name: "outside network", cidr: "10.0.0.0/24", ip: "10.0.1.1", want: false},
		{name: "ipv6 subnet router anycast", cidr: "2001:db8::/126", ip: "2001:db8::", want: false},
		{name: "ipv6 last address kept", cidr: "2001:db8::/126", ip: "2001:db8::3", want: true},
		{name: "ipv6 multicast excluded", cidr: "ff02::/120", ip: "ff02::1", want: false},
		{name: "ipv6 single host", cidr: "2001:db8::5/128", ip: "2001:db8::5", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, network, err := net.ParseCIDR(tt.cidr)
			if err != nil {
				t.Fatalf("ParseCIDR(%q): %v", tt.cidr, err)
			}
			if got := IsUsableHost(net.ParseIP(tt.ip), network); got != tt.want {
				t.Errorf("IsUsableHost(%s, %s) = %v, want %v", tt.ip, tt.cidr, got, tt.want)
			}
		})
	}
}

func TestBroadcast(t *testing.T) {
	tests := []struct {
		cidr string
		want string
	}{
		{cidr: "192.168.1.0/24", want: "192.168.1.255"},
		{cidr: "10.0.0.0/30", want: "10.0.0.3"},
		{cidr: "172.16.0.0/12", want: "172.31.255.255"},
	}

	for _, tt := range tests {
		t.Run(tt.cidr, func(t *testing.T) {
			_, network, _ := net.ParseCIDR(tt.cidr)
			if got := Broadcast(network); !got.Equal(net.ParseIP(tt.want)) {
				t.Errorf("Broadcast(%s) = %s, want %s", tt.cidr, got, tt.want)
			}
		})
	}
}

func TestCompareIP(t *testing.T) {
	tests := []struct {
		name string
		ip1  string
		ip2  string
		want int
	}{
		{name: "ip1 < ip2", ip1: "192.168.1.1", ip2: "192.168.1.2", want: -1},
		{name: "ip1 > ip2", ip1: "192.168.1.2", ip2: "192.168.1.1", want: 1},
		{name: "ip1 == ip2", ip1: "192.168.1.1", ip2: "192.168.1.1", want: 0},
		{name: "numeric not lexical", ip1: "10.0.0.9", ip2: "10.0.0.10", want: -1},
		{name: "ipv6", ip1: "2001:db8::1", ip2: "2001:db8::2", want: -1},
		{name: "ipv4 before ipv6", ip1: "255.255.255.255", ip2: "::1", want: -1},
		{name: "ipv6 after ipv4", ip1: "::1", ip2: "0.0.0.1", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareIP(net.ParseIP(tt.ip1), net.ParseIP(tt.ip2)); got != tt.want {
				t.Errorf("CompareIP() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompareAddr(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "10.0.0.2", b: "10.0.0.10", want: -1},
		{a: "10.0.0.10", b: "10.0.0.2", want: 1},
		{a: "10.0.0.1", b: "bogus", want: -1},
		{a: "bogus", b: "::1", want: 1},
		{a: "alpha", b: "beta", want: -1},
		{a: "same", b: "same", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := CompareAddr(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareAddr(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
