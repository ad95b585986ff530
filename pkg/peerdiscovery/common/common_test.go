package common

import (
	"net"
	"testing"
)

func TestIsNetworkOrBroadcast(t *testing.T) {
	_, network, err := net.ParseCIDR("192.168.0.0/29")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		ip   string
		want bool
	}{
		{"192.168.0.0", true},
		{"192.168.0.7", true},
		{"192.168.0.1", false},
		{"192.168.0.6", false},
		{"192.168.0.8", false},
		{"2001:db8::1", false},
	}
	for _, tt := range tests {
		if got := IsNetworkOrBroadcast(net.ParseIP(tt.ip), network); got != tt.want {
			t.Errorf("IsNetworkOrBroadcast(%s) = %v, want %v", tt.ip, got, tt.want)
		}
	}

	if IsNetworkOrBroadcast(net.ParseIP("192.168.0.0"), nil) {
		t.Error("nil network must never match")
	}
}

func TestPrivateNetwork24(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"192.168.1.42/16", "192.168.1.0/24"},
		{"10.20.30.40/8", "10.20.30.0/24"},
		{"8.8.8.8/24", ""},
		{"fd00::1/64", ""},
	}
	for _, tt := range tests {
		ip, ipNet, err := net.ParseCIDR(tt.addr)
		if err != nil {
			t.Fatal(err)
		}
		ipNet.IP = ip
		got := privateNetwork24(ipNet)
		switch {
		case tt.want == "" && got != nil:
			t.Errorf("privateNetwork24(%s) = %s, want nil", tt.addr, got)
		case tt.want != "" && (got == nil || got.String() != tt.want):
			t.Errorf("privateNetwork24(%s) = %v, want %s", tt.addr, got, tt.want)
		}
	}
}
