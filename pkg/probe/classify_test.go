package probe

import "testing"

const (
	linuxReply = `PING 8.8.8.8 (8.8.8.8) 56(84) bytes of data.
64 bytes from 8.8.8.8: icmp_seq=1 ttl=117 time=10.4 ms

--- 8.8.8.8 ping statistics ---
1 packets transmitted, 1 received, 0% packet loss, time 0ms
rtt min/avg/max/mdev = 10.412/10.412/10.412/0.000 ms
`
	linuxNoReply = `PING 192.168.0.6 (192.168.0.6) 56(84) bytes of data.

--- 192.168.0.6 ping statistics ---
1 packets transmitted, 0 received, 100% packet loss, time 0ms
`
	linuxHostUnreachable = `PING 192.168.0.6 (192.168.0.6) 56(84) bytes of data.
From 192.168.0.10 icmp_seq=1 Destination Host Unreachable

--- 192.168.0.6 ping statistics ---
1 packets transmitted, 0 received, +1 errors, 100% packet loss, time 0ms
`
	windowsReply = `
Pinging 8.8.8.8 with 32 bytes of data:
Reply from 8.8.8.8: bytes=32 time=12ms TTL=117

Ping statistics for 8.8.8.8:
    Packets: Sent = 1, Received = 1, Lost = 0 (0% loss),
`
	windowsTimeout = `
Pinging 192.168.0.6 with 32 bytes of data:
Request timed out.

Ping statistics for 192.168.0.6:
    Packets: Sent = 1, Received = 0, Lost = 1 (100% loss),
`
	windowsDestinationUnreachable = `
Pinging 192.168.0.6 with 32 bytes of data:
Reply from 192.168.0.10: Destination host unreachable.

Ping statistics for 192.168.0.6:
    Packets: Sent = 1, Received = 1, Lost = 0 (0% loss),
`
	windowsTTLExpired = `
Pinging 10.9.9.9 with 32 bytes of data:
Reply from 10.0.0.1: TTL expired in transit.
`
	darwinReply = `PING 127.0.0.1 (127.0.0.1): 56 data bytes
64 bytes from 127.0.0.1: icmp_seq=0 ttl=64 time=0.061 ms

--- 127.0.0.1 ping statistics ---
1 packets transmitted, 1 packets received, 0.0% packet loss
`
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   Verdict
	}{
		{"linux reply", linuxReply, VerdictReachable},
		{"linux no reply", linuxNoReply, VerdictUnreachable},
		{"linux host unreachable", linuxHostUnreachable, VerdictUnreachable},
		{"windows reply", windowsReply, VerdictReachable},
		{"windows timeout", windowsTimeout, VerdictUnreachable},
		{"windows destination unreachable", windowsDestinationUnreachable, VerdictUnreachable},
		{"windows ttl expired", windowsTTLExpired, VerdictUnreachable},
		{"darwin reply", darwinReply, VerdictReachable},
		{"summary only", "1 packets transmitted, 1 received, 0% packet loss", VerdictReachable},
		{"unknown host", "ping: nosuchhost: Name or service not known", VerdictUnreachable},
		{"missing binary", `exec: "ping": executable file not found in $PATH`, VerdictAmbiguous},
		{"empty output", "", VerdictAmbiguous},
		{"ttl without whitespace", "xttl=64", VerdictAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.output); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}
