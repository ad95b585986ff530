package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/projectdiscovery/gologger"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

// DefaultICMPTimeout matches the usual wait of the ping tool
const DefaultICMPTimeout = 2 * time.Second

var echoPayload = []byte("HELLO-R-U-THERE")

// ICMPProber sends one ICMP echo per probe and waits for the matching reply.
type ICMPProber struct {
	network    string
	privileged bool
	timeout    time.Duration
	id         int
	seq        atomic.Uint32
}

// NewICMPProber opens and closes a socket once so that missing privileges
// are reported up front instead of as unreachable hosts.
func NewICMPProber(timeout time.Duration) (*ICMPProber, error) {
	network, privileged, err := icmpNetwork()
	if err != nil {
		return nil, err
	}

	conn, err := icmp.ListenPacket(network, "0.0.0.0")
	if err != nil {
		return nil, fmt.Errorf("failed to open %s socket: %w", network, err)
	}
	_ = conn.Close()

	if timeout <= 0 {
		timeout = DefaultICMPTimeout
	}
	return &ICMPProber{
		network:    network,
		privileged: privileged,
		timeout:    timeout,
		id:         os.Getpid() & 0xffff,
	}, nil
}

// Probe sends a single echo request to address.
func (p *ICMPProber) Probe(ctx context.Context, address string) bool {
	ok, err := p.echo(ctx, address)
	if err != nil {
		gologger.Debug().Msgf("icmp echo to %s failed: %s", address, err)
		return false
	}
	return ok
}

func (p *ICMPProber) echo(ctx context.Context, address string) (bool, error) {
	ip := net.ParseIP(address).To4()
	if ip == nil {
		return false, fmt.Errorf("invalid IPv4 address %q", address)
	}

	conn, err := icmp.ListenPacket(p.network, "0.0.0.0")
	if err != nil {
		return false, fmt.Errorf("failed to open %s socket: %w", p.network, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	seq := int(p.seq.Add(1) & 0xffff)
	msgBytes, err := marshalEcho(p.id, seq)
	if err != nil {
		return false, err
	}

	// datagram sockets address peers by UDP address
	var dst net.Addr = &net.IPAddr{IP: ip}
	if !p.privileged {
		dst = &net.UDPAddr{IP: ip}
	}
	if _, err := conn.WriteTo(msgBytes, dst); err != nil {
		return false, err
	}

	deadline := time.Now().Add(p.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return false, err
	}

	return awaitReply(ctx, conn, ip, p.id, seq, p.privileged)
}

// awaitReply reads until a matching echo reply, the read deadline or ctx
// cancellation, whichever comes first.
func awaitReply(ctx context.Context, conn net.PacketConn, ip net.IP, id, seq int, checkID bool) (bool, error) {
	// unblock ReadFrom as soon as ctx is done
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
	})
	defer stop()

	reply := make([]byte, 1500)
	for {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		n, peer, err := conn.ReadFrom(reply)
		if err != nil {
			if ctx.Err() != nil {
				return false, ctx.Err()
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				return false, nil
			}
			return false, err
		}

		// the kernel rewrites the echo ID on datagram sockets
		if isEchoReply(reply[:n], peer, ip, id, seq, checkID) {
			return true, nil
		}
	}
}

func marshalEcho(id, seq int) ([]byte, error) {
	msg := &icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   id,
			Seq:  seq,
			Data: echoPayload,
		},
	}

	msgBytes, err := msg.Marshal(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ICMP message: %w", err)
	}
	return msgBytes, nil
}

// isEchoReply reports whether b is the reply to our echo request
func isEchoReply(b []byte, peer net.Addr, ip net.IP, id, seq int, checkID bool) bool {
	rm, err := icmp.ParseMessage(ipv4.ICMPTypeEchoReply.Protocol(), b)
	if err != nil {
		return false
	}
	if rm.Type != ipv4.ICMPTypeEchoReply {
		return false
	}

	echo, ok := rm.Body.(*icmp.Echo)
	if !ok || echo.Seq != seq {
		return false
	}
	if checkID && echo.ID != id {
		return false
	}

	switch addr := peer.(type) {
	case *net.IPAddr:
		return addr.IP.Equal(ip)
	case *net.UDPAddr:
		return addr.IP.Equal(ip)
	default:
		return false
	}
}
