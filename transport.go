package sender

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Transport is the datagram capability used to deliver packets. Any
// net.PacketConn satisfies it.
type Transport interface {
	WriteTo(p []byte, addr net.Addr) (int, error)
}

var errTransportClosed = errors.New("transport closed")

type outcome int

const (
	sent outcome = iota
	failed
)

// listenUDP opens an unconnected UDP socket so that sends never wait on a peer.
func listenUDP(ctx context.Context) (net.PacketConn, error) {
	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp", ":0")
	if err != nil {
		return nil, fmt.Errorf("failed to open socket: %w", err)
	}
	return conn, nil
}

func resolveEndpoint(ctx context.Context, endpoint string) (*net.UDPAddr, error) {
	host, port, err := net.SplitHostPort(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	portNum, err := net.DefaultResolver.LookupPort(ctx, "udp", port)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint port %q: %w", port, err)
	}
	if host == "" {
		host = "localhost"
	}
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", host, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("failed to resolve %q: no addresses", host)
	}
	// prefer IPv4, which is where collectors usually listen
	addr := addrs[0]
	for _, a := range addrs {
		if a.IP.To4() != nil {
			addr = a
			break
		}
	}
	return &net.UDPAddr{IP: addr.IP, Port: portNum, Zone: addr.Zone}, nil
}

// brokenTransport fails every send. It stands in when no socket could be opened.
type brokenTransport struct {
	err error
}

func (t brokenTransport) WriteTo([]byte, net.Addr) (int, error) {
	return 0, t.err
}

// deliver makes one best-effort send. Failures, including a panicking
// transport, are reported to the error listener and never to the caller.
func (c *clientImpl) deliver(packet string) (result outcome) {
	defer func() {
		if r := recover(); r != nil {
			c.reportError(fmt.Errorf("transport panic: %v", r))
			result = failed
		}
	}()

	if c.closed.Load() {
		c.reportError(fmt.Errorf("failed to send: %w", errTransportClosed))
		return failed
	}
	if _, err := c.transport.WriteTo([]byte(packet), c.addr); err != nil {
		c.reportError(fmt.Errorf("failed to send: %w", err))
		return failed
	}
	return sent
}
