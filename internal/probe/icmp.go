// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// IANA protocol numbers passed to icmp.ParseMessage.
const (
	protocolICMP     = 1
	protocolIPv6ICMP = 58
)

var (
	// ErrNoAddress is returned when host resolves to no usable IP address.
	ErrNoAddress = errors.New("host has no usable address")
	// ErrNoReply is returned when no matching echo reply arrived in time.
	ErrNoReply = errors.New("no echo reply")
)

var echoPayload = []byte("campus-login")

// ICMPPinger sends ICMP echo requests. The zero value is ready to use.
type ICMPPinger struct {
	seq atomic.Uint32
}

// NewICMPPinger returns a pinger that sends one ICMP echo per Ping call.
func NewICMPPinger() *ICMPPinger {
	return &ICMPPinger{}
}

type icmpFamily struct {
	udpNetwork string
	rawNetwork string
	listenAddr string
	protocol   int
	echo       icmp.Type
	echoReply  icmp.Type
}

var (
	familyV4 = icmpFamily{
		udpNetwork: "udp4",
		rawNetwork: "ip4:icmp",
		listenAddr: "0.0.0.0",
		protocol:   protocolICMP,
		echo:       ipv4.ICMPTypeEcho,
		echoReply:  ipv4.ICMPTypeEchoReply,
	}
	familyV6 = icmpFamily{
		udpNetwork: "udp6",
		rawNetwork: "ip6:ipv6-icmp",
		listenAddr: "::",
		protocol:   protocolIPv6ICMP,
		echo:       ipv6.ICMPTypeEchoRequest,
		echoReply:  ipv6.ICMPTypeEchoReply,
	}
)

// Ping implements [Pinger]. It resolves host, sends a single echo request
// and waits up to timeout for the matching reply.
func (p *ICMPPinger) Ping(ctx context.Context, host string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ip, err := resolve(ctx, host)
	if err != nil {
		return err
	}

	family := familyV4
	if ip.To4() == nil {
		family = familyV6
	}

	conn, privileged, err := listen(family)
	if err != nil {
		return fmt.Errorf("open icmp socket: %w", err)
	}
	defer conn.Close()

	deadline, _ := ctx.Deadline()
	if err = conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("set icmp deadline: %w", err)
	}
	// cancellation unblocks the pending read
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	defer stop()

	id := os.Getpid() & 0xffff
	seq := int(p.seq.Add(1) & 0xffff)

	msg := icmp.Message{
		Type: family.echo,
		Body: &icmp.Echo{ID: id, Seq: seq, Data: echoPayload},
	}
	wire, err := msg.Marshal(nil)
	if err != nil {
		return fmt.Errorf("marshal echo request: %w", err)
	}

	var dst net.Addr = &net.UDPAddr{IP: ip}
	if privileged {
		dst = &net.IPAddr{IP: ip}
	}
	if _, err = conn.WriteTo(wire, dst); err != nil {
		return fmt.Errorf("send echo request: %w", err)
	}

	buf := make([]byte, 1500)
	for {
		n, peer, err := conn.ReadFrom(buf)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				if errors.Is(ctx.Err(), context.Canceled) {
					return ctx.Err()
				}
				return ErrNoReply
			}
			return fmt.Errorf("read echo reply: %w", err)
		}

		if sameIP(peer, ip) && isEchoReply(family, buf[:n], id, seq, privileged) {
			return nil
		}
	}
}

// isEchoReply reports whether data is the reply to the request sent with id
// and seq. Stray echo traffic from other processes is rejected.
func isEchoReply(family icmpFamily, data []byte, id, seq int, privileged bool) bool {
	reply, err := icmp.ParseMessage(family.protocol, data)
	if err != nil || reply.Type != family.echoReply {
		return false
	}

	echo, ok := reply.Body.(*icmp.Echo)
	if !ok || echo.Seq != seq || !bytes.Equal(echo.Data, echoPayload) {
		return false
	}

	// the kernel rewrites the identifier on datagram sockets
	return !privileged || echo.ID == id
}

func listen(family icmpFamily) (*icmp.PacketConn, bool, error) {
	conn, err := icmp.ListenPacket(family.udpNetwork, family.listenAddr)
	if err == nil {
		return conn, false, nil
	}

	conn, rawErr := icmp.ListenPacket(family.rawNetwork, family.listenAddr)
	if rawErr != nil {
		return nil, false, errors.Join(err, rawErr)
	}
	return conn, true, nil
}

func resolve(ctx context.Context, host string) (net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		return ip, nil
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}

	var fallback net.IP
	for _, a := range addrs {
		if a.IP.To4() != nil {
			return a.IP, nil
		}
		if fallback == nil {
			fallback = a.IP
		}
	}
	if fallback == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoAddress, host)
	}
	return fallback, nil
}

func sameIP(addr net.Addr, ip net.IP) bool {
	switch a := addr.(type) {
	case *net.UDPAddr:
		return a.IP.Equal(ip)
	case *net.IPAddr:
		return a.IP.Equal(ip)
	default:
		return false
	}
}
