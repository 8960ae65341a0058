// Package keepalive maintains the camera's control session by sending
// the heartbeat datagram it expects on its UDP stream port.
package keepalive

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"sync/atomic"
	"time"
)

// Payload is the heartbeat datagram the camera expects, verbatim.
const Payload = "_GPHD_:0:0:2:0.000000\n"

// Port is the UDP port the camera listens on for heartbeats. The
// low-latency stream is served back from the same port.
const Port = 8554

// Addr returns the heartbeat destination for a camera IP.
func Addr(ip string) string {
	return net.JoinHostPort(ip, strconv.Itoa(Port))
}

// Loop sends the heartbeat to a fixed address at a fixed interval.
type Loop struct {
	addr     string
	interval time.Duration
	logger   *slog.Logger
	sent     atomic.Uint64
}

// New returns a loop targeting addr (host:port) every interval.
func New(addr string, interval time.Duration, logger *slog.Logger) *Loop {
	return &Loop{addr: addr, interval: interval, logger: logger}
}

// Run sends one heartbeat immediately, then one per interval, until
// ctx is cancelled. Send failures are logged and the loop keeps going.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.send()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.send()
		}
	}
}

// Sent reports how many heartbeats have been written so far.
func (l *Loop) Sent() uint64 {
	return l.sent.Load()
}

func (l *Loop) send() {
	conn, err := net.Dial("udp4", l.addr)
	if err != nil {
		l.logger.Warn("keepalive dial failed", "addr", l.addr, "error", err)
		return
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(Payload)); err != nil {
		l.logger.Warn("keepalive send failed", "addr", l.addr, "error", err)
		return
	}
	l.sent.Add(1)
}
