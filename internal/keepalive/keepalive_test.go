package keepalive

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunSendsHeartbeats(t *testing.T) {
	listener, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer listener.Close()

	interval := 50 * time.Millisecond
	duration := 250 * time.Millisecond
	loop := New(listener.LocalAddr().String(), interval, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()
	<-done

	// The first heartbeat fires immediately, so a 250ms run at 50ms
	// spacing delivers at least 4 datagrams even under scheduling jitter.
	minDatagrams := int(duration/interval) - 1
	require.NoError(t, listener.SetReadDeadline(time.Now().Add(500*time.Millisecond)))
	count := 0
	buf := make([]byte, 64)
	for {
		n, _, err := listener.ReadFromUDP(buf)
		if err != nil {
			break
		}
		assert.Equal(t, Payload, string(buf[:n]))
		count++
	}
	assert.GreaterOrEqual(t, count, minDatagrams)
	assert.GreaterOrEqual(t, loop.Sent(), uint64(minDatagrams))
}

func TestRunStopsOnCancel(t *testing.T) {
	loop := New("127.0.0.1:8554", time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop on cancellation")
	}
}

func TestRunSurvivesSendFailure(t *testing.T) {
	loop := New("127.0.0.1:notaport", 20*time.Millisecond, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not run to cancellation")
	}
	assert.Zero(t, loop.Sent())
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "10.5.5.9:8554", Addr("10.5.5.9"))
}
