// Package player launches the external viewer for the camera's
// low-latency UDP stream.
package player

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// StreamURL is where the camera serves the live stream once the stream
// command has restarted it.
func StreamURL(ip string, port int) string {
	return fmt.Sprintf("udp://%s:%d", ip, port)
}

// Launch runs the viewer against the stream and blocks until it exits.
// Stdout and stderr pass through so the viewer owns the terminal while
// it runs.
func Launch(ctx context.Context, path, streamURL string) error {
	cmd := exec.CommandContext(ctx, path, "--profile=low-latency", streamURL)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	return nil
}
