package player

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamURL(t *testing.T) {
	assert.Equal(t, "udp://10.5.5.9:8554", StreamURL("10.5.5.9", 8554))
}

func TestLaunchMissingBinary(t *testing.T) {
	err := Launch(context.Background(), "/nonexistent/viewer", "udp://127.0.0.1:8554")
	assert.Error(t, err)
}
