package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mserignese/gopro-control/internal/command"
)

func mustParse(t *testing.T, tokens ...string) command.Message {
	t.Helper()
	msg, err := command.Parse(tokens)
	require.NoError(t, err)
	return msg
}

func TestDoRendersTemplatePath(t *testing.T) {
	var gotPath, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL})

	_, err := c.Do(mustParse(t, "video_resolution", "4k"))
	require.NoError(t, err)
	assert.Equal(t, "/setting/2/1", gotPath)

	_, err = c.Do(mustParse(t, "video_resolution", "1080p"))
	require.NoError(t, err)
	assert.Equal(t, "/setting/2/9", gotPath)

	_, err = c.Do(mustParse(t, "record_start"))
	require.NoError(t, err)
	assert.Equal(t, "/command/shutter", gotPath)
	assert.Equal(t, "p=1", gotQuery)
}

func TestDoReturnsRawBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":{}}`))
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL})
	reply, err := c.Do(mustParse(t, "get_status"))
	require.NoError(t, err)
	assert.Equal(t, `{"status":{}}`, reply)
}

func TestDoPassesThroughErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad setting"))
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL})
	reply, err := c.Do(mustParse(t, "display_on"))
	require.NoError(t, err)
	assert.Equal(t, "bad setting", reply)
}

func TestDoStreamMapsHTTPOutcome(t *testing.T) {
	status := http.StatusOK
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(status)
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL})

	reply, err := c.Do(mustParse(t, "stream"))
	require.NoError(t, err)
	assert.Equal(t, "1", reply)
	assert.Equal(t, "p1=gpStream&a1=proto_v2&c1=restart", gotQuery)

	status = http.StatusInternalServerError
	reply, err = c.Do(mustParse(t, "stream"))
	require.NoError(t, err)
	assert.Equal(t, "0", reply)

	// Only 2xx counts as started; a non-error status like 304 does not.
	status = http.StatusNotModified
	reply, err = c.Do(mustParse(t, "stream"))
	require.NoError(t, err)
	assert.Equal(t, "0", reply)
}

func TestDoStreamTransportError(t *testing.T) {
	c := New(ClientConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	_, err := c.Do(mustParse(t, "stream"))
	assert.Error(t, err)
}

func TestDoBatteryLevel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":{"2":87}}`))
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL})
	reply, err := c.Do(mustParse(t, "get_battery_level"))
	require.NoError(t, err)
	assert.Equal(t, "87", reply)
}

func TestDoWakeSkipsHTTP(t *testing.T) {
	hit := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL, IPAddr: "127.0.0.1", MACAddr: "aabbccddeeff"})
	reply, err := c.Do(mustParse(t, "wake"))
	require.NoError(t, err)
	assert.Empty(t, reply)
	assert.False(t, hit, "wake must not touch the HTTP API")
}

func TestDoWakeRequiresMAC(t *testing.T) {
	c := New(ClientConfig{BaseURL: "http://example.invalid", IPAddr: "127.0.0.1"})
	_, err := c.Do(mustParse(t, "wake"))
	assert.ErrorContains(t, err, "mac_address")
}
