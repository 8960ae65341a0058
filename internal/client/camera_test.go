package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "http://10.5.5.9/gp/gpControl", BaseURL("10.5.5.9"))
}

func TestStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":{"1":1,"2":87,"8":0},"settings":{"2":9}}`))
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL})
	status, err := c.Status()
	require.NoError(t, err)
	assert.Equal(t, "87", status.Status["2"].String())
	assert.Equal(t, "0", status.Status["8"].String())
	assert.Equal(t, "9", status.Settings["2"].String())
}

func TestStatusHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "camera asleep", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL})
	_, err := c.Status()
	assert.ErrorContains(t, err, "failed to get status")
}

func TestBatteryLevelMissingField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":{"1":1}}`))
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL})
	_, err := c.BatteryLevel()
	assert.ErrorContains(t, err, "battery")
}

func TestInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"info":{"model_number":42,"model_name":"HERO7 Black",` +
			`"firmware_version":"HD7.01.01.61.00","serial_number":"C3221324500711",` +
			`"ap_mac":"0441693db024","ap_ssid":"gp24500711"}}`))
	}))
	defer ts.Close()

	c := New(ClientConfig{BaseURL: ts.URL})
	info, err := c.Info()
	require.NoError(t, err)
	assert.Equal(t, "HERO7 Black", info.ModelName)
	assert.Equal(t, "HD7.01.01.61.00", info.FirmwareVersion)
	assert.Equal(t, "C3221324500711", info.SerialNumber)
	assert.Equal(t, "gp24500711", info.APSSID)
}
