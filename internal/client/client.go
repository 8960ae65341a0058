package client

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// BasePath is the gpControl API root on the camera.
const BasePath = "/gp/gpControl"

// BaseURL returns the gpControl root for a camera IP. The camera only
// speaks plain HTTP on its access-point network.
func BaseURL(ip string) string {
	return "http://" + ip + BasePath
}

// GoProClient talks to one camera's gpControl API.
type GoProClient struct {
	HTTP   *resty.Client
	Config ClientConfig
}

// ClientConfig carries the connection coordinates for a camera. IPAddr
// and MACAddr are kept alongside the base URL for the wake path, which
// never goes over HTTP.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	IPAddr  string
	MACAddr string
}

func New(cfg ClientConfig) *GoProClient {
	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)

	// Structured endpoints reply with JSON, settings and commands with
	// bare text or an empty body.
	r.SetHeader("Accept", "application/json")

	if cfg.Timeout > 0 {
		r.SetTimeout(cfg.Timeout)
	}

	return &GoProClient{
		HTTP:   r,
		Config: cfg,
	}
}
