package client

import (
	"fmt"

	"github.com/mserignese/gopro-control/internal/command"
	"github.com/mserignese/gopro-control/internal/wol"
)

// Do executes one parsed message against the camera and returns the
// reply text. Wake never touches HTTP; battery and stream reshape the
// HTTP outcome; every other command returns the raw response body, no
// matter the status code.
func (c *GoProClient) Do(msg command.Message) (string, error) {
	switch msg.Def.Kind {
	case command.KindWake:
		if c.Config.MACAddr == "" {
			return "", fmt.Errorf("wake requires mac_address to be configured")
		}
		if err := wol.Wake(c.Config.IPAddr, c.Config.MACAddr); err != nil {
			return "", fmt.Errorf("waking camera: %w", err)
		}
		return "", nil

	case command.KindBatteryLevel:
		return c.BatteryLevel()

	case command.KindStream:
		resp, err := c.HTTP.R().Get(msg.Path())
		if err != nil {
			return "", fmt.Errorf("starting stream: %w", err)
		}
		if resp.IsSuccess() {
			return "1", nil
		}
		return "0", nil

	default:
		resp, err := c.HTTP.R().Get(msg.Path())
		if err != nil {
			return "", fmt.Errorf("sending %s: %w", msg.Def.Name, err)
		}
		return resp.String(), nil
	}
}
