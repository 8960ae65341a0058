package client

import (
	"fmt"

	"github.com/mserignese/gopro-control/pkg/models"
)

func (c *GoProClient) Status() (*models.CameraStatus, error) {
	var respData models.CameraStatus

	resp, err := c.HTTP.R().
		SetResult(&respData).
		Get("/status")

	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to get status: %s", resp.String())
	}

	return &respData, nil
}

// Info fetches the camera identity block from the gpControl root.
func (c *GoProClient) Info() (*models.CameraInfo, error) {
	var respData models.CameraInfoResponse

	resp, err := c.HTTP.R().
		SetResult(&respData).
		Get("")

	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to get info: %s", resp.String())
	}

	return &respData.Info, nil
}

// BatteryLevel returns the battery percent as the camera reports it.
func (c *GoProClient) BatteryLevel() (string, error) {
	status, err := c.Status()
	if err != nil {
		return "", err
	}

	level, ok := status.Status[models.StatusFieldBattery]
	if !ok {
		return "", fmt.Errorf("status payload has no battery field %q", models.StatusFieldBattery)
	}
	return level.String(), nil
}
