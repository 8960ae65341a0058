package models

import "encoding/json"

// CameraInfoResponse represents the outer wrapper of the gpControl base
// URL payload
type CameraInfoResponse struct {
	Info CameraInfo `json:"info"`
}

// CameraInfo represents the camera identity block
type CameraInfo struct {
	ModelNumber     json.Number `json:"model_number"` // JSON value is a bare number
	ModelName       string      `json:"model_name"`
	FirmwareVersion string      `json:"firmware_version"`
	SerialNumber    string      `json:"serial_number"`
	APMAC           string      `json:"ap_mac"`
	APSSID          string      `json:"ap_ssid"`
}
