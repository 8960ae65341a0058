package models

import "encoding/json"

// CameraStatus represents the gpControl /status payload
type CameraStatus struct {
	Status   map[string]json.Number `json:"status"`   // keyed by numeric field ID sent as a string
	Settings map[string]json.Number `json:"settings"` // same shape as status
}

// Battery percent lives in status field "2", recording flag in "8".
const (
	StatusFieldBattery   = "2"
	StatusFieldRecording = "8"
)
