// Package mqtt publishes state records to an MQTT broker.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/markusressel/fanctrl/internal/statelog"
)

// Publisher publishes state records to MQTT.
type Publisher interface {
	// Record implements statelog.Sink.
	// Returns an error if publishing fails, which must not stop the controller.
	Record(record statelog.Record) error

	// Close disconnects from the broker.
	Close() error
}

// Payload is the MQTT message of a single state record.
type Payload struct {
	Timestamp     string   `json:"timestamp"`
	DutyCycle     float64  `json:"dutyCycle"`
	Intensity     *float64 `json:"intensity"`
	Temperature   float64  `json:"temperature"`
	ActiveProfile string   `json:"activeProfile"`
	NextProfile   string   `json:"nextProfile,omitempty"`
	SwitchAt      string   `json:"switchAt,omitempty"`
}

// FormatPayload creates the JSON payload for a state record.
// An intensity of Off is published as null.
func FormatPayload(record statelog.Record) ([]byte, error) {
	payload := Payload{
		Timestamp:     record.Timestamp.UTC().Format(time.RFC3339),
		DutyCycle:     record.DutyCycle,
		Temperature:   record.Temperature,
		ActiveProfile: record.ActiveProfile,
		NextProfile:   record.NextProfile,
	}
	if !record.Intensity.IsOff() {
		value := record.Intensity.Value()
		payload.Intensity = &value
	}
	if !record.SwitchAt.IsZero() {
		payload.SwitchAt = record.SwitchAt.UTC().Format(time.RFC3339)
	}
	return json.Marshal(payload)
}
