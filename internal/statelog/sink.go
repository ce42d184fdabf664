package statelog

import (
	"encoding/json"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/markusressel/fanctrl/internal/util"
	"io"
)

// Sink receives the periodic state records
type Sink interface {
	Record(record Record) error
}

// Multi forwards every record to all of its sinks.
// A failing sink is logged and does not affect the others.
type Multi []Sink

func (m Multi) Record(record Record) error {
	for _, sink := range m {
		if err := sink.Record(record); err != nil {
			ui.Warning("Unable to record state: %v", err)
		}
	}
	return nil
}

// Close closes all sinks that need closing
func (m Multi) Close() error {
	for _, sink := range m {
		closer, ok := sink.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			ui.Warning("Unable to close state sink: %v", err)
		}
	}
	return nil
}

// LogSink prints every record to the console
type LogSink struct{}

func (LogSink) Record(record Record) error {
	ui.Info("Current fan control state:  %s", record)
	return nil
}

// StatusFileSink replaces the content of a file with the latest record as JSON,
// for consumption by other tools
type StatusFileSink struct {
	Path string
}

func (s StatusFileSink) Record(record Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	path, err := util.ExpandPath(s.Path)
	if err != nil {
		return err
	}
	return util.WriteFileAtomic(data, path)
}
