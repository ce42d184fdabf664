package testingutils

import (
	"github.com/markusressel/fanctrl/internal/statelog"
)

// FakeSink collects all state records
type FakeSink struct {
	Records []statelog.Record
	Err     error
	Closed  bool
}

func (s *FakeSink) Record(record statelog.Record) error {
	if s.Err != nil {
		return s.Err
	}
	s.Records = append(s.Records, record)
	return nil
}

func (s *FakeSink) Close() error {
	s.Closed = true
	return nil
}
