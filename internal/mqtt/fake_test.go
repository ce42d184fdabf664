package mqtt

import (
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/markusressel/fanctrl/internal/statelog"
)

// FakePublisher records published state records for test assertions.
type FakePublisher struct {
	// Records contains all state records that were published.
	Records []statelog.Record

	// Payloads contains the JSON payloads that were published.
	Payloads [][]byte

	// PublishError, if set, will be returned by Record.
	PublishError error

	// Closed tracks if Close was called.
	Closed bool
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (f *FakePublisher) Record(record statelog.Record) error {
	if f.PublishError != nil {
		return f.PublishError
	}

	payload, err := FormatPayload(record)
	if err != nil {
		return err
	}
	f.Records = append(f.Records, record)
	f.Payloads = append(f.Payloads, payload)

	return nil
}

func (f *FakePublisher) Close() error {
	f.Closed = true
	return nil
}

// fakeClient is a paho client that never reaches the broker
type fakeClient struct {
	paho.Client
	token        *fakeToken
	disconnected bool
}

func (c *fakeClient) Connect() paho.Token {
	return c.token
}

func (c *fakeClient) Disconnect(quiesce uint) {
	c.disconnected = true
}

type fakeToken struct {
	paho.Token
	completed bool
	err       error
}

func (t *fakeToken) WaitTimeout(time.Duration) bool {
	return t.completed
}

func (t *fakeToken) Error() error {
	return t.err
}
