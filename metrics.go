package clfparse

import (
	"strings"

	"github.com/cactus/go-statsd-client/v5/statsd"
)

// CounterSink receives fire-and-forget counter increments for processed
// lines. Implementations must not let delivery problems surface to the run.
type CounterSink interface {
	Increment(name string)
}

// NopSink is a CounterSink that discards every increment.
type NopSink struct{}

// Increment implements CounterSink.
func (NopSink) Increment(string) {}

// StatsdSink forwards counter increments to a statsd server.
type StatsdSink struct {
	client statsd.Statter
}

// NewStatsdSink returns a sink connected to the statsd server at addr
// (host:port). Metrics are sent under the "clfparse" prefix.
func NewStatsdSink(addr string) (*StatsdSink, error) {
	client, err := statsd.NewClientWithConfig(&statsd.ClientConfig{
		Address: addr,
		Prefix:  "clfparse",
	})
	if err != nil {
		return nil, err
	}
	return &StatsdSink{client: client}, nil
}

// Increment sends one counter increment. Send errors are dropped: metrics
// must never affect the run.
func (s *StatsdSink) Increment(name string) {
	_ = s.client.Inc(name, 1, 1.0)
}

// Close closes the underlying statsd client.
func (s *StatsdSink) Close() error {
	return s.client.Close()
}

// StatsdAddr validates a "host:port" statsd server value, typically taken
// from the STATSD_SERVER environment variable. It reports false when the
// host is empty or the port is not numeric.
func StatsdAddr(s string) (string, bool) {
	host, port, ok := strings.Cut(s, ":")
	if !ok || host == "" || !digits(port) {
		return "", false
	}
	return s, true
}
