package clfparse

import (
	"testing"
)

func TestStatsdAddr(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		value  string
		want   string
		wantOK bool
	}{
		{"localhost:8125", "localhost:8125", true},
		{"10.0.0.1:8125", "10.0.0.1:8125", true},
		{"localhost", "", false},
		{"localhost:", "", false},
		{":8125", "", false},
		{"localhost:junk", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		got, ok := StatsdAddr(tc.value)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("StatsdAddr(%q): want (%q, %t), got (%q, %t)", tc.value, tc.want, tc.wantOK, got, ok)
		}
	}
}

func TestNopSink(t *testing.T) {
	t.Parallel()
	// must be safe to call without any server configured
	NopSink{}.Increment("lines.processed")
}
