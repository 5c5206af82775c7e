package clfparse

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ClientRanking is an ordered ranking of client addresses by hit count. It
// marshals as a JSON object whose keys appear in rank order, which a plain
// map cannot guarantee.
type ClientRanking []ClientCount

// MarshalJSON implements json.Marshaler.
func (r ClientRanking) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Addr)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatUint(c.Count, 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PathRanking is an ordered ranking of resource paths by average response
// size. Like ClientRanking, it marshals as an order-preserving JSON object.
type PathRanking []PathAverage

// MarshalJSON implements json.Marshaler.
func (r PathRanking) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val := strconv.FormatFloat(p.KiB, 'f', -1, 64)
		// whole-number averages keep a trailing .0 so they still read
		// as sizes in KiB, not counts
		if !strings.Contains(val, ".") {
			val += ".0"
		}
		buf.WriteString(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Report is the one-shot summary produced at the end of a run. It is
// assembled once, after the input is exhausted, and never mutated afterwards.
type Report struct {
	LinesProcessed int           `json:"total_number_of_lines_processed"`
	LinesOK        int           `json:"total_number_of_lines_ok"`
	LinesFailed    int           `json:"total_number_of_lines_failed"`
	TopClientIPs   ClientRanking `json:"top_client_ips"`
	TopPathSizes   PathRanking   `json:"top_path_avg_response_size"`
}

// JSON renders the report as an indented JSON document.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}
