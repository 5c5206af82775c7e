// Package clfparse validates and summarizes access logs in the Common Log
// Format (CLF), as written by HTTP reverse proxies and load balancers such
// as nginx:
//
//	212.205.21.11 - - [30/Jun/2019:17:06:15 +0000] "GET / HTTP/1.1" 200 2028 "Mozilla/5.0 (X11; Linux x86_64)"
//
// Each line is tokenized and validated field by field; lines that pass
// contribute to per-client hit counts and per-path response-size totals, and
// the run produces a single report ranking the busiest clients and the paths
// with the largest average response size:
//
//	report, err := clfparse.SummarizeFile("access.log", clfparse.Options{
//		MaxClientIPs: 10,
//		MaxPaths:     10,
//	})
//
// Lines that fail validation are counted and skipped; only an I/O error
// aborts a run.
package clfparse

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// maxLineSize is the longest single line Summarize will read. User-agent
// comment content is arbitrary, so legal lines can run far past bufio's
// 64KiB default token limit.
const maxLineSize = 16 * 1024 * 1024

// Options configures a summarizing run. The zero value processes every line
// with empty rankings, no metrics, and the default logger.
type Options struct {
	// MaxClientIPs caps the number of entries in the report's client
	// ranking. Zero means an empty ranking.
	MaxClientIPs int
	// MaxPaths caps the number of entries in the report's path ranking.
	// Zero means an empty ranking.
	MaxPaths int
	// Metrics receives one "lines.processed" increment per line, plus a
	// "lines.ok" or "lines.failed" increment. Nil disables metrics.
	Metrics CounterSink
	// Logger receives per-line diagnostics and the run summary. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// Summarize reads CLF lines from r until end of stream and returns the
// run's report. Lines are processed strictly one at a time: tokenized,
// validated field by field with the first failure winning, and tallied only
// when every validator passes.
func Summarize(r io.Reader, opt Options) (*Report, error) {
	log := opt.Logger
	if log == nil {
		log = slog.Default()
	}
	sink := opt.Metrics
	if sink == nil {
		sink = NopSink{}
	}
	tally := NewTally()
	report := &Report{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		addr, path, size, err := checkLine(line)
		report.LinesProcessed++
		sink.Increment("lines.processed")
		if err != nil {
			report.LinesFailed++
			sink.Increment("lines.failed")
			log.Warn("skipping invalid line", "error", err)
			continue
		}
		report.LinesOK++
		sink.Increment("lines.ok")
		tally.Record(addr, path, size)
		log.Debug("line validated", "client", addr, "path", path, "size", size)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	log.Info("finished processing",
		"processed", report.LinesProcessed,
		"ok", report.LinesOK,
		"failed", report.LinesFailed,
	)
	report.TopClientIPs = tally.TopClients(opt.MaxClientIPs)
	report.TopPathSizes = tally.TopPaths(opt.MaxPaths)
	return report, nil
}

// SummarizeFile is like Summarize, reading from the named file.
func SummarizeFile(name string, opt Options) (*Report, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Summarize(f, opt)
}

// checkLine tokenizes and validates one line, returning the client address,
// decoded resource path, and response size the tally needs. Validators run
// in field order; fields 1 and 2, identity and userid, carry no format
// constraints and are not checked.
func checkLine(line string) (addr, path string, size int64, err error) {
	f, err := SplitLine(line)
	if err != nil {
		return "", "", 0, err
	}
	if !validAddress(f[fieldAddress]) {
		return "", "", 0, fmt.Errorf("%w: %q", ErrAddressInvalid, f[fieldAddress])
	}
	if !validTimestamp(f[fieldDate], f[fieldZone]) {
		return "", "", 0, fmt.Errorf("%w: %q", ErrTimestampInvalid, f[fieldDate]+" "+f[fieldZone])
	}
	path, ok := validRequest(f[fieldRequest])
	if !ok {
		return "", "", 0, fmt.Errorf("%w: %q", ErrRequestInvalid, f[fieldRequest])
	}
	if !validStatus(f[fieldStatus]) {
		return "", "", 0, fmt.Errorf("%w: %q", ErrStatusInvalid, f[fieldStatus])
	}
	size, ok = validSize(f[fieldSize])
	if !ok {
		return "", "", 0, fmt.Errorf("%w: %q", ErrSizeInvalid, f[fieldSize])
	}
	if !validAgent(f[fieldAgent]) {
		return "", "", 0, fmt.Errorf("%w: %q", ErrAgentInvalid, f[fieldAgent])
	}
	return f[fieldAddress], path, size, nil
}
