package clfparse

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/creachadair/shell"
)

// timeLayout matches the CLF timestamp, for example "10/Oct/2000:13:55:36 -0700".
const timeLayout = "02/Jan/2006:15:04:05 -0700"

// Request methods accepted in the request line. Methods are case-sensitive;
// lowercase variants fail.
var httpMethods = map[string]bool{
	"OPTIONS": true,
	"GET":     true,
	"HEAD":    true,
	"POST":    true,
	"PUT":     true,
	"DELETE":  true,
	"TRACE":   true,
	"CONNECT": true,
	"PATCH":   true,
}

// digits reports whether s is non-empty and contains only ASCII digits.
func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// validAddress reports whether addr is a dotted-quad IPv4 address with each
// component in [0,255]. IPv6 is not supported.
func validAddress(addr string) bool {
	parts := strings.Split(addr, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if !digits(part) {
			return false
		}
		n, err := strconv.Atoi(part)
		if err != nil || n > 255 {
			return false
		}
	}
	return true
}

// validTimestamp reports whether the date and timezone tokens together form
// a bracketed CLF timestamp such as "[10/Oct/2000:13:55:36 -0700]". The
// bracket-stripped content must parse under timeLayout; no calendar checks
// are made beyond what time.Parse enforces.
func validTimestamp(date, zone string) bool {
	stamp := date + " " + zone
	if !strings.HasPrefix(stamp, "[") || !strings.HasSuffix(stamp, "]") {
		return false
	}
	_, err := time.Parse(timeLayout, stamp[1:len(stamp)-1])
	return err == nil
}

// validRequest checks a request-line token such as "GET /index.html HTTP/1.1"
// and returns the percent-decoded resource path. The token must split into
// method, path, and protocol; the method must be on the allow list, and the
// protocol must look like HTTP/<major>.<minor> with numeric version parts.
// The path itself is accepted as-is after decoding: pinning down legal paths
// across platforms is a losing game, so no further checks are made. Paths
// with broken percent-escapes are kept undecoded rather than rejected.
func validRequest(request string) (string, bool) {
	tokens, ok := shell.Split(request)
	if !ok || len(tokens) != 3 {
		return "", false
	}
	if !httpMethods[tokens[0]] {
		return "", false
	}
	path, err := url.PathUnescape(tokens[1])
	if err != nil {
		path = tokens[1]
	}
	if !validProtocol(tokens[2]) {
		return "", false
	}
	return path, true
}

func validProtocol(proto string) bool {
	version, ok := strings.CutPrefix(proto, "HTTP/")
	if !ok || strings.Contains(version, "/") {
		return false
	}
	major, minor, ok := strings.Cut(version, ".")
	return ok && digits(major) && digits(minor)
}

// validStatus reports whether code is a three-digit status code beginning
// with 2, 3, 4 or 5. An exhaustive list of response codes is elusive, so
// only the shape is checked.
func validStatus(code string) bool {
	if len(code) != 3 || !digits(code) {
		return false
	}
	return code[0] >= '2' && code[0] <= '5'
}

// validSize parses the response-size field: digits only, no sign, no
// decimal point.
func validSize(size string) (int64, bool) {
	if !digits(size) {
		return 0, false
	}
	n, err := strconv.ParseInt(size, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
