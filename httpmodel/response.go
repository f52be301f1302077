// Package httpmodel is the HTTP response shape the core is driven by,
// and the one fail-fast parse boundary outside the rendering pipeline
// proper, per spec §6/§7.
package httpmodel

import (
	"strconv"
	"strings"

	"github.com/pinhole-web/pinhole/errors"
)

// Header is a single ordered name/value pair.
type Header struct {
	Name  string
	Value string
}

// Response is the shape the shell hands to Page.ReceiveResponse and
// receives back from its navigation callback.
type Response struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    []Header
	Body       string
}

// Location returns the value of the Location header and whether it was
// present, case-insensitively, for the shell's 302-redirect handling
// (spec §6: outside the core, but the shape lives alongside Response).
func (r Response) Location() (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, "Location") {
			return h.Value, true
		}
	}
	return "", false
}

// ParseStatusLine parses an HTTP status line ("HTTP/1.1 200 OK") into
// its three fields. This is the one fail-fast validation in the whole
// core: a missing or malformed status line fails with
// errors.UnexpectedInput rather than defaulting, per spec §7.
func ParseStatusLine(line string) (version string, statusCode int, reason string, err error) {
	const op = "httpmodel.ParseStatusLine"

	parts := strings.SplitN(strings.TrimRight(line, "\r\n"), " ", 3)
	if len(parts) < 2 {
		return "", 0, "", errors.New(op, errors.UnexpectedInput)
	}

	statusCode, convErr := strconv.Atoi(parts[1])
	if convErr != nil {
		return "", 0, "", errors.Wrap(op, errors.UnexpectedInput, convErr)
	}

	reason = ""
	if len(parts) == 3 {
		reason = parts[2]
	}

	return parts[0], statusCode, reason, nil
}
