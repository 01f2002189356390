package errors

import (
	"net/url"
	"strings"
)

// ValidateSegment checks that s can be appended to a URL path as a single
// segment without any escaping.
//
// The rules are:
//   - No empty segments
//   - No "." or ".." segments
//   - No character that url.PathEscape would percent-encode
//     (slashes, '?', '#', spaces, control characters, non-ASCII, ...)
//
// field names the coordinate field being checked and is used in the message.
func ValidateSegment(field, s string) error {
	if s == "" {
		return New(ErrCodeInvalidCoordinate, "%s contains an empty path segment", field)
	}
	if s == "." || s == ".." {
		return New(ErrCodeInvalidCoordinate, "%s segment %q is a relative path element", field, s)
	}
	if esc := url.PathEscape(s); esc != s {
		return New(ErrCodeInvalidCoordinate, "%s segment %q contains characters that are not allowed in a URL path", field, s)
	}
	return nil
}

// ValidateBaseURL validates a remote repository base URL.
// It must be absolute and use the http or https scheme.
func ValidateBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, New(ErrCodeInvalidInput, "remote URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, Wrap(ErrCodeInvalidInput, err, "invalid remote URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, New(ErrCodeInvalidInput, "remote URL must use http or https scheme: %q", raw)
	}
	if u.Host == "" {
		return nil, New(ErrCodeInvalidInput, "remote URL has no host: %q", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, New(ErrCodeInvalidInput, "remote URL cannot carry a query or fragment: %q", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		u.RawPath = ""
	}
	return u, nil
}
