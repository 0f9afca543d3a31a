package tracker

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var errNotHTTP = errors.New("apply link must be an http(s) URL")

// NormalizeApplyLink returns the canonical form of a job posting link so the
// same posting saved twice compares equal:
//   - Add https:// when the scheme is missing
//   - Lower-case the scheme and host
//   - Drop default ports (http:80, https:443)
//   - Remove utm_* tracking parameters, keeping the rest in their original order
//   - Remove the fragment
//
// An empty link stays empty.
func NormalizeApplyLink(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("could not parse apply link: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errNotHTTP
	}

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
		}
	}
	u.Host = host

	// rebuild by hand; url.Values.Encode would reorder the remaining parameters
	if u.RawQuery != "" {
		kept := make([]string, 0)
		for _, part := range strings.Split(u.RawQuery, "&") {
			key, _, _ := strings.Cut(part, "=")
			if part == "" || strings.HasPrefix(strings.ToLower(key), "utm_") {
				continue
			}
			kept = append(kept, part)
		}
		u.RawQuery = strings.Join(kept, "&")
	}

	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}
