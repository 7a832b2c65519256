package narou

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// An ncode is the canonical work code on the source platform: the letter n,
// four or more digits, and a one or two letter suffix.
var (
	bareNCodeRegexp   = regexp.MustCompile(`(?i)^n\d{4,}[a-z]{1,2}$`)
	nCodePathRegexp   = regexp.MustCompile(`(?i)/(n\d{4,}[a-z]{1,2})(?:/|$)`)
	episodePathRegexp = regexp.MustCompile(`(?i)^/(n\d{4,}[a-z]{1,2})/(\d+)/?$`)
	trailingNumRegexp = regexp.MustCompile(`/(\d+)/?$`)
)

// ExtractNCode resolves a work top-page URL or a bare code to the canonical
// lowercase ncode. Resolution is idempotent.
func ExtractNCode(urlOrNCode string) (string, error) {
	raw := strings.TrimSpace(urlOrNCode)
	if bareNCodeRegexp.MatchString(raw) {
		return strings.ToLower(raw), nil
	}

	path := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		path = u.Path
	}
	matches := nCodePathRegexp.FindStringSubmatch(path + "/")
	if len(matches) == 0 {
		return "", &ResolutionError{Input: urlOrNCode}
	}
	return strings.ToLower(matches[1]), nil
}

// IndexURL returns the canonical index page URL for an ncode.
func IndexURL(baseURL, ncode string) string {
	return fmt.Sprintf("%s/%s/", strings.TrimSuffix(baseURL, "/"), ncode)
}
