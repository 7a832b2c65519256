package narou

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseEpisodeURLs scans every anchor of the index page for episode links
// belonging to the given ncode, resolves them against base, deduplicates and
// sorts them ascending by the embedded episode number. Links whose number
// cannot be parsed sort last.
func ParseEpisodeURLs(doc *goquery.Document, ncode string, base *url.URL) []string {
	urls := make([]string, 0)
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		path := href
		if strings.Contains(href, "://") {
			parsed, err := url.Parse(href)
			if err != nil {
				return
			}
			path = parsed.Path
		}
		matches := episodePathRegexp.FindStringSubmatch(path)
		if len(matches) == 0 || !strings.EqualFold(matches[1], ncode) {
			return
		}
		ref, err := url.Parse(path)
		if err != nil {
			return
		}
		absUrl := base.ResolveReference(ref).String()
		if _, ok := seen[absUrl]; ok {
			return
		}
		seen[absUrl] = struct{}{}
		urls = append(urls, absUrl)
	})

	numberRe := episodeNumberRegexp(ncode)
	sort.SliceStable(urls, func(i, j int) bool {
		return episodeKey(numberRe, urls[i]) < episodeKey(numberRe, urls[j])
	})

	return urls
}

// episodeNumberRegexp matches the episode number embedded after the ncode
// path segment.
func episodeNumberRegexp(ncode string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)/%s/(\d+)/`, regexp.QuoteMeta(ncode)))
}

// EpisodeNumber reports the episode number embedded in an episode URL.
func EpisodeNumber(re *regexp.Regexp, rawUrl string) (int, bool) {
	matches := re.FindStringSubmatch(rawUrl)
	if len(matches) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func episodeKey(re *regexp.Regexp, rawUrl string) int {
	if n, ok := EpisodeNumber(re, rawUrl); ok {
		return n
	}
	return math.MaxInt
}
