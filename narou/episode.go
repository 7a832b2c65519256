package narou

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"narou-downloader/model"
)

const placeholderBody = "<p>(no body found)</p>"

// Page selectors for the episode content zones.
const (
	subtitleSelector  = ".novel_subtitle"
	prefaceSelector   = "#novel_p"
	bodySelector      = "#novel_honbun"
	afterwordSelector = "#novel_a"
)

// GetDocument fetches a URL through the client and parses it into a
// queryable tree.
func GetDocument(client *Client, url string) (*goquery.Document, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %v", err)
	}
	return doc, nil
}

// ExtractEpisode fetches one episode page and derives its title and content
// zones. The body is never empty: when no zone yields content a placeholder
// paragraph is substituted.
func ExtractEpisode(client *Client, url string, includePreface, includeAfterword bool, defaultTitle string) (*model.Episode, error) {
	doc, err := GetDocument(client, url)
	if err != nil {
		return nil, err
	}
	return extractEpisodeFromDocument(doc, url, includePreface, includeAfterword, defaultTitle), nil
}

func extractEpisodeFromDocument(doc *goquery.Document, url string, includePreface, includeAfterword bool, defaultTitle string) *model.Episode {
	title := defaultTitle
	if subtitle := doc.Find(subtitleSelector).First(); subtitle.Length() > 0 {
		title = strings.TrimSpace(subtitle.Text())
	}

	parts := make([]string, 0, 3)
	if includePreface {
		if html := zoneHtml(doc, prefaceSelector); html != "" {
			parts = append(parts, html)
		}
	}
	if html := zoneHtml(doc, bodySelector); html != "" {
		parts = append(parts, html)
	}
	if includeAfterword {
		if html := zoneHtml(doc, afterwordSelector); html != "" {
			parts = append(parts, html)
		}
	}

	body := placeholderBody
	if len(parts) > 0 {
		body = strings.Join(parts, "\n<hr/>\n")
	}

	return &model.Episode{
		Index:    episodeIndex(url),
		Title:    title,
		Url:      url,
		HtmlBody: body,
	}
}

// zoneHtml captures the inner markup of the first element matching the
// selector, or "" when the zone is absent.
func zoneHtml(doc *goquery.Document, selector string) string {
	node := doc.Find(selector).First()
	if node.Length() == 0 {
		return ""
	}
	html, err := node.Html()
	if err != nil {
		return ""
	}
	return html
}

// episodeIndex parses the trailing numeric path segment of an episode URL,
// defaulting to 1 when absent.
func episodeIndex(url string) int {
	matches := trailingNumRegexp.FindStringSubmatch(url)
	if len(matches) == 0 {
		return 1
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 1
	}
	return n
}
