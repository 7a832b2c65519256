package narou

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"narou-downloader/model"
	"narou-downloader/template"
)

const (
	DefaultBaseURL   = "https://ncode.syosetu.com"
	DefaultAPIURL    = "https://api.syosetu.com/novelapi/api/"
	DefaultUserAgent = "narou-dl/0.1 (personal-use)"
	DefaultLanguage  = "ja"
)

// Options controls one download run.
type Options struct {
	Url       string
	Delay     time.Duration
	Timeout   time.Duration
	Retries   int
	UserAgent string

	// FromEp/ToEp bound the episode range by embedded number, inclusive;
	// 0 means unbounded.
	FromEp int
	ToEp   int

	IncludePreface   bool
	IncludeAfterword bool
	Vertical         bool

	// BaseURL/APIURL default to the production endpoints.
	BaseURL string
	APIURL  string

	// Progress, when set, is called after each fetched episode.
	Progress func(index int, url string, done, total int)
}

// FetchBook runs the whole pipeline: resolve the ncode, discover and filter
// the episode list, fetch every episode in order and return the assembled
// Book. A fetch failure on any episode aborts the run; nothing is written.
func FetchBook(opts Options) (*model.Book, error) {
	ncode, err := ExtractNCode(opts.Url)
	if err != nil {
		return nil, err
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := NewClient(opts.Delay, opts.Timeout, opts.Retries, userAgent)

	totalEpisodes, _ := FetchGeneralAllNo(client, apiURL, ncode)

	indexUrl := IndexURL(baseURL, ncode)
	base, err := url.Parse(baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %v", err)
	}

	indexDoc, err := GetDocument(client, indexUrl)
	if err != nil {
		return nil, err
	}

	bookTitle := ncode
	if node := indexDoc.Find(".novel_title").First(); node.Length() > 0 {
		bookTitle = strings.TrimSpace(node.Text())
	}
	author := strings.TrimSpace(indexDoc.Find(".novel_writername a").First().Text())

	episodeUrls := ParseEpisodeURLs(indexDoc, ncode, base)
	if len(episodeUrls) == 0 {
		// A work with no episode links is served entirely on its index
		// page; treat that page as the sole episode.
		episodeUrls = []string{indexUrl}
	}

	numberRe := episodeNumberRegexp(ncode)
	filtered := make([]string, 0, len(episodeUrls))
	for _, u := range episodeUrls {
		epNo, ok := EpisodeNumber(numberRe, u)
		if !ok {
			epNo = 1
		}
		if opts.FromEp > 0 && epNo < opts.FromEp {
			continue
		}
		if opts.ToEp > 0 && epNo > opts.ToEp {
			continue
		}
		filtered = append(filtered, u)
	}
	if len(filtered) == 0 {
		return nil, ErrNoEpisodes
	}

	episodes := make([]*model.Episode, 0, len(filtered))
	for _, u := range filtered {
		episode, err := ExtractEpisode(client, u, opts.IncludePreface, opts.IncludeAfterword, bookTitle)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, episode)
		if opts.Progress != nil {
			opts.Progress(episode.Index, u, len(episodes), len(filtered))
		}
	}

	return &model.Book{
		Identifier:    fmt.Sprintf("narou:%s", ncode),
		NCode:         ncode,
		Title:         bookTitle,
		Author:        author,
		Language:      DefaultLanguage,
		StyleCSS:      template.StyleCSS(opts.Vertical),
		TotalEpisodes: totalEpisodes,
		Episodes:      episodes,
	}, nil
}
