package model

// Episode is one fetched chapter of a work. Immutable once built.
type Episode struct {
	Index    int
	Title    string
	Url      string
	HtmlBody string
}

// Book is the assembled work, ready to be serialized to an EPUB.
// Episodes are ordered ascending by Index.
type Book struct {
	Identifier string // dc:identifier, "narou:{ncode}"
	NCode      string
	Title      string
	Author     string
	Language   string
	StyleCSS   string
	// TotalEpisodes is the official episode count reported by the API,
	// 0 when unknown.
	TotalEpisodes int
	Episodes      []*Episode
}
