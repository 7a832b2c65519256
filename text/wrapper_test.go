package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"narou-downloader/model"
)

func TestWriteBook(t *testing.T) {
	book := &model.Book{
		NCode: "n1234ab",
		Title: "Example Work",
		Episodes: []*model.Episode{
			{Index: 1, Title: "First", HtmlBody: "<p>one</p><img src=\"x.png\"/>"},
			{Index: 2, Title: "a/b: two?", HtmlBody: "<p>two</p>\n<hr/>\n<p>after</p>"},
		},
	}

	dir := t.TempDir()
	require.NoError(t, WriteBook(book, dir))

	data, err := os.ReadFile(filepath.Join(dir, "n1234ab", "00001-First.txt"))
	require.NoError(t, err)
	require.Contains(t, string(data), "one")
	require.NotContains(t, string(data), "<p>")
	require.NotContains(t, string(data), "img")

	// Unsafe filename characters are replaced.
	data, err = os.ReadFile(filepath.Join(dir, "n1234ab", "00002-a_b_ two_.txt"))
	require.NoError(t, err)
	require.Contains(t, string(data), "two")
	require.Contains(t, string(data), "after")
}
