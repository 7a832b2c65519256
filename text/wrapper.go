package text

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"narou-downloader/model"
	"narou-downloader/utils"
)

// WriteBook exports every episode of a Book as a plain-text file under
// outputPath/{ncode}/, markup stripped.
func WriteBook(book *model.Book, outputPath string) error {
	outputPath = filepath.Join(outputPath, book.NCode)
	err := os.MkdirAll(outputPath, 0755)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}

	for _, episode := range book.Episodes {
		name := fmt.Sprintf("%05d-%s.txt", episode.Index, utils.CleanFileName(episode.Title))
		episodePath := filepath.Join(outputPath, name)

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(episode.HtmlBody))
		if err != nil {
			return fmt.Errorf("failed to parse episode body: %v", err)
		}
		doc.Find("img").Remove()

		err = os.WriteFile(episodePath, []byte(doc.Text()), 0644)
		if err != nil {
			return fmt.Errorf("failed to write episode file: %v", err)
		}
	}
	return nil
}
