package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/spf13/cobra"
	"narou-downloader/epub"
	"narou-downloader/narou"
	"narou-downloader/text"
)

type downloadArgs struct {
	outputPath  string
	delay       float64
	timeout     int
	fromEp      int
	toEp        int
	retry       int
	userAgent   string
	vertical    bool
	noPreface   bool
	noAfterword bool
	textExport  bool
}

var dlArgs downloadArgs

var downloadCmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Download a novel by top page URL or ncode",
	Long:  "Download a novel by top page URL or ncode and build an EPUB",
	Args:  cobra.ExactArgs(1),
	RunE:  runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&dlArgs.outputPath, "out", "o", "out", "output directory")
	downloadCmd.Flags().Float64Var(&dlArgs.delay, "delay", 1.0, "delay between requests in seconds")
	downloadCmd.Flags().IntVar(&dlArgs.timeout, "timeout", 20, "HTTP timeout in seconds")
	downloadCmd.Flags().IntVar(&dlArgs.fromEp, "from-ep", 0, "start episode number (inclusive)")
	downloadCmd.Flags().IntVar(&dlArgs.toEp, "to-ep", 0, "end episode number (inclusive)")
	downloadCmd.Flags().IntVar(&dlArgs.retry, "retry", 3, "retry count for fetch errors")
	downloadCmd.Flags().StringVar(&dlArgs.userAgent, "user-agent", narou.DefaultUserAgent, "User-Agent string")
	downloadCmd.Flags().BoolVar(&dlArgs.vertical, "vertical", false, "enable vertical writing CSS")
	downloadCmd.Flags().BoolVar(&dlArgs.noPreface, "no-preface", false, "exclude preface")
	downloadCmd.Flags().BoolVar(&dlArgs.noAfterword, "no-afterword", false, "exclude afterword")
	downloadCmd.Flags().BoolVar(&dlArgs.textExport, "text", false, "also export plain-text chapters")
	RootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stderr)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	go pw.Render()

	tracker := &progress.Tracker{Message: "Fetching episodes"}
	pw.AppendTracker(tracker)

	opts := narou.Options{
		Url:              args[0],
		Delay:            time.Duration(dlArgs.delay * float64(time.Second)),
		Timeout:          time.Duration(dlArgs.timeout) * time.Second,
		Retries:          dlArgs.retry,
		UserAgent:        dlArgs.userAgent,
		FromEp:           dlArgs.fromEp,
		ToEp:             dlArgs.toEp,
		IncludePreface:   !dlArgs.noPreface,
		IncludeAfterword: !dlArgs.noAfterword,
		Vertical:         dlArgs.vertical,
		Progress: func(index int, url string, done, total int) {
			tracker.UpdateTotal(int64(total))
			tracker.Increment(1)
			pw.Log("fetched: %d %s", index, url)
		},
	}

	book, err := narou.FetchBook(opts)
	if err != nil {
		tracker.MarkAsErrored()
		pw.Stop()
		return fmt.Errorf("failed to download novel: %v", err)
	}
	tracker.MarkAsDone()
	pw.Stop()

	outputFile := filepath.Join(dlArgs.outputPath, book.NCode+".epub")
	err = epub.WriteBook(book, outputFile)
	if err != nil {
		return fmt.Errorf("failed to write epub: %v", err)
	}

	if dlArgs.textExport {
		err = text.WriteBook(book, dlArgs.outputPath)
		if err != nil {
			return fmt.Errorf("failed to export text: %v", err)
		}
	}

	if book.TotalEpisodes > 0 {
		log.Printf("episode count (API): %d", book.TotalEpisodes)
	}
	log.Printf("written: %s", outputFile)

	return nil
}
