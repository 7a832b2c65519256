package epub

import (
	"archive/zip"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"narou-downloader/model"
	"narou-downloader/template"
)

// WriteBook serializes a Book to an EPUB3 container at outputPath, creating
// parent directories as needed. Chapters enter both the spine and the table
// of contents in input order, after the navigation document.
func WriteBook(book *model.Book, outputPath string) error {
	err := os.MkdirAll(filepath.Dir(outputPath), 0755)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}

	zipFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create epub file: %v", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	defer zipWriter.Close()

	// The mimetype entry must come first and be stored uncompressed.
	err = addStringToZip(zipWriter, "mimetype", "application/epub+zip", zip.Store)
	if err != nil {
		return err
	}

	err = addStringToZip(zipWriter, "META-INF/container.xml", template.ContainerXML(), zip.Deflate)
	if err != nil {
		return err
	}

	contentOPF, err := renderContentOPF(book)
	if err != nil {
		return fmt.Errorf("failed to render content opf: %v", err)
	}
	err = addStringToZip(zipWriter, "OEBPS/content.opf", contentOPF, zip.Deflate)
	if err != nil {
		return err
	}

	tocNCX, err := renderTocNCX(book)
	if err != nil {
		return fmt.Errorf("failed to render toc ncx: %v", err)
	}
	err = addStringToZip(zipWriter, "OEBPS/toc.ncx", tocNCX, zip.Deflate)
	if err != nil {
		return err
	}

	err = addStringToZip(zipWriter, "OEBPS/Text/contents.xhtml", renderNav(book), zip.Deflate)
	if err != nil {
		return err
	}

	err = addStringToZip(zipWriter, "OEBPS/Styles/style.css", book.StyleCSS, zip.Deflate)
	if err != nil {
		return err
	}

	for _, episode := range book.Episodes {
		heading := fmt.Sprintf("%d. %s", episode.Index, episode.Title)
		doc := template.ContentXHTML(heading, episode.HtmlBody, book.Language)
		err = addStringToZip(zipWriter, "OEBPS/"+chapterHref(episode), doc, zip.Deflate)
		if err != nil {
			return err
		}
	}

	return nil
}

func chapterHref(episode *model.Episode) string {
	return fmt.Sprintf("Text/chapter-%05d.xhtml", episode.Index)
}

func chapterID(episode *model.Episode) string {
	return fmt.Sprintf("chapter-%05d.xhtml", episode.Index)
}

func renderContentOPF(book *model.Book) (string, error) {
	creators := make([]model.DCCreator, 0)
	if book.Author != "" {
		creators = append(creators, model.DCCreator{
			Value: book.Author,
			Role:  "aut",
		})
	}
	dc := &model.DublinCoreMetadata{
		XmlnsDC:  "http://purl.org/dc/elements/1.1/",
		XmlnsOPF: "http://www.idpf.org/2007/opf",
		Titles: []model.DCTitle{
			{
				Value: book.Title,
			},
		},
		Identifiers: []model.DCIdentifier{
			{
				Value: book.Identifier,
				ID:    "book-id",
			},
			{
				Value: fmt.Sprintf("urn:uuid:%s", uuid.New().String()),
			},
		},
		Languages: []model.DCLanguage{
			{
				Value: book.Language,
			},
		},
		Creators: creators,
		Metas: []model.DublinCoreMeta{
			{
				Property: "dcterms:modified",
				Value:    time.Now().UTC().Format("2006-01-02T15:04:05Z"),
			},
		},
	}

	manifest := &model.Manifest{
		Items: make([]model.ManifestItem, 0),
	}
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:    "ncx",
		Link:  "toc.ncx",
		Media: "application/x-dtbncx+xml",
	})
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:         "contents.xhtml",
		Link:       "Text/contents.xhtml",
		Media:      "application/xhtml+xml",
		Properties: "nav",
	})
	for _, episode := range book.Episodes {
		manifest.Items = append(manifest.Items, model.ManifestItem{
			ID:    chapterID(episode),
			Link:  chapterHref(episode),
			Media: "application/xhtml+xml",
		})
	}
	manifest.Items = append(manifest.Items, model.ManifestItem{
		ID:    "style",
		Link:  "Styles/style.css",
		Media: "text/css",
	})

	// Reading order: navigation first, then every chapter as manifested.
	spine := &model.Spine{
		Toc:   "ncx",
		Items: make([]model.SpineItem, 0),
	}
	for _, item := range manifest.Items {
		if filepath.Ext(item.Link) == ".xhtml" {
			spine.Items = append(spine.Items, model.SpineItem{
				IDref: item.ID,
			})
		}
	}

	dcXML, err := dc.Marshal()
	if err != nil {
		return "", err
	}
	manifestXML, err := manifest.Marshal()
	if err != nil {
		return "", err
	}
	spineXML, err := spine.Marshal()
	if err != nil {
		return "", err
	}
	return template.ContentOPF("book-id", dcXML, manifestXML, spineXML), nil
}

func renderTocNCX(book *model.Book) (string, error) {
	navMap := &model.NavMap{Points: make([]*model.NavPoint, 0)}
	navMap.Points = append(navMap.Points, &model.NavPoint{
		Id:        "contents",
		PlayOrder: 1,
		Label:     "Contents",
		Content:   model.NavPointContent{Src: "Text/contents.xhtml"},
	})
	for _, episode := range book.Episodes {
		navMap.Points = append(navMap.Points, &model.NavPoint{
			Id:        fmt.Sprintf("chapter-%05d", episode.Index),
			PlayOrder: len(navMap.Points) + 1,
			Label:     fmt.Sprintf("%d. %s", episode.Index, episode.Title),
			Content:   model.NavPointContent{Src: chapterHref(episode)},
		})
	}

	head := &model.TocNCXHead{
		Meta: []model.TocNCXHeadMeta{
			{Name: "dtb:uid", Content: book.Identifier},
		},
	}

	headXML, err := head.Marshal()
	if err != nil {
		return "", err
	}
	navMapXML, err := navMap.Marshal()
	if err != nil {
		return "", err
	}
	return template.TocNCX(book.Title, headXML, navMapXML), nil
}

func renderNav(book *model.Book) string {
	nav := strings.Builder{}
	nav.WriteString(`<nav epub:type="toc" id="toc">`)
	nav.WriteString(`<ol>`)
	for _, episode := range book.Episodes {
		label := fmt.Sprintf("%d. %s", episode.Index, episode.Title)
		nav.WriteString(fmt.Sprintf(`<li><a href="%s">%s</a></li>`,
			strings.TrimPrefix(chapterHref(episode), "Text/"), html.EscapeString(label)))
	}
	nav.WriteString(`</ol>`)
	nav.WriteString(`</nav>`)
	return template.NavXHTML(book.Title, nav.String(), book.Language)
}

// PackDir zips an unpacked EPUB directory into dirPath.epub with the stored
// mimetype entry first.
func PackDir(dirPath string) error {
	savePath := strings.TrimSuffix(dirPath, string(filepath.Separator)) + ".epub"
	zipFile, err := os.Create(savePath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	defer zipWriter.Close()

	err = addStringToZip(zipWriter, "mimetype", "application/epub+zip", zip.Store)
	if err != nil {
		return err
	}

	return addDirContentToZip(zipWriter, dirPath, zip.Deflate)
}

func addStringToZip(zipWriter *zip.Writer, relPath, content string, method uint16) error {
	header := &zip.FileHeader{
		Name:   relPath,
		Method: method,
	}
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = writer.Write([]byte(content))
	return err
}

func addDirContentToZip(zipWriter *zip.Writer, dirPath string, method uint16) error {
	return filepath.Walk(dirPath, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Base(filePath) == "mimetype" {
			return nil
		}

		relPath, err := filepath.Rel(dirPath, filePath)
		if err != nil {
			return err
		}

		file, err := os.Open(filePath)
		if err != nil {
			return err
		}
		defer file.Close()

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(relPath)
		header.Method = method

		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return err
		}

		_, err = io.Copy(writer, file)
		return err
	})
}
