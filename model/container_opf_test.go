package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDublinCoreMetadataMarshal(t *testing.T) {
	dc := &DublinCoreMetadata{
		XmlnsDC:  "http://purl.org/dc/elements/1.1/",
		XmlnsOPF: "http://www.idpf.org/2007/opf",
		Titles: []DCTitle{
			{Value: "Example Work"},
		},
		Identifiers: []DCIdentifier{
			{Value: "narou:n1234ab", ID: "book-id"},
		},
		Languages: []DCLanguage{
			{Value: "ja"},
		},
		Metas: []DublinCoreMeta{
			{Property: "dcterms:modified", Value: "2026-01-02T03:04:05Z"},
		},
	}

	xml, err := dc.Marshal()
	require.NoError(t, err)
	require.Contains(t, xml, `<dc:title>Example Work</dc:title>`)
	require.Contains(t, xml, `<dc:identifier id="book-id">narou:n1234ab</dc:identifier>`)
	require.Contains(t, xml, `<dc:language>ja</dc:language>`)
	// Metas carry property/value pairs only.
	require.Contains(t, xml, `<meta property="dcterms:modified">2026-01-02T03:04:05Z</meta>`)
}
