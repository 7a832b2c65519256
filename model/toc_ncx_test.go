package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNavMapMarshal_Flat(t *testing.T) {
	navMap := &NavMap{
		Points: []*NavPoint{
			{
				Id:        "chapter-00001",
				PlayOrder: 1,
				Label:     "1. First",
				Content:   NavPointContent{Src: "Text/chapter-00001.xhtml"},
			},
			{
				Id:        "chapter-00002",
				PlayOrder: 2,
				Label:     "2. Second",
				Content:   NavPointContent{Src: "Text/chapter-00002.xhtml"},
			},
		},
	}

	xml, err := navMap.Marshal()
	require.NoError(t, err)
	require.Equal(t,
		`<navMap>`+
			`<navPoint id="chapter-00001" playOrder="1"><navLabel><text>1. First</text></navLabel><content src="Text/chapter-00001.xhtml"></content></navPoint>`+
			`<navPoint id="chapter-00002" playOrder="2"><navLabel><text>2. Second</text></navLabel><content src="Text/chapter-00002.xhtml"></content></navPoint>`+
			`</navMap>`,
		xml)
}

func TestTocNCXHeadMarshal(t *testing.T) {
	head := &TocNCXHead{
		Meta: []TocNCXHeadMeta{
			{Name: "dtb:uid", Content: "narou:n1234ab"},
		},
	}

	xml, err := head.Marshal()
	require.NoError(t, err)
	require.Equal(t, `<head><meta content="narou:n1234ab" name="dtb:uid"></meta></head>`, xml)
}
