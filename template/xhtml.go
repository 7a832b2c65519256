package template

import (
	"fmt"
	"html"
)

// ContentXHTML wraps body markup in the chapter document shell. The body is
// trusted markup captured from the source page; the title is escaped.
func ContentXHTML(title, body, lang string) string {
	escaped := html.EscapeString(title)
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" lang="%s" xml:lang="%s">
<head>
<title>%s</title>
<link rel="stylesheet" type="text/css" href="../Styles/style.css" />
</head>
<body>
<h1>%s</h1>
%s
</body>
</html>
`, lang, lang, escaped, escaped, body)
}

// NavXHTML wraps a pre-built <nav> block in the same shell without the
// heading, for the navigation document.
func NavXHTML(title, nav, lang string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" lang="%s" xml:lang="%s">
<head>
<title>%s</title>
<link rel="stylesheet" type="text/css" href="../Styles/style.css" />
</head>
<body>
%s
</body>
</html>
`, lang, lang, html.EscapeString(title), nav)
}

func ContainerXML() string {
	return `<?xml version="1.0" encoding="utf-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`
}

// ContentOPF assembles the package document from the marshaled metadata,
// manifest and spine fragments.
func ContentOPF(uniqueID, metadata, manifest, spine string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="%s">
%s
%s
%s
</package>
`, uniqueID, metadata, manifest, spine)
}

// TocNCX assembles toc.ncx from the marshaled head and navMap fragments.
func TocNCX(title, head, navMap string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
%s
<docTitle><text>%s</text></docTitle>
%s
</ncx>
`, head, html.EscapeString(title), navMap)
}
