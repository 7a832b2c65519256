package template

import "strings"

const baseCSS = `body {
  line-height: 1.8;
}

h1 {
  font-size: 1.2em;
  margin: 0 0 1em 0;
}

hr {
  border: none;
  border-top: 1px solid #ccc;
  margin: 1em 0;
}

ruby {
  ruby-position: over;
}
`

const verticalCSS = `
body {
  writing-mode: vertical-rl;
  text-orientation: mixed;
}
`

// StyleCSS returns the book stylesheet. Vertical mode appends the rules
// switching the writing direction.
func StyleCSS(vertical bool) string {
	if !vertical {
		return baseCSS
	}
	return strings.Join([]string{baseCSS, verticalCSS}, "")
}
