package fs

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// escapeHeading backslash-escapes ASCII punctuation so a title written after "# "
// reads back unchanged: no inline markup and no closing "#" sequence.
func escapeHeading(title string) string {
	title = lineBreaks.Replace(title)
	var b strings.Builder
	b.Grow(len(title))
	for i := 0; i < len(title); i++ {
		if util.IsPunct(title[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(title[i])
	}
	return b.String()
}

// headingSource returns the raw text of a heading with backslash escapes removed.
// Unlike Text it keeps emphasis markers, code spans and entities as written.
func headingSource(heading *ast.Heading, source []byte) string {
	var raw bytes.Buffer
	lines := heading.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		raw.Write(seg.Value(source))
	}
	return strings.TrimSpace(string(util.UnescapePunctuations(raw.Bytes())))
}
