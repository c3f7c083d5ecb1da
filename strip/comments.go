package strip

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	docComment   = regexp.MustCompile(`(?s)/\*\*.*?\*/`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`(?m)//.*$`)
	// the same whitespace set as unicode.IsSpace, used for trimming below
	blankLines = regexp.MustCompile(`\n[\s\v\p{Z}\x85]*\n[\s\v\p{Z}\x85]*\n+`)
)

// RemoveComments removes /** */, /* */ and // comments from content, keeps at
// most one consecutive blank line and trims trailing whitespace from every
// line.
//
// Matching is purely textual. Comment markers inside string or character
// literals are removed like any other comment.
func RemoveComments(content string) string {
	content = docComment.ReplaceAllLiteralString(content, "")
	content = blockComment.ReplaceAllLiteralString(content, "")
	content = lineComment.ReplaceAllLiteralString(content, "")

	content = blankLines.ReplaceAllLiteralString(content, "\n\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.Join(lines, "\n")
}
