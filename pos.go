// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick
package bracefmt

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Position locates a byte offset within a template. Line and Column
// are 1-based. Columns count grapheme clusters, not bytes, so that
// they match what one sees in an editor.
type Position struct {
	Offset int
	Line   int
	Column int
}

// PositionOf computes the Position of offset within text. Offsets
// outside of text are clamped.
func PositionOf(text string, offset int) Position {
	if offset < 0 {
		offset = 0
	} else if offset > len(text) {
		offset = len(text)
	}
	head := text[:offset]
	bol := strings.LastIndexByte(head, '\n') + 1
	return Position{
		Offset: offset,
		Line:   1 + strings.Count(head, "\n"),
		Column: 1 + uniseg.GraphemeClusterCount(head[bol:]),
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
