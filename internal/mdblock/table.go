package mdblock

import (
	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdinline"
	"github.com/inkmd/mdctl/internal/mdlex"
)

// splitCells splits a row's content tokens on unescaped Pipe tokens,
// dropping a leading/trailing empty cell produced by a line that opens or
// closes with "|", and trims the Space run bordering each cell.
func splitCells(toks []mdlex.Token) [][]mdlex.Token {
	var cells [][]mdlex.Token
	cur := make([]mdlex.Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind == mdlex.Backslash && i+1 < len(toks) && toks[i+1].Kind == mdlex.Pipe {
			cur = append(cur, toks[i+1])
			i++

			continue
		}
		if t.Kind == mdlex.Pipe {
			cells = append(cells, trimCellWS(cur))
			cur = cur[:0]

			continue
		}
		cur = append(cur, t)
	}
	cells = append(cells, trimCellWS(cur))

	if len(cells) > 0 && len(cells[0]) == 0 {
		cells = cells[1:]
	}
	if len(cells) > 0 && len(cells[len(cells)-1]) == 0 {
		cells = cells[:len(cells)-1]
	}

	return cells
}

func trimCellWS(toks []mdlex.Token) []mdlex.Token {
	start := 0
	for start < len(toks) && toks[start].Kind == mdlex.Space {
		start++
	}
	end := len(toks)
	for end > start && toks[end-1].Kind == mdlex.Space {
		end--
	}

	return toks[start:end]
}

// separatorMatch reports whether toks is a table separator row (one or
// more pipe-delimited cells each matching ":?-+:?") and returns the
// per-column alignment.
func separatorMatch(toks []mdlex.Token) ([]mdast.Alignment, bool) {
	_, content := leadingWS(toks)
	if n := len(content); n > 0 && content[n-1].Kind == mdlex.Break {
		content = content[:n-1]
	}
	if len(content) == 0 {
		return nil, false
	}
	cells := splitCells(content)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]mdast.Alignment, len(cells))
	for i, cell := range cells {
		a, ok := cellAlignment(cell)
		if !ok {
			return nil, false
		}
		aligns[i] = a
	}

	return aligns, true
}

func cellAlignment(cell []mdlex.Token) (mdast.Alignment, bool) {
	if len(cell) == 0 {
		return mdast.AlignNone, false
	}
	left := cell[0].Kind == mdlex.Colon
	right := cell[len(cell)-1].Kind == mdlex.Colon
	start := 0
	if left {
		start = 1
	}
	end := len(cell)
	if right {
		end--
	}
	if end <= start {
		return mdast.AlignNone, false
	}
	for _, t := range cell[start:end] {
		if t.Kind != mdlex.Dash {
			return mdast.AlignNone, false
		}
	}
	switch {
	case left && right:
		return mdast.AlignCenter, true
	case left:
		return mdast.AlignLeft, true
	case right:
		return mdast.AlignRight, true
	default:
		return mdast.AlignNone, true
	}
}

// parseRow inline-parses each cell of a table row, padding/truncating to
// ncol columns to keep every row's width fixed by the header.
func parseRow(toks []mdlex.Token, ncol int) mdast.TableRow {
	cells := splitCells(toks)
	row := make(mdast.TableRow, ncol)
	for i := 0; i < ncol; i++ {
		if i < len(cells) {
			row[i] = mdast.TableCell(mdinline.Parse(cells[i]))
		} else {
			row[i] = mdast.TableCell(nil)
		}
	}

	return row
}

// rowHasPipe reports whether a content-token line contains an unescaped
// pipe, the trigger for attempting a table re-interpretation.
func rowHasPipe(toks []mdlex.Token) bool {
	for i, t := range toks {
		if t.Kind == mdlex.Pipe {
			if i > 0 && toks[i-1].Kind == mdlex.Backslash {
				continue
			}

			return true
		}
	}

	return false
}
