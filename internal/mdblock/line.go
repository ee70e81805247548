package mdblock

import "github.com/inkmd/mdctl/internal/mdlex"

// line is one logical line: the tokens from one Break (exclusive) to the
// next Break (inclusive), or to EOF for the final line. content strips a
// trailing Break, if any, for classification purposes.
type line struct {
	tokens []mdlex.Token
}

func (ln line) content() []mdlex.Token {
	if n := len(ln.tokens); n > 0 && ln.tokens[n-1].Kind == mdlex.Break {
		return ln.tokens[:n-1]
	}

	return ln.tokens
}

func (ln line) isEmpty() bool {
	return len(ln.content()) == 0
}

// withTokens returns a line wrapping the given tokens, preserving no
// trailing Break (used when feeding stripped/derived token slices deeper
// into the recursive descent).
func withTokens(toks []mdlex.Token) line {
	return line{tokens: toks}
}

// splitLines partitions a flat token stream into logical lines.
func splitLines(tokens []mdlex.Token) []line {
	var lines []line
	start := 0
	for i, t := range tokens {
		switch t.Kind {
		case mdlex.Break:
			lines = append(lines, line{tokens: tokens[start : i+1]})
			start = i + 1
		case mdlex.EOF:
			if i > start {
				lines = append(lines, line{tokens: tokens[start:i]})
			}

			return lines
		}
	}

	return lines
}

// leadingWS returns the column width of the line's leading Space/Indent
// run and the remaining tokens.
func leadingWS(toks []mdlex.Token) (cols int, rest []mdlex.Token) {
	i := 0
	for i < len(toks) {
		switch toks[i].Kind {
		case mdlex.Space:
			cols++
			i++
		case mdlex.Indent:
			cols += 2
			i++
		default:
			return cols, toks[i:]
		}
	}

	return cols, toks[i:]
}

// stripColumns removes up to n columns of leading Space/Indent tokens.
// Tabs (Indent, worth 2 columns) are consumed whole even if that
// overshoots n by one column — tabs are not split into half-columns.
func stripColumns(toks []mdlex.Token, n int) []mdlex.Token {
	col := 0
	i := 0
	for i < len(toks) && col < n {
		switch toks[i].Kind {
		case mdlex.Space:
			col++
			i++
		case mdlex.Indent:
			col += 2
			i++
		default:
			return toks[i:]
		}
	}

	return toks[i:]
}

// countSpaces counts a leading run of one-or-more Space/Indent tokens and
// reports whether at least one was present.
func countSpaces(toks []mdlex.Token) (n int, rest []mdlex.Token, ok bool) {
	cols, rest := leadingWS(toks)

	return cols, rest, cols > 0
}
