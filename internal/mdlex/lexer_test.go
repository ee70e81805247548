package mdlex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmd/mdctl/internal/mdlex"
)

func kinds(toks []mdlex.Token) []mdlex.Kind {
	out := make([]mdlex.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}

	return out
}

func TestLexer_EmptyInput(t *testing.T) {
	toks := mdlex.New(nil).All()
	require.Len(t, toks, 1)
	assert.Equal(t, mdlex.EOF, toks[0].Kind)
}

func TestLexer_SingleCharacterDelimiters(t *testing.T) {
	tests := []struct {
		input    string
		expected mdlex.Kind
	}{
		{"#", mdlex.Hash},
		{"*", mdlex.Asterisk},
		{"~", mdlex.Tilde},
		{"-", mdlex.Dash},
		{"+", mdlex.Plus},
		{".", mdlex.Dot},
		{":", mdlex.Colon},
		{"|", mdlex.Pipe},
		{"[", mdlex.BracketOpen},
		{"]", mdlex.BracketClose},
		{"(", mdlex.ParenOpen},
		{")", mdlex.ParenClose},
		{">", mdlex.GreaterThan},
		{"!", mdlex.Bang},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			toks := mdlex.New([]byte(tt.input)).All()
			require.Len(t, toks, 2)
			assert.Equal(t, tt.expected, toks[0].Kind)
			assert.Equal(t, mdlex.EOF, toks[1].Kind)
		})
	}
}

func TestLexer_EmphasisLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected mdlex.Kind
	}{
		{"**", mdlex.Bold},
		{"__", mdlex.Bold},
		{"***", mdlex.Embold},
		{"___", mdlex.Embold},
		{"**_", mdlex.Embold},
		{"_**", mdlex.Embold},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := mdlex.New([]byte(tt.input)).All()
			require.GreaterOrEqual(t, len(toks), 1)
			assert.Equal(t, tt.expected, toks[0].Kind)
		})
	}
}

func TestLexer_BacktickRun(t *testing.T) {
	toks := mdlex.New([]byte("```go")).All()
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, mdlex.Directive, toks[0].Kind)
	assert.Equal(t, "```", string(toks[0].Text))
}

func TestLexer_SingleBacktickIsNotDirective(t *testing.T) {
	toks := mdlex.New([]byte("`code`")).All()
	assert.Equal(t, mdlex.Backtick, toks[0].Kind)
}

func TestLexer_WordRunsAbsorbEmbeddedDigits(t *testing.T) {
	toks := mdlex.New([]byte("hello42 world")).All()
	assert.Equal(t, []mdlex.Kind{mdlex.Word, mdlex.Space, mdlex.Word, mdlex.EOF}, kinds(toks))
}

func TestLexer_LeadingDigitsAreDigitKind(t *testing.T) {
	toks := mdlex.New([]byte("42. item")).All()
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, mdlex.Digit, toks[0].Kind)
	assert.Equal(t, mdlex.Dot, toks[1].Kind)
}

func TestLexer_TabIsIndent(t *testing.T) {
	toks := mdlex.New([]byte("\tfoo")).All()
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, mdlex.Indent, toks[0].Kind)
}

func TestLexer_CRLFNormalizesToSingleBreak(t *testing.T) {
	toks := mdlex.New([]byte("a\r\nb")).All()
	assert.Equal(t, []mdlex.Kind{mdlex.Word, mdlex.Break, mdlex.Word, mdlex.EOF}, kinds(toks))
}

func TestLexer_InvalidUTF8FallsBackToUnknownBytes(t *testing.T) {
	toks := mdlex.New([]byte{0xff, 0xfe}).All()
	require.Len(t, toks, 3)
	assert.Equal(t, mdlex.Unknown, toks[0].Kind)
	assert.Equal(t, mdlex.Unknown, toks[1].Kind)
}

func TestLexer_PositionsCountCodePointsNotBytes(t *testing.T) {
	toks := mdlex.New([]byte("é world")).All()
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, 0, toks[0].Pos.Col)
	assert.Equal(t, 1, toks[1].Pos.Col)
}
