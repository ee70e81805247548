package rangerender_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmd/mdctl/internal/mdblock"
	"github.com/inkmd/mdctl/internal/mdlex"
	"github.com/inkmd/mdctl/internal/mdrender/rangerender"
)

func buildSrc(t *testing.T, src string) []rangerender.Range {
	t.Helper()
	toks := mdlex.New([]byte(src)).All()
	doc := mdblock.Parse(toks)

	return rangerender.Build(doc)
}

func TestBuild_ParagraphProducesOneSpanPerTextRun(t *testing.T) {
	ranges := buildSrc(t, "hello world\n")
	require.Len(t, ranges, 1)
	assert.Equal(t, 0, ranges[0].StartCol)
	assert.Equal(t, 11, ranges[0].EndCol)
}

func TestBuild_BoldSplitsIntoStyledRuns(t *testing.T) {
	ranges := buildSrc(t, "plain **bold** plain\n")
	require.Len(t, ranges, 3)
	assert.False(t, ranges[0].Style.Bold)
	assert.True(t, ranges[1].Style.Bold)
	assert.False(t, ranges[2].Style.Bold)
}

func TestBuild_CodespanUsesFixedSpanStyle(t *testing.T) {
	ranges := buildSrc(t, "see `code` here\n")
	require.Len(t, ranges, 3)
	assert.Equal(t, 4, ranges[1].EndCol-ranges[1].StartCol)
	assert.NotEqual(t, ranges[0].Style, ranges[1].Style)
}

func TestBuild_HeadingSpanCarriesBoldStyle(t *testing.T) {
	ranges := buildSrc(t, "# Title\n")
	require.Len(t, ranges, 1)
	assert.True(t, ranges[0].Style.Bold)
}

func TestBuild_EmptyDocumentProducesNoRanges(t *testing.T) {
	ranges := buildSrc(t, "")
	assert.Empty(t, ranges)
}

func TestBuild_CodespanReportsItsSourcePosition(t *testing.T) {
	ranges := buildSrc(t, "see `code` here\n")
	require.Len(t, ranges, 3)
	assert.Equal(t, 4, ranges[1].StartCol)
}

func TestBuild_AutolinkReportsItsSourcePosition(t *testing.T) {
	ranges := buildSrc(t, "see <https://example.com> here\n")
	require.Len(t, ranges, 3)
	assert.Equal(t, 4, ranges[1].StartCol)
}
