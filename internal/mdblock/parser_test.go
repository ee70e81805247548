package mdblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdblock"
	"github.com/inkmd/mdctl/internal/mdlex"
)

func parseDoc(t *testing.T, src string) *mdast.Container {
	t.Helper()
	doc := mdblock.Parse(mdlex.Lex([]byte(src)))
	require.False(t, doc.Open(), "document must be closed once EOF is reached")

	return doc
}

func textOf(t *testing.T, leaf *mdast.Leaf) string {
	t.Helper()
	var out string
	for _, in := range leaf.Inlines() {
		if txt, ok := in.(mdast.Text); ok {
			out += txt.Text
		}
	}

	return out
}

func TestParse_SingleParagraph(t *testing.T) {
	doc := parseDoc(t, "hello world\n")
	require.Len(t, doc.Children(), 1)
	leaf := doc.Children()[0].(*mdast.Leaf)
	assert.Equal(t, mdast.KParagraph, leaf.Kind())
	assert.Equal(t, "hello world", textOf(t, leaf))
}

func TestParse_ParagraphJoinsConsecutiveLines(t *testing.T) {
	doc := parseDoc(t, "line one\nline two\n")
	require.Len(t, doc.Children(), 1)
	leaf := doc.Children()[0].(*mdast.Leaf)
	assert.Equal(t, "line one line two", textOf(t, leaf))
}

func TestParse_BlankLineEndsParagraph(t *testing.T) {
	doc := parseDoc(t, "first\n\nsecond\n")
	require.Len(t, doc.Children(), 3)
	assert.Equal(t, mdast.KParagraph, doc.Children()[0].(*mdast.Leaf).Kind())
	assert.Equal(t, mdast.KBreak, doc.Children()[1].(*mdast.Leaf).Kind())
	assert.Equal(t, mdast.KParagraph, doc.Children()[2].(*mdast.Leaf).Kind())
}

func TestParse_Heading(t *testing.T) {
	doc := parseDoc(t, "## Title here\n")
	require.Len(t, doc.Children(), 1)
	leaf := doc.Children()[0].(*mdast.Leaf)
	assert.Equal(t, mdast.KHeading, leaf.Kind())
	assert.Equal(t, 2, leaf.Level())
	assert.Equal(t, "Title here", leaf.Text())
	assert.Equal(t, "Title here", textOf(t, leaf))
}

func TestParse_HeadingRequiresSpaceAfterHashes(t *testing.T) {
	doc := parseDoc(t, "#no-space\n")
	require.Len(t, doc.Children(), 1)
	leaf := doc.Children()[0].(*mdast.Leaf)
	assert.Equal(t, mdast.KParagraph, leaf.Kind())
}

func TestParse_BlockQuote(t *testing.T) {
	doc := parseDoc(t, "> quoted text\n")
	require.Len(t, doc.Children(), 1)
	quote := doc.Children()[0].(*mdast.Container)
	assert.Equal(t, mdast.KQuote, quote.Kind())
	require.Len(t, quote.Children(), 1)
	para := quote.Children()[0].(*mdast.Leaf)
	assert.Equal(t, "quoted text", textOf(t, para))
}

func TestParse_BlockQuoteLazyContinuation(t *testing.T) {
	doc := parseDoc(t, "> line one\nline two\n")
	quote := doc.Children()[0].(*mdast.Container)
	para := quote.Children()[0].(*mdast.Leaf)
	assert.Equal(t, "line one line two", textOf(t, para))
}

func TestParse_AlertFromQuoteTag(t *testing.T) {
	doc := parseDoc(t, "> [!WARNING]\n> be careful\n")
	require.Len(t, doc.Children(), 1)
	leaf := doc.Children()[0].(*mdast.Leaf)
	assert.Equal(t, mdast.KAlert, leaf.Kind())
	assert.Equal(t, mdast.SeverityWarning, leaf.Severity())
	assert.Equal(t, "be careful", textOf(t, leaf))
}

func TestParse_UnorderedList(t *testing.T) {
	doc := parseDoc(t, "- one\n- two\n")
	require.Len(t, doc.Children(), 1)
	list := doc.Children()[0].(*mdast.Container)
	assert.Equal(t, mdast.KList, list.Kind())
	assert.Equal(t, mdast.Unordered, list.Variant())
	require.Len(t, list.Children(), 2)

	item0 := list.Children()[0].(*mdast.Container)
	para0 := item0.Children()[0].(*mdast.Leaf)
	assert.Equal(t, "one", textOf(t, para0))
}

func TestParse_OrderedListMultiDigitMarkerWidth(t *testing.T) {
	doc := parseDoc(t, "10. ten\n    still ten\n11. eleven\n")
	list := doc.Children()[0].(*mdast.Container)
	require.Len(t, list.Children(), 2)
	assert.Equal(t, mdast.Ordered, list.Variant())
	assert.Equal(t, 10, list.Start())

	item0 := list.Children()[0].(*mdast.Container)
	para0 := item0.Children()[0].(*mdast.Leaf)
	assert.Equal(t, "ten still ten", textOf(t, para0))
}

func TestParse_TaskListCheckbox(t *testing.T) {
	doc := parseDoc(t, "- [x] done\n- [ ] todo\n")
	list := doc.Children()[0].(*mdast.Container)
	assert.Equal(t, mdast.Task, list.Variant())

	item0 := list.Children()[0].(*mdast.Container)
	item1 := list.Children()[1].(*mdast.Container)
	assert.True(t, item0.Checked())
	assert.False(t, item1.Checked())
}

func TestParse_ListVariantChangeClosesListAndOpensNew(t *testing.T) {
	doc := parseDoc(t, "- bullet\n1. number\n")
	require.Len(t, doc.Children(), 2)
	first := doc.Children()[0].(*mdast.Container)
	second := doc.Children()[1].(*mdast.Container)
	assert.Equal(t, mdast.Unordered, first.Variant())
	assert.Equal(t, mdast.Ordered, second.Variant())
}

func TestParse_ListBlankLineMarksLoose(t *testing.T) {
	doc := parseDoc(t, "- one\n\n- two\n")
	list := doc.Children()[0].(*mdast.Container)
	assert.Equal(t, mdast.Loose, list.Spacing())
	require.Len(t, list.Children(), 2)
}

func TestParse_CodeFence(t *testing.T) {
	doc := parseDoc(t, "```go\nfmt.Println(1)\n```\n")
	require.Len(t, doc.Children(), 1)
	leaf := doc.Children()[0].(*mdast.Leaf)
	assert.Equal(t, mdast.KCode, leaf.Kind())
	assert.Equal(t, "go", leaf.Info())
	assert.Equal(t, "fmt.Println(1)\n", string(leaf.Decoded()))
}

func TestParse_CodeFenceContentIsNotInlineParsed(t *testing.T) {
	doc := parseDoc(t, "```\n*not emphasis*\n```\n")
	leaf := doc.Children()[0].(*mdast.Leaf)
	assert.Empty(t, leaf.Inlines())
	assert.Contains(t, string(leaf.Decoded()), "*not emphasis*")
}

func TestParse_CodeFenceDirectiveKeyword(t *testing.T) {
	doc := parseDoc(t, "```toc\n```\n")
	leaf := doc.Children()[0].(*mdast.Leaf)
	assert.Equal(t, "toc", leaf.Directive())
}

func TestParse_TableConversion(t *testing.T) {
	doc := parseDoc(t, "a | b\n---|---\n1 | 2\n")
	require.Len(t, doc.Children(), 1)
	table := doc.Children()[0].(*mdast.Container)
	assert.Equal(t, mdast.KTable, table.Kind())
	assert.Equal(t, 2, table.NumCols())
	require.Len(t, table.Rows(), 1)
}

func TestParse_PipeWithoutSeparatorStaysParagraph(t *testing.T) {
	doc := parseDoc(t, "a | b\nnot a separator\n")
	leaf := doc.Children()[0].(*mdast.Leaf)
	assert.Equal(t, mdast.KParagraph, leaf.Kind())
}

func TestParse_EmptyInputProducesNoChildren(t *testing.T) {
	doc := parseDoc(t, "")
	assert.Empty(t, doc.Children())
}
