package mdtoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmd/mdctl/internal/mdblock"
	"github.com/inkmd/mdctl/internal/mdlex"
	"github.com/inkmd/mdctl/internal/mdtoc"
)

func TestBuild_FoldsHeadingsByLevel(t *testing.T) {
	src := "# Title\n\n## A\n\n### A1\n\n## B\n"
	doc := mdblock.Parse(mdlex.Lex([]byte(src)))

	root := mdtoc.Build(doc)
	require.Len(t, root.Children, 1)
	title := root.Children[0]
	assert.Equal(t, "Title", title.Entry.Text)
	require.Len(t, title.Children, 2)
	assert.Equal(t, "A", title.Children[0].Entry.Text)
	require.Len(t, title.Children[0].Children, 1)
	assert.Equal(t, "A1", title.Children[0].Children[0].Entry.Text)
	assert.Equal(t, "B", title.Children[1].Entry.Text)
}

func TestEntries_AssignsUniqueAnchorsToDuplicateHeadings(t *testing.T) {
	src := "# Intro\n\n# Intro\n"
	doc := mdblock.Parse(mdlex.Lex([]byte(src)))

	entries := mdtoc.Entries(doc)
	require.Len(t, entries, 2)
	assert.Equal(t, "intro", entries[0].Anchor)
	assert.Equal(t, "intro-1", entries[1].Anchor)
}
