package mdhighlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmd/mdctl/internal/mdhighlight"
)

func TestChroma_HighlightGo(t *testing.T) {
	h := mdhighlight.Chroma{}
	spans := h.Highlight("func main() {}\n", "go")
	require.NotEmpty(t, spans)

	var joined string
	for _, s := range spans {
		joined += s.Text
	}
	assert.Equal(t, "func main() {}\n", joined)
}

func TestChroma_UnknownLanguageFallsBackWithoutError(t *testing.T) {
	h := mdhighlight.Chroma{}
	spans := h.Highlight("plain text body", "not-a-real-language")
	require.NotEmpty(t, spans)
}
