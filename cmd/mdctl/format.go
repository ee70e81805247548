package mdctl

import (
	"io"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdrender/format"
)

// FormatCmd re-emits the parsed document as canonical Markdown.
type FormatCmd struct {
	RenderFlags
}

// Run executes the format command. Width is accepted for CLI-surface
// uniformity across renderers but the format renderer does not wrap text.
func (c *FormatCmd) Run() error {
	return runRender(c.RenderFlags, func(doc *mdast.Container, _ int, out io.Writer) error {
		return format.Render(out, doc)
	})
}
