package mdctl

import (
	"io"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdrender/html"
)

// HTMLCmd renders a document as a standalone HTML document or fragment.
type HTMLCmd struct {
	RenderFlags
	BodyOnly bool   `help:"Emit only the body fragment, without <html>/<head>" name:"body-only"`
	Title    string `help:"Document <title> (ignored with --body-only)"        name:"title"`
}

// Run executes the html command. Width is accepted for CLI-surface
// uniformity across renderers but HTML output does not wrap text.
func (c *HTMLCmd) Run() error {
	return runRender(c.RenderFlags, func(doc *mdast.Container, _ int, out io.Writer) error {
		return html.Render(out, doc, html.Options{BodyOnly: c.BodyOnly, Title: c.Title})
	})
}
