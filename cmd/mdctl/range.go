package mdctl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdrender/rangerender"
)

// RangeCmd computes styled (line, start_col, end_col) spans for an
// external consumer (an editor host or scripting integration) instead of
// rendering text. Output is one JSON object per span, newline-delimited.
type RangeCmd struct {
	RenderFlags
}

type rangeRecord struct {
	Line     int  `json:"line"`
	StartCol int  `json:"start_col"`
	EndCol   int  `json:"end_col"`
	Bold     bool `json:"bold"`
	Italic   bool `json:"italic"`
	FG       int  `json:"fg"`
	BG       int  `json:"bg"`
}

// Run executes the range command. Width is accepted for CLI-surface
// uniformity across renderers but span computation does not wrap text.
func (c *RangeCmd) Run() error {
	return runRender(c.RenderFlags, func(doc *mdast.Container, _ int, out io.Writer) error {
		enc := json.NewEncoder(out)
		for _, rg := range rangerender.Build(doc) {
			rec := rangeRecord{
				Line:     rg.Line,
				StartCol: rg.StartCol,
				EndCol:   rg.EndCol,
				Bold:     rg.Style.Bold,
				Italic:   rg.Style.Italic,
				FG:       int(rg.Style.FG),
				BG:       int(rg.Style.BG),
			}
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("encode range: %w", err)
			}
		}

		return nil
	})
}
