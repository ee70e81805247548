package mdctl

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdhighlight"
	"github.com/inkmd/mdctl/internal/mdimage"
	"github.com/inkmd/mdctl/internal/mdrender/console"
	"github.com/inkmd/mdctl/internal/mdtheme"
)

// ConsoleCmd renders a document for an ANSI terminal.
type ConsoleCmd struct {
	RenderFlags
	Theme string `help:"Theme name (default, dark, monokai)" name:"theme"`
	Plain bool   `help:"Disable ANSI styling, hyperlinks, and image emission" name:"plain"`
}

// Run executes the console command.
func (c *ConsoleCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	theme := cfg.Theme
	if c.Theme != "" {
		theme = c.Theme
	}
	th, err := mdtheme.Get(theme)
	if err != nil {
		return err
	}

	writesToFile := c.Output != "" || c.Inplace
	plain := c.Plain || writesToFile || !isatty.IsTerminal(os.Stdout.Fd())

	return runRender(c.RenderFlags, func(doc *mdast.Container, width int, out io.Writer) error {
		return console.Render(out, doc, console.Options{
			Width:        effectiveWidth(cfg, width),
			Indent:       cfg.Indent,
			MaxImageCols: cfg.MaxImageCols,
			CellPxWidth:  cfg.CellPxWidth,
			CellPxHeight: cfg.CellPxHeight,
			Theme:        th,
			Highlighter:  mdhighlight.Chroma{},
			ImageDecoder: mdimage.PNGDecoder{},
			ReadImage:    readImageFile,
			Plain:        plain,
		})
	})
}

func readImageFile(src string) ([]byte, bool) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, false
	}

	return data, true
}
