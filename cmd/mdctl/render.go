// Package mdctl implements the command-line dispatcher for the console,
// html, format, and range renderers: a kong subcommand per renderer,
// sharing one set of file/stdin/output/timing flags. Grounded on the
// teacher's cmd package layout (one file per command, a shared Run()
// error method, a CLI struct embedding each command as a kong subcommand)
// generalized from Spectr's spec/change verbs to this toolchain's render
// verbs.
package mdctl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdblock"
	"github.com/inkmd/mdctl/internal/mdconfig"
	"github.com/inkmd/mdctl/internal/mdlex"
	"github.com/inkmd/mdctl/internal/mdutil"
)

// RenderFlags is the flag set every render subcommand accepts, per the
// CLI surface: {file, --stdin, --width N, --output PATH, --inplace,
// --timeit, --verbose}. Files accepts zero or more paths so a single
// invocation can batch-process a directory's worth of documents.
type RenderFlags struct {
	Files   []string `arg:""                                         help:"Input Markdown file(s); omit or pass --stdin to read from standard input" optional:""` //nolint:lll
	Stdin   bool     `help:"Read the document from standard input, ignoring Files" name:"stdin"`
	Width   int      `help:"Wrap width in columns (0 keeps the configured default)" name:"width"`
	Output  string   `help:"Write output to PATH instead of standard output"        name:"output" type:"path"`
	Inplace bool     `help:"Rewrite each input file in place"                       name:"inplace"`
	Timeit  bool     `help:"Print elapsed render time to standard error"            name:"timeit"`
	Verbose bool     `help:"Print per-file diagnostics to standard error"           name:"verbose"`
}

// parseDoc lexes and block-parses src, returning the ready-to-render tree.
func parseDoc(src []byte) *mdast.Container {
	toks := mdlex.New(src).All()

	return mdblock.Parse(toks)
}

// renderFunc renders a parsed document to w using width (0 means "use the
// renderer's own default").
type renderFunc func(doc *mdast.Container, width int, out io.Writer) error

// runRender is the shared driver for every render subcommand: resolves
// stdin vs. file-batch mode, applies --output/--inplace, aggregates
// per-file failures with go-multierror so one bad file in a batch doesn't
// hide the rest, and honors --timeit/--verbose.
func runRender(flags RenderFlags, render renderFunc) error {
	if flags.Inplace && flags.Output != "" {
		return errors.New("--inplace and --output are mutually exclusive")
	}
	if flags.Inplace && (flags.Stdin || len(flags.Files) == 0) {
		return errors.New("--inplace requires at least one input file")
	}

	sw := mdutil.NewStopwatch()
	fs := afero.NewOsFs()

	var err error
	switch {
	case flags.Stdin || len(flags.Files) == 0:
		err = renderStdin(flags, render)
	default:
		err = renderFiles(fs, flags, render)
	}

	if flags.Timeit {
		fmt.Fprintf(os.Stderr, "mdctl: rendered in %s\n", sw.Elapsed())
	}

	return err
}

func renderStdin(flags RenderFlags, render renderFunc) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	out, err := renderOne(data, flags.Width, render)
	if err != nil {
		return err
	}

	return writeResult(afero.NewOsFs(), flags.Output, out)
}

func renderFiles(fs afero.Fs, flags RenderFlags, render renderFunc) error {
	if len(flags.Files) > 1 && flags.Output != "" {
		return errors.New("--output cannot be used with more than one input file")
	}

	var result *multierror.Error
	for _, path := range flags.Files {
		if err := renderFileTo(fs, path, flags, render); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if flags.Verbose {
			fmt.Fprintf(os.Stderr, "mdctl: rendered %s\n", path)
		}
	}

	return result.ErrorOrNil()
}

func renderFileTo(fs afero.Fs, path string, flags RenderFlags, render renderFunc) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	out, err := renderOne(data, flags.Width, render)
	if err != nil {
		return err
	}

	dest := flags.Output
	if flags.Inplace {
		dest = path
	}

	return writeResult(fs, dest, out)
}

func renderOne(data []byte, width int, render renderFunc) ([]byte, error) {
	doc := parseDoc(data)

	var buf bytes.Buffer
	if err := render(doc, width, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}

// writeResult writes out to dest, or to standard output if dest is empty.
func writeResult(fs afero.Fs, dest string, out []byte) error {
	if dest == "" {
		_, err := os.Stdout.Write(out)

		return err
	}

	return afero.WriteFile(fs, dest, out, 0o644)
}

// effectiveWidth applies a --width override on top of a loaded config,
// 0 meaning "no override".
func effectiveWidth(cfg mdconfig.Options, width int) int {
	if width > 0 {
		return width
	}

	return cfg.Width
}

func loadConfig() (mdconfig.Options, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return mdconfig.Options{}, fmt.Errorf("getwd: %w", err)
	}

	return mdconfig.Load(afero.NewOsFs(), cwd)
}
