package mdtheme

import (
	"fmt"
	"sort"
)

// BoxStyle selects the box-drawing glyph set used by the console renderer
// for table borders.
type BoxStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Cross       rune
	TeeDown     rune
	TeeUp       rune
	TeeRight    rune
	TeeLeft     rune
}

// Theme bundles the palette assignment for semantic roles (headings,
// alerts, links, code) plus the active box-drawing style. Three named
// themes are registered: default, dark, and monokai.
type Theme struct {
	Name string

	Heading   Color
	Quote     Color
	Link      Color
	Codespan  Color
	CodeBG    Color
	Success   Color
	Error     Color
	Warning   Color
	Muted     Color
	Border    Color
	NoteColor Color
	TipColor  Color
	Box       BoxStyle
}

var roundedBox = BoxStyle{
	Horizontal: '─', Vertical: '│',
	TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	Cross: '┼', TeeDown: '┬', TeeUp: '┴', TeeRight: '├', TeeLeft: '┤',
}

var heavyBox = BoxStyle{
	Horizontal: '━', Vertical: '┃',
	TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
	Cross: '╋', TeeDown: '┳', TeeUp: '┻', TeeRight: '┣', TeeLeft: '┫',
}

var defaultTheme = &Theme{
	Name: "default",
	Heading: Magenta, Quote: BrightBlack, Link: Cyan,
	Codespan: Magenta, CodeBG: BrightBlack,
	Success: Green, Error: Red, Warning: Yellow, Muted: BrightBlack,
	Border: BrightBlack, NoteColor: Blue, TipColor: Green,
	Box: roundedBox,
}

var darkTheme = &Theme{
	Name: "dark",
	Heading: BrightMagenta, Quote: BrightBlack, Link: BrightCyan,
	Codespan: BrightMagenta, CodeBG: Black,
	Success: BrightGreen, Error: BrightRed, Warning: BrightYellow, Muted: BrightBlack,
	Border: BrightBlack, NoteColor: BrightBlue, TipColor: BrightGreen,
	Box: roundedBox,
}

var monokaiTheme = &Theme{
	Name: "monokai",
	Heading: Magenta, Quote: BrightBlack, Link: Blue,
	Codespan: Yellow, CodeBG: Black,
	Success: Green, Error: Red, Warning: Yellow, Muted: BrightBlack,
	Border: BrightBlack, NoteColor: Blue, TipColor: Green,
	Box: heavyBox,
}

var registry = map[string]*Theme{
	"default": defaultTheme,
	"dark":    darkTheme,
	"monokai": monokaiTheme,
}

// Get returns the theme registered under name, or an error if unknown.
func Get(name string) (*Theme, error) {
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("mdtheme: unknown theme %q", name)
	}

	return t, nil
}

// Default returns the built-in default theme.
func Default() *Theme {
	return defaultTheme
}

// Available returns the sorted list of registered theme names.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
