package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/newbpydev/tuifw/screen"
)

// fgAnsi maps the core's Fg taxonomy to the 16-color ANSI palette
// lipgloss.Color understands by index string, matching the classic
// DOS/ncurses 16-color layout spec §6 describes.
var fgAnsi = map[screen.Fg]string{
	screen.Black:        "0",
	screen.Blue:         "4",
	screen.Green:        "2",
	screen.Cyan:         "6",
	screen.Red:          "1",
	screen.Magenta:      "5",
	screen.Brown:        "3",
	screen.LightGray:    "7",
	screen.DarkGray:     "8",
	screen.LightBlue:    "12",
	screen.LightGreen:   "10",
	screen.LightCyan:    "14",
	screen.LightRed:     "9",
	screen.LightMagenta: "13",
	screen.Yellow:       "11",
	screen.White:        "15",
}

var bgAnsi = map[screen.Bg]string{
	screen.BgBlack:     "0",
	screen.BgBlue:      "4",
	screen.BgGreen:     "2",
	screen.BgCyan:      "6",
	screen.BgRed:       "1",
	screen.BgMagenta:   "5",
	screen.BgBrown:     "3",
	screen.BgLightGray: "7",
	screen.BgDarkGray:  "8",
	screen.BgWhite:     "15",
	screen.BgYellow:    "11",
}

// Style converts a resolved Attr into a lipgloss.Style ready to render a
// cell's text, for backends (e.g. backend/bubbletea) that draw through
// Lip Gloss rather than raw ANSI escapes.
func Style(attr screen.Attr) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(fgAnsi[attr.Fg]))
	if attr.Bg != screen.BgNone {
		s = s.Background(lipgloss.Color(bgAnsi[attr.Bg]))
	}
	return s
}
