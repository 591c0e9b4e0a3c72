package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/newbpydev/tuifw/screen"
)

// fgANSI and bgANSI map the core's Fg/Bg taxonomy (spec §6) onto the standard ANSI
// 16-color palette, which every terminal Bubble Tea targets understands.
var fgANSI = [...]string{
	screen.Black:        "0",
	screen.DarkGray:     "8",
	screen.LightGray:    "7",
	screen.White:        "15",
	screen.Red:          "1",
	screen.Green:        "2",
	screen.Blue:         "4",
	screen.Cyan:         "6",
	screen.Magenta:      "5",
	screen.Brown:        "3",
	screen.Yellow:       "11",
	screen.LightRed:     "9",
	screen.LightGreen:   "10",
	screen.LightBlue:    "12",
	screen.LightCyan:    "14",
	screen.LightMagenta: "13",
}

var bgANSI = [...]string{
	screen.BgBlack:     "0",
	screen.BgDarkGray:  "8",
	screen.BgLightGray: "7",
	screen.BgWhite:     "15",
	screen.BgRed:       "1",
	screen.BgGreen:     "2",
	screen.BgBlue:      "4",
	screen.BgCyan:      "6",
	screen.BgMagenta:   "5",
	screen.BgBrown:     "3",
	screen.BgYellow:    "11",
}

func styleFor(attr screen.Attr) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(fgANSI[attr.Fg]))
	if int(attr.Bg) < len(bgANSI) {
		s = s.Background(lipgloss.Color(bgANSI[attr.Bg]))
	}
	return s
}

// renderGrid renders a Backend's current cell grid to a string, one styled
// run per contiguous span of equal-attribute cells per row, joined with
// newlines for Bubble Tea's View.
func renderGrid(b *Backend) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out strings.Builder
	for y, row := range b.grid {
		if y > 0 {
			out.WriteByte('\n')
		}
		renderRow(&out, row)
	}
	return out.String()
}

func renderRow(out *strings.Builder, row []cell) {
	i := 0
	for i < len(row) {
		if row[i].r == 0 {
			// continuation cell of a wide rune written by the prior leading
			// cell; never emitted on its own.
			i++
			continue
		}
		attr := row[i].attr
		var run strings.Builder
		for i < len(row) && (row[i].r == 0 || row[i].attr == attr) {
			if row[i].r != 0 {
				run.WriteRune(row[i].r)
			}
			i++
		}
		out.WriteString(styleFor(attr).Render(run.String()))
	}
}
