package card

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type palette struct {
	frame, text, title, muted, nope, like lipgloss.Style
}

func paletteFor(opacity float64, disabled bool) palette {
	p := palette{
		frame: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		text:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		nope:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		like:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
	if disabled {
		p.nope = p.muted
		p.like = p.muted
	}
	if opacity < 0.999 {
		// xterm grayscale ramp 232..255 stands in for alpha
		level := 232 + int(math.Round(math.Max(0, opacity)*23))
		faded := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprint(level)))
		p = palette{frame: faded, text: faded, title: faded.Bold(true), muted: faded, nope: faded, like: faded}
	}
	return p
}

// Draw renders the card centred on a screenW-wide screen with its transform
// applied: translation shifts the whole card, rotation skews rows about the
// card's centre, opacity fades the colours. Rows are clipped to the screen.
func (v *View) Draw(screenW int) string {
	rows := v.rows()
	left := (screenW-v.geom.Width)/2 + v.offsetCells()
	mid := float64(len(rows)-1) / 2
	sin := math.Sin(v.transform.RotateDeg * math.Pi / 180)

	out := make([]string, len(rows))
	for i, row := range rows {
		// positive degrees turn clockwise: rows above centre move right
		skew := int(math.Round(-(float64(i) - mid) * v.geom.CellHeightPx * sin / v.geom.CellWidthPx))
		out[i] = place(row, left+skew, screenW)
	}
	return strings.Join(out, "\n")
}

// place positions row so its first cell lands at column x, clipped to [0, width).
func place(row string, x, width int) string {
	if x < 0 {
		row = ansi.TruncateLeft(row, -x, "")
		x = 0
	}
	if x >= width {
		return ""
	}
	return strings.Repeat(" ", x) + ansi.Truncate(row, width-x, "")
}

func (v *View) rows() []string {
	g := v.geom
	p := paletteFor(v.transform.Opacity, v.disabled)
	inner := g.innerWidth()
	pad := func(s string) string {
		if w := ansi.StringWidth(s); w < inner {
			return s + strings.Repeat(" ", inner-w)
		}
		return ansi.Truncate(s, inner, "…")
	}

	var body []string
	switch v.mode {
	case Showing:
		body = append(body,
			pad(p.muted.Render(ansi.Truncate("▣ "+v.image, inner, "…"))),
			pad(""),
			pad(p.title.Render(ansi.Truncate(v.title, inner, "…"))),
			pad(p.muted.Render(strings.Repeat("─", inner))),
		)
		desc := strings.Split(v.desc.View(), "\n")
		for i := 0; i < g.DescriptionRows; i++ {
			line := ""
			if i < len(desc) {
				line = desc[i]
			}
			body = append(body, pad(p.text.Render(line)))
		}
		gap := inner - ansi.StringWidth(nopeLabel) - ansi.StringWidth(likeLabel)
		body = append(body,
			pad(""),
			p.nope.Render(nopeLabel)+strings.Repeat(" ", max(gap, 1))+p.like.Render(likeLabel),
		)
	default:
		msg := v.message
		blank := g.Height() - 2
		for i := 0; i < blank; i++ {
			if i == blank/2 && msg != "" {
				body = append(body, pad(p.muted.Render(lipgloss.PlaceHorizontal(inner, lipgloss.Center, msg))))
				continue
			}
			body = append(body, pad(""))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.frame.GetForeground()).
		Padding(0, 1).
		Width(inner + 2).
		Render(strings.Join(body, "\n"))
	return strings.Split(box, "\n")
}
