package card

import (
	"math"

	"github.com/charmbracelet/x/ansi"
)

// Geometry sizes the card and maps cells to the pixel space of transforms.
type Geometry struct {
	Width           int
	DescriptionRows int
	CellWidthPx     float64
	CellHeightPx    float64
}

// DefaultGeometry is a 44-column card with six description rows.
func DefaultGeometry() Geometry {
	return Geometry{Width: 44, DescriptionRows: 6, CellWidthPx: 8, CellHeightPx: 16}
}

// border plus one column of padding each side
func (g Geometry) innerWidth() int { return g.Width - 4 }

// Height is the card's row count.
func (g Geometry) Height() int { return g.DescriptionRows + 8 }

// Row offsets within the card.
func (g Geometry) descriptionRow() int { return 5 }
func (g Geometry) actionRow() int      { return 6 + g.DescriptionRows }

// Action names a card control, mirroring the buttons' data-action values.
type Action string

const (
	Nope Action = "nope"
	Like Action = "like"
)

const (
	nopeLabel = "[ ✖ nope ]"
	likeLabel = "[ ❤ like ]"
)

// Rect is a cell rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Control is one clickable region of the action bar.
type Control struct {
	Action Action
	Rect   Rect
}

// Layout is where the card and its parts sit on screen.
type Layout struct {
	Card        Rect
	Description Rect
	Controls    []Control
}

// Layout computes the card's screen geometry for a screen screenW cells wide
// with the card's top at row top. It is derived from the current content and
// transform on every call, so it never goes stale across renders.
func (v *View) Layout(screenW, top int) Layout {
	g := v.geom
	left := (screenW-g.Width)/2 + v.offsetCells()
	l := Layout{Card: Rect{X: left, Y: top, W: g.Width, H: g.Height()}}
	if v.mode != Showing {
		return l
	}
	inner := left + 2
	l.Description = Rect{X: inner, Y: top + g.descriptionRow(), W: g.innerWidth(), H: g.DescriptionRows}

	row := top + g.actionRow()
	nopeW := ansi.StringWidth(nopeLabel)
	likeW := ansi.StringWidth(likeLabel)
	l.Controls = []Control{
		{Action: Nope, Rect: Rect{X: inner, Y: row, W: nopeW, H: 1}},
		{Action: Like, Rect: Rect{X: inner + g.innerWidth() - likeW, Y: row, W: likeW, H: 1}},
	}
	return l
}

// ControlAt returns the control under cell (x, y), if any.
func (v *View) ControlAt(screenW, top, x, y int) (Action, bool) {
	for _, c := range v.Layout(screenW, top).Controls {
		if c.Rect.Contains(x, y) {
			return c.Action, true
		}
	}
	return "", false
}

func (v *View) offsetCells() int {
	return int(math.Round(v.transform.TranslateX / v.geom.CellWidthPx))
}
