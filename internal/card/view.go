// Package card holds the visible state of the single swipe card: its content,
// its transform, and the geometry of its action bar.
package card

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/swipedeck/internal/record"
)

// Literal messages shown in place of a record.
const (
	PlaceholderText = "Finding match..."
	TerminalText    = "No more profiles (or error)"
)

// Mode is what the card currently holds.
type Mode int

const (
	Empty Mode = iota
	Showing
	Placeholder
	Terminal
)

// Transform is the card's visual offset. The identity is Rest.
type Transform struct {
	TranslateX float64
	RotateDeg  float64
	Opacity    float64
}

// Rest is the identity transform, fully opaque.
var Rest = Transform{Opacity: 1}

// View is the card. Content is replaced wholesale on every Render.
type View struct {
	mode      Mode
	rec       record.Record
	image     string
	title     string
	body      string
	message   string
	transform Transform
	disabled  bool
	geom      Geometry
	desc      viewport.Model
	renders   int
}

// NewView returns an empty card drawn with geom.
func NewView(geom Geometry) *View {
	v := &View{geom: geom, transform: Rest}
	v.desc = viewport.New(geom.innerWidth(), geom.DescriptionRows)
	return v
}

// Render replaces the card's content with rec and restores the interactive
// baseline: identity transform, full opacity, enabled, description at top.
// Record fields are treated as plain text.
func (v *View) Render(rec record.Record, imageURL string) {
	v.mode = Showing
	v.rec = rec
	v.image = record.Plain(imageURL)
	v.title = record.Plain(rec.Name)
	v.body = record.Plain(rec.Description)
	v.message = ""
	v.reset()
	v.desc.SetContent(wrap(v.body, v.geom.innerWidth()))
	v.desc.GotoTop()
	v.renders++
}

// ShowPlaceholder swaps the content for the transient "finding" message.
func (v *View) ShowPlaceholder() { v.showMessage(Placeholder, PlaceholderText) }

// ShowTerminal swaps the content for the dead-end message.
func (v *View) ShowTerminal() { v.showMessage(Terminal, TerminalText) }

func (v *View) showMessage(m Mode, text string) {
	v.mode = m
	v.rec = record.Record{}
	v.image, v.title, v.body = "", "", ""
	v.message = text
	v.reset()
	v.desc.SetContent("")
}

func (v *View) reset() {
	v.transform = Rest
	v.disabled = false
}

func (v *View) Mode() Mode { return v.mode }

// Record returns the displayed record while Showing.
func (v *View) Record() (record.Record, bool) {
	return v.rec, v.mode == Showing
}

// Title and Description are the sanitized strings drawn on the card.
func (v *View) Title() string       { return v.title }
func (v *View) Description() string { return v.body }
func (v *View) Message() string     { return v.message }

func (v *View) Transform() Transform     { return v.transform }
func (v *View) SetTransform(t Transform) { v.transform = t }

func (v *View) Disabled() bool         { return v.disabled }
func (v *View) SetDisabled(d bool)     { v.disabled = d }
func (v *View) Interactive() bool      { return v.mode == Showing && !v.disabled }
func (v *View) Renders() int           { return v.renders }
func (v *View) Geometry() Geometry     { return v.geom }
func (v *View) ScrollOffset() int      { return v.desc.YOffset }
func (v *View) ScrollDown(lines int)   { v.desc.LineDown(lines) }
func (v *View) ScrollUp(lines int)     { v.desc.LineUp(lines) }

// wrap hard-wraps s to width cells, keeping explicit newlines.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Hardwrap(ansi.Wordwrap(s, width, ""), width, true)
}
