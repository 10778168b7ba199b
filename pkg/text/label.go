// Package text measures and draws the single-line labels shown next to
// toggle widgets.
//
// Metrics come from the fixed 7x13 face in golang.org/x/image/font/basicfont
// scaled linearly to the requested size, so layout is deterministic and
// independent of any platform font stack.
package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/material/pkg/graphics"
	"github.com/go-drift/material/pkg/layout"
	"github.com/go-drift/material/pkg/theme"
)

var face = basicfont.Face7x13

// Label is a single line of text. The zero value is an empty label using
// the env's text size.
type Label struct {
	text string
	// size overrides theme.TextSize when positive.
	size float64
	// color overrides theme.LabelColor when non-zero.
	color graphics.Color
}

// NewLabel returns a label showing s.
func NewLabel(s string) *Label {
	return &Label{text: s}
}

// WithTextSize sets an explicit font size and returns the label.
func (l *Label) WithTextSize(size float64) *Label {
	l.size = size
	return l
}

// WithColor sets an explicit text color and returns the label.
func (l *Label) WithColor(c graphics.Color) *Label {
	l.color = c
	return l
}

// SetText replaces the label text. It reports whether the text changed.
func (l *Label) SetText(s string) bool {
	if l.text == s {
		return false
	}
	l.text = s
	return true
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// TextSize returns the font size used with env.
func (l *Label) TextSize(env *theme.Env) float64 {
	if l.size > 0 {
		return l.size
	}
	return theme.TextSize.Get(env)
}

// Measure returns the unconstrained size and the baseline distance from the
// bottom edge.
func (l *Label) Measure(env *theme.Env) (graphics.Size, float64) {
	size := l.TextSize(env)
	scale := size / float64(face.Height)
	width := fixedToFloat(font.MeasureString(face, l.text)) * scale
	return graphics.Size{Width: width, Height: size}, float64(face.Descent) * scale
}

// Layout measures the label and fits it into bc.
func (l *Label) Layout(bc layout.Constraints, env *theme.Env) layout.Result {
	size, baseline := l.Measure(env)
	return layout.Result{Size: bc.Constrain(size), Baseline: baseline}
}

// DrawAt paints the label with its top-left corner at origin.
func (l *Label) DrawAt(canvas graphics.Canvas, origin graphics.Offset, env *theme.Env) {
	if l.text == "" {
		return
	}
	color := l.color
	if color == 0 {
		color = theme.LabelColor.Get(env)
	}
	canvas.DrawText(l.text, origin, graphics.TextStyle{Color: color, Size: l.TextSize(env)})
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
