package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt  StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                  // Semicircle past the endpoint
)

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
)

// Alignment is a point in a rectangle's normalized space, where (-1,-1) is
// the top-left corner and (1,1) the bottom-right.
type Alignment struct {
	X float64
	Y float64
}

// Common alignments.
var (
	AlignTop    = Alignment{X: 0, Y: -1}
	AlignBottom = Alignment{X: 0, Y: 1}
)

// Resolve maps the alignment to a point inside rect.
func (a Alignment) Resolve(rect Rect) Offset {
	c := rect.Center()
	return Offset{
		X: c.X + a.X*rect.Width()/2,
		Y: c.Y + a.Y*rect.Height()/2,
	}
}

// LinearGradient is a two-stop gradient between two alignments of the shape
// it fills.
type LinearGradient struct {
	Begin Alignment
	End   Alignment
	From  Color
	To    Color
}

// VerticalGradient returns a top-to-bottom gradient.
func VerticalGradient(from, to Color) *LinearGradient {
	return &LinearGradient{Begin: AlignTop, End: AlignBottom, From: from, To: to}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Gradient    *LinearGradient // If set, overrides Color for the fill
	Style       PaintStyle
	StrokeWidth float64
	StrokeCap   StrokeCap
	StrokeJoin  StrokeJoin
}

// FillPaint returns a solid fill paint.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill, StrokeWidth: 1}
}

// StrokePaint returns a solid stroke paint of the given width.
func StrokePaint(c Color, width float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: width}
}

// GradientPaint returns a fill paint using g.
func GradientPaint(g *LinearGradient) Paint {
	return Paint{Gradient: g, Style: PaintStyleFill, StrokeWidth: 1}
}
