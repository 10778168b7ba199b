package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/material/pkg/graphics"
)

// DisplayOp is a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops []DisplayOp
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: params("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	p := serializePaint(paint)
	p["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: p})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	p := serializePaint(paint)
	p["rect"] = serializeRect(rrect.Rect)
	p["radius"] = round2(rrect.Radius.X)
	c.ops = append(c.ops, DisplayOp{Op: "drawRRect", Params: p})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	p := serializePaint(paint)
	p["cx"] = round2(center.X)
	p["cy"] = round2(center.Y)
	p["radius"] = round2(radius)
	c.ops = append(c.ops, DisplayOp{Op: "drawCircle", Params: p})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	p := serializePaint(paint)
	points := make([][2]float64, 0, len(path.Commands))
	for _, cmd := range path.Commands {
		points = append(points, [2]float64{round2(cmd.Point.X), round2(cmd.Point.Y)})
	}
	p["points"] = points
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: p})
}

func (c *serializingCanvas) DrawText(text string, origin graphics.Offset, style graphics.TextStyle) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: params(
			"text", text,
			"x", round2(origin.X), "y", round2(origin.Y),
			"size", round2(style.Size),
			"color", style.Color.String(),
		),
	})
}

func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializePaint(p graphics.Paint) map[string]any {
	m := params("style", p.Style.String())
	if p.Gradient != nil {
		m["gradient"] = []string{p.Gradient.From.String(), p.Gradient.To.String()}
	} else {
		m["color"] = p.Color.String()
	}
	if p.Style == graphics.PaintStyleStroke {
		m["width"] = round2(p.StrokeWidth)
	}
	return m
}

func serializeRect(r graphics.Rect) map[string]any {
	return params(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// params creates a map from alternating key-value pairs. The snapshot
// encoder sorts keys.
func params(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[fmt.Sprint(kvs[i])] = kvs[i+1]
	}
	return m
}
