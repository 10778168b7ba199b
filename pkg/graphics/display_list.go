package graphics

// Op is one recorded drawing operation. The concrete types are exported so
// callers can inspect what a widget painted.
type Op interface {
	execute(canvas Canvas)
}

// SaveOp mirrors Canvas.Save.
type SaveOp struct{}

// RestoreOp mirrors Canvas.Restore.
type RestoreOp struct{}

// TranslateOp mirrors Canvas.Translate.
type TranslateOp struct{ DX, DY float64 }

// RectOp mirrors Canvas.DrawRect.
type RectOp struct {
	Rect  Rect
	Paint Paint
}

// RRectOp mirrors Canvas.DrawRRect.
type RRectOp struct {
	RRect RRect
	Paint Paint
}

// CircleOp mirrors Canvas.DrawCircle.
type CircleOp struct {
	Center Offset
	Radius float64
	Paint  Paint
}

// PathOpRecord mirrors Canvas.DrawPath.
type PathOpRecord struct {
	Path  *Path
	Paint Paint
}

// TextOp mirrors Canvas.DrawText.
type TextOp struct {
	Text   string
	Origin Offset
	Style  TextStyle
}

func (SaveOp) execute(c Canvas)         { c.Save() }
func (RestoreOp) execute(c Canvas)      { c.Restore() }
func (o TranslateOp) execute(c Canvas)  { c.Translate(o.DX, o.DY) }
func (o RectOp) execute(c Canvas)       { c.DrawRect(o.Rect, o.Paint) }
func (o RRectOp) execute(c Canvas)      { c.DrawRRect(o.RRect, o.Paint) }
func (o CircleOp) execute(c Canvas)     { c.DrawCircle(o.Center, o.Radius, o.Paint) }
func (o PathOpRecord) execute(c Canvas) { c.DrawPath(o.Path, o.Paint) }
func (o TextOp) execute(c Canvas)       { c.DrawText(o.Text, o.Origin, o.Style) }

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []Op
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []Op {
	out := make([]Op, len(d.ops))
	copy(out, d.ops)
	return out
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// OpsOf returns the recorded operations of type T in order.
func OpsOf[T Op](d *DisplayList) []T {
	var out []T
	for _, op := range d.ops {
		if t, ok := op.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []Op
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

func (r *PictureRecorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) Save()    { c.recorder.append(SaveOp{}) }
func (c *recordingCanvas) Restore() { c.recorder.append(RestoreOp{}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(TranslateOp{DX: dx, DY: dy})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(RectOp{Rect: rect, Paint: copyPaint(paint)})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(RRectOp{RRect: rrect, Paint: copyPaint(paint)})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.append(CircleOp{Center: center, Radius: radius, Paint: copyPaint(paint)})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.recorder.append(PathOpRecord{Path: path.clone(), Paint: copyPaint(paint)})
}

func (c *recordingCanvas) DrawText(text string, origin Offset, style TextStyle) {
	c.recorder.append(TextOp{Text: text, Origin: origin, Style: style})
}

// copyPaint detaches the gradient so later edits by the caller do not leak
// into the recording.
func copyPaint(p Paint) Paint {
	if p.Gradient != nil {
		g := *p.Gradient
		p.Gradient = &g
	}
	return p
}
