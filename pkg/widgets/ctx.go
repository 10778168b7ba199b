package widgets

import (
	"github.com/go-drift/material/pkg/animation"
	"github.com/go-drift/material/pkg/graphics"
)

// Requests is what a widget asked of the host during one call.
type Requests struct {
	Paint            bool
	RegisterForFocus bool
	Schedule         []animation.Request
}

// Ctx carries host state into a widget call and collects its requests.
// A Ctx is used for a single call.
type Ctx struct {
	hot  bool
	size graphics.Size
	req  Requests
}

// NewCtx returns a context for a widget that is hot or not and was last
// laid out at size.
func NewCtx(hot bool, size graphics.Size) *Ctx {
	return &Ctx{hot: hot, size: size}
}

// IsHot reports whether the pointer is over the widget.
func (c *Ctx) IsHot() bool {
	return c.hot
}

// Size returns the widget's laid out size.
func (c *Ctx) Size() graphics.Size {
	return c.size
}

// RequestPaint marks the widget's visual output stale.
func (c *Ctx) RequestPaint() {
	c.req.Paint = true
}

// RegisterForFocus asks the host to add the widget to its focus chain.
func (c *Ctx) RegisterForFocus() {
	c.req.RegisterForFocus = true
}

// Schedule asks for the frame and timer callbacks described by r.
func (c *Ctx) Schedule(r animation.Request) {
	if r.IsZero() {
		return
	}
	c.req.Schedule = append(c.req.Schedule, r)
}

// Requests returns everything requested so far.
func (c *Ctx) Requests() Requests {
	return c.req
}
