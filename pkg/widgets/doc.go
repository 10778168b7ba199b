// Package widgets provides Material styled toggle controls for a retained
// widget tree: [Checkbox], [Switch], [Radio] and [Button].
//
// # Host Contract
//
// The host owns the tree, the bound bool, hit testing and the event loop.
// It calls the five [Widget] methods, one at a time, and after each call
// reads back what the widget asked for:
//
//	ctx := widgets.NewCtx(hot, size)
//	w.Event(ctx, widgets.PointerUp{}, &value, env)
//	for _, req := range ctx.Requests().Schedule {
//	    // deliver AnimFrame{Token: req.Token, ...} next frame
//	    // and Timer{Token: req.Token} after req.Timer
//	}
//
// Animation callbacks carry the token they were scheduled with. Widgets
// ignore callbacks whose token belongs to a superseded animation, so a host
// may deliver late or duplicate callbacks without corrupting state.
//
// When the host changes the bound value itself it calls Update with the old
// and new values; the widget animates toward the new value exactly as it
// would after a click.
//
// # Composition
//
// Every widget embeds a [Toggle], which pairs an interaction.Controller with
// an animation.Driver and runs the shared dispatch. Widgets differ only in
// their commit policy, their animation, layout and paint. Paint is a pure
// function of a [Snapshot] and the theme.
package widgets
