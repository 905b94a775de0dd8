// Package mouse turns raw terminal mouse reports into gestures.
//
// Terminals report mouse state, not transitions: every report carries the
// set of buttons currently held. The Handler remembers the previous report
// and derives press, drag, release, click and wheel events from it:
//
//	h := mouse.NewHandler(mouse.DefaultConfig())
//	for _, ev := range h.Feed(x, y, buttons, when) {
//	    switch ev.Action {
//	    case mouse.ActionPress:   // pointer down
//	    case mouse.ActionDrag:    // pointer move with the button held
//	    case mouse.ActionRelease: // pointer up
//	    case mouse.ActionClick:   // release close to where the press happened
//	    case mouse.ActionWheel:   // wheel tick, see Event.Direction
//	    }
//	}
//
// A release that travelled further than Config.ClickDistance is a drag,
// not a click, so dragging a card strip never activates the card under the
// pointer.
//
// Handler is not safe for concurrent use.
package mouse
