// Package carousel implements drag-to-scroll with momentum for a
// horizontally scrolling strip of items.
//
// A Controller owns four cooperating parts:
//
//   - the pointer tracker, which turns pointer down/move/up into a drag
//     session and a smoothed velocity estimate (px/ms);
//   - the scroll driver, which coalesces drag writes so that at most one
//     position write happens per frame;
//   - the momentum simulator, which keeps scrolling after release under an
//     exponentially decaying velocity and stops dead at either edge;
//   - the edge affordance, which decides whether the "previous" and
//     "next" controls should be visible.
//
// The controller is an explicit state machine:
//
//	Idle ──down──▶ Dragging ──up (fast, mouse)──▶ Momentum ──decayed──▶ Idle
//	  ▲               │                              │
//	  └──up (slow)────┘◀────────────down─────────────┘
//
// plus Gliding, the smooth page-by-page scroll started by ScrollByCard.
// Exactly one of the drag driver, the momentum loop and the glide owns
// the scroll position at any time; entering a state cancels the frame
// callbacks of the others.
//
// Touch input records the session but never writes the position and never
// starts momentum; touch surfaces scroll natively.
//
// All methods must be called from the goroutine that ticks the frame
// scheduler.
package carousel
