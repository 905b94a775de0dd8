// Package page models the vertical page around the carousel: the smooth
// scroller, the progress bar and header shadow, the active navigation
// section, reveal-on-scroll and anchor navigation.
//
// All positions are in rows. The package has no terminal dependency; the
// application renders what it computes.
package page
