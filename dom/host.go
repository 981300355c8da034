// Package dom declares observable page geometry: scroll position, viewport
// size, element offsets and bounds. Everything is written against the Window
// and Element interfaces, so any host that can answer layout queries can
// drive it; simdom is an in-memory one.
//
// All handlers are package-level Funcs, so equal declarations from different
// components intern to the same Instance and share one subscription.
package dom

// Window is the top-level browsing context.
type Window interface {
	// AddEventListener registers fn for event and returns a function that
	// removes it.
	AddEventListener(event string, fn func()) (remove func())

	ScrollX() float64
	ScrollY() float64
	InnerWidth() float64
	InnerHeight() float64

	Body() Element
}

// Element is a laid out node. Hosts must return a nil interface, not a typed
// nil, when there is no parent or no match.
type Element interface {
	OffsetLeft() float64
	OffsetTop() float64
	OffsetWidth() float64
	OffsetHeight() float64
	OffsetParent() Element

	ClientLeft() float64
	ClientTop() float64
	ScrollLeft() float64
	ScrollTop() float64

	BoundingClientRect() Rect
	QuerySelector(selector string) Element
}

// Rect is a box in viewport coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Offset is the position of an element relative to the document.
type Offset struct {
	Left, Top float64
}

// Bounds is the box an element occupies in document coordinates after
// transforms.
type Bounds struct {
	X, Y, Width, Height float64
}

// RootElementKey is the Ambient key RootElement reads.
const RootElementKey = "rootElement"
