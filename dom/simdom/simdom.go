// Package simdom is an in-memory page implementing dom.Window and
// dom.Element. Layout is whatever the caller sets; events are dispatched
// synchronously on the calling goroutine.
package simdom

import (
	"slices"
	"strings"

	"github.com/delaneyj/uiobserver/dom"
)

type listener struct {
	fn func()
}

type Window struct {
	scrollX, scrollY float64
	width, height    float64
	body             *Element
	listeners        map[string][]*listener
}

var _ dom.Window = (*Window)(nil)

// NewWindow returns a window with a viewport of width by height and an
// empty body filling it.
func NewWindow(width, height float64) *Window {
	w := &Window{
		width:     width,
		height:    height,
		listeners: map[string][]*listener{},
	}
	w.body = w.CreateElement("body")
	w.body.width, w.body.height = width, height
	return w
}

func (w *Window) AddEventListener(event string, fn func()) func() {
	l := &listener{fn: fn}
	w.listeners[event] = append(w.listeners[event], l)
	return func() {
		w.listeners[event] = slices.DeleteFunc(w.listeners[event], func(candidate *listener) bool {
			return candidate == l
		})
		if len(w.listeners[event]) == 0 {
			delete(w.listeners, event)
		}
	}
}

// Listeners is the number of listeners registered for event.
func (w *Window) Listeners(event string) int {
	return len(w.listeners[event])
}

// Dispatch calls every listener of event registered when it starts.
func (w *Window) Dispatch(event string) {
	for _, l := range slices.Clone(w.listeners[event]) {
		l.fn()
	}
}

// ScrollTo moves the viewport and dispatches "scroll".
func (w *Window) ScrollTo(x, y float64) {
	w.scrollX, w.scrollY = x, y
	w.Dispatch("scroll")
}

// Resize changes the viewport size and dispatches "resize".
func (w *Window) Resize(width, height float64) {
	w.width, w.height = width, height
	w.Dispatch("resize")
}

func (w *Window) ScrollX() float64     { return w.scrollX }
func (w *Window) ScrollY() float64     { return w.scrollY }
func (w *Window) InnerWidth() float64  { return w.width }
func (w *Window) InnerHeight() float64 { return w.height }

func (w *Window) Body() dom.Element {
	return w.body
}

// Document returns the body as its concrete type.
func (w *Window) Document() *Element {
	return w.body
}

// CreateElement returns a detached element. Append it to place it in the
// page.
func (w *Window) CreateElement(id string, classes ...string) *Element {
	return &Element{
		window:  w,
		id:      id,
		classes: classes,
	}
}

type Element struct {
	window   *Window
	id       string
	classes  []string
	parent   *Element
	children []*Element

	left, top, width, height float64
	clientLeft, clientTop    float64
	scrollLeft, scrollTop    float64
	translateX, translateY   float64
}

var _ dom.Element = (*Element)(nil)

func (e *Element) ID() string {
	return e.id
}

func (e *Element) Name() string {
	return "#" + e.id
}

// AppendChild makes e the offset parent of child.
func (e *Element) AppendChild(child *Element) *Element {
	if child.parent != nil {
		child.parent.children = slices.DeleteFunc(child.parent.children, func(c *Element) bool {
			return c == child
		})
	}
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// SetRect sets the offset box relative to the offset parent.
func (e *Element) SetRect(left, top, width, height float64) *Element {
	e.left, e.top, e.width, e.height = left, top, width, height
	return e
}

func (e *Element) SetBorder(left, top float64) *Element {
	e.clientLeft, e.clientTop = left, top
	return e
}

func (e *Element) SetScroll(left, top float64) *Element {
	e.scrollLeft, e.scrollTop = left, top
	return e
}

// SetTranslate moves the rendered box without affecting layout.
func (e *Element) SetTranslate(x, y float64) *Element {
	e.translateX, e.translateY = x, y
	return e
}

func (e *Element) OffsetLeft() float64   { return e.left }
func (e *Element) OffsetTop() float64    { return e.top }
func (e *Element) OffsetWidth() float64  { return e.width }
func (e *Element) OffsetHeight() float64 { return e.height }
func (e *Element) ClientLeft() float64   { return e.clientLeft }
func (e *Element) ClientTop() float64    { return e.clientTop }
func (e *Element) ScrollLeft() float64   { return e.scrollLeft }
func (e *Element) ScrollTop() float64    { return e.scrollTop }

func (e *Element) OffsetParent() dom.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// BoundingClientRect is the rendered box relative to the viewport.
func (e *Element) BoundingClientRect() dom.Rect {
	x, y := e.left+e.translateX, e.top+e.translateY
	for p := e.parent; p != nil; p = p.parent {
		x += p.left + p.clientLeft - p.scrollLeft
		y += p.top + p.clientTop - p.scrollTop
	}
	return dom.Rect{
		Left:   x - e.window.scrollX,
		Top:    y - e.window.scrollY,
		Width:  e.width,
		Height: e.height,
	}
}

// QuerySelector finds the first descendant, depth first, matching "#id" or
// ".class".
func (e *Element) QuerySelector(selector string) dom.Element {
	if found := e.find(selector); found != nil {
		return found
	}
	return nil
}

func (e *Element) find(selector string) *Element {
	for _, child := range e.children {
		if child.matches(selector) {
			return child
		}
		if found := child.find(selector); found != nil {
			return found
		}
	}
	return nil
}

func (e *Element) matches(selector string) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		return e.id == selector[1:]
	case strings.HasPrefix(selector, "."):
		return slices.Contains(e.classes, selector[1:])
	default:
		return false
	}
}
