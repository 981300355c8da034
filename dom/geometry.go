package dom

import "github.com/delaneyj/uiobserver/uio"

var (
	scrollXFn        = uio.Func1("scrollX", func(w Window) float64 { return w.ScrollX() })
	scrollYFn        = uio.Func1("scrollY", func(w Window) float64 { return w.ScrollY() })
	viewportWidthFn  = uio.Func1("viewportWidth", func(w Window) float64 { return w.InnerWidth() })
	viewportHeightFn = uio.Func1("viewportHeight", func(w Window) float64 { return w.InnerHeight() })

	viewportRatioFn = uio.Func3("viewportRatio", func(ratio, scroll, size float64) float64 {
		return scroll + ratio*size
	})

	rootElementFn = uio.NewLookup("rootElement", func(ambient uio.Ambient, args ...any) (any, error) {
		el, _ := ambient[RootElementKey].(Element)
		return el, nil
	})

	elementFn = uio.Func2("element", func(root Element, selector string) Element {
		if root == nil {
			return nil
		}
		return root.QuerySelector(selector)
	})

	elementOffsetFn = uio.Func2("elementOffset", GetElementOffset)

	elementWidthFn = uio.Func1("elementWidth", func(el Element) float64 {
		if el == nil {
			return 0
		}
		return el.OffsetWidth()
	})
	elementHeightFn = uio.Func1("elementHeight", func(el Element) float64 {
		if el == nil {
			return 0
		}
		return el.OffsetHeight()
	})

	elementXFn = uio.Func3("elementX", func(ratio float64, offset Offset, size float64) float64 {
		return offset.Left + ratio*size
	})
	elementYFn = uio.Func3("elementY", func(ratio float64, offset Offset, size float64) float64 {
		return offset.Top + ratio*size
	})

	transformedBoundsFn = uio.Func2("transformedBounds", func(w Window, el Element) Bounds {
		if el == nil {
			return Bounds{}
		}
		r := el.BoundingClientRect()
		return Bounds{
			X:      r.Left + w.ScrollX(),
			Y:      r.Top + w.ScrollY(),
			Width:  r.Width,
			Height: r.Height,
		}
	})
)

func ScrollX(w Window) *uio.Node {
	return uio.Observe(scrollXFn, w, ScrollEvent(w))
}

func ScrollY(w Window) *uio.Node {
	return uio.Observe(scrollYFn, w, ScrollEvent(w))
}

func ViewportWidth(w Window) *uio.Node {
	return uio.Observe(viewportWidthFn, w, ResizeEvent(w))
}

func ViewportHeight(w Window) *uio.Node {
	return uio.Observe(viewportHeightFn, w, ResizeEvent(w))
}

// ViewportX is the document x coordinate at ratio of the viewport width;
// 0 is the left edge, 1 the right.
func ViewportX(w Window, ratio float64) *uio.Node {
	if ratio == 0 {
		return ScrollX(w)
	}
	return uio.Observe(viewportRatioFn, ratio, ScrollX(w), ViewportWidth(w))
}

// ViewportY is the document y coordinate at ratio of the viewport height.
func ViewportY(w Window, ratio float64) *uio.Node {
	if ratio == 0 {
		return ScrollY(w)
	}
	return uio.Observe(viewportRatioFn, ratio, ScrollY(w), ViewportHeight(w))
}

// RootElement is the element the observing component is mounted on, read
// from the Observer's Ambient under RootElementKey.
func RootElement() *uio.Node {
	return uio.Context(rootElementFn)
}

// Element is the first match of selector under the root element, or the
// root element itself when selector is empty. deps are extra declarations
// that trigger the query again when they change.
func Element(selector string, deps ...any) *uio.Node {
	if selector == "" {
		return RootElement()
	}
	return uio.Observe(elementFn, append([]any{RootElement(), selector}, deps...)...)
}

// The element helpers below take an Element, a declaration resolving to one,
// or nil for the root element. Without deps they are recomputed when the
// window resizes; pass an empty non-nil slice to never recompute.

func ElementOffset(w Window, element any, deps ...any) *uio.Node {
	element, deps = elementDeps(w, element, deps)
	return uio.Observe(elementOffsetFn, append([]any{w, element}, deps...)...)
}

func ElementWidth(w Window, element any, deps ...any) *uio.Node {
	element, deps = elementDeps(w, element, deps)
	return uio.Observe(elementWidthFn, append([]any{element}, deps...)...)
}

func ElementHeight(w Window, element any, deps ...any) *uio.Node {
	element, deps = elementDeps(w, element, deps)
	return uio.Observe(elementHeightFn, append([]any{element}, deps...)...)
}

// ElementX is the document x coordinate at ratio of the element's width.
func ElementX(w Window, ratio float64, element any, deps ...any) *uio.Node {
	return uio.Observe(elementXFn, ratio, ElementOffset(w, element, deps...), ElementWidth(w, element, deps...))
}

// ElementY is the document y coordinate at ratio of the element's height.
func ElementY(w Window, ratio float64, element any, deps ...any) *uio.Node {
	return uio.Observe(elementYFn, ratio, ElementOffset(w, element, deps...), ElementHeight(w, element, deps...))
}

// TransformedBounds is the element's bounding box in document coordinates,
// including CSS transforms.
func TransformedBounds(w Window, element any, deps ...any) *uio.Node {
	element, deps = elementDeps(w, element, deps)
	return uio.Observe(transformedBoundsFn, append([]any{w, element}, deps...)...)
}

func elementDeps(w Window, element any, deps []any) (any, []any) {
	if element == nil {
		element = RootElement()
	}
	if deps == nil {
		deps = []any{ResizeEvent(w)}
	}
	return element, deps
}

// GetElementOffset walks the offset parents of el and returns its position
// relative to the document. A nil element is at the current scroll offset.
func GetElementOffset(w Window, el Element) Offset {
	var x, y float64
	body := w.Body()
	for el != nil {
		x += el.OffsetLeft() + el.ClientLeft()
		y += el.OffsetTop() + el.ClientTop()
		if el == body {
			x -= w.ScrollX()
			y -= w.ScrollY()
		} else {
			x -= el.ScrollLeft()
			y -= el.ScrollTop()
		}
		el = el.OffsetParent()
	}
	return Offset{Left: x + w.ScrollX(), Top: y + w.ScrollY()}
}
