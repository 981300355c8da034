package dom_test

import (
	"testing"

	"github.com/delaneyj/uiobserver/dom"
	"github.com/delaneyj/uiobserver/dom/simdom"
	"github.com/delaneyj/uiobserver/frame"
	"github.com/delaneyj/uiobserver/uio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type page struct {
	window *simdom.Window
	frames *frame.Manual
	sched  *frame.Scheduler
	system *uio.System
}

func newPage() *page {
	p := &page{
		window: simdom.NewWindow(800, 600),
		frames: frame.NewManual(),
	}
	p.sched = frame.NewScheduler(p.frames)
	p.system = uio.NewSystem(p.sched)
	return p
}

type recorded struct {
	values []any
}

func (p *page) observe(t *testing.T, root any, opts ...uio.ObserverOption) (*uio.Observer, *recorded) {
	t.Helper()
	r := &recorded{}
	opts = append(opts, uio.WithOnChange(func(v any) {
		r.values = append(r.values, v)
	}))
	o, err := p.system.Observe(root, opts...)
	require.NoError(t, err)
	return o, r
}

func mountedOn(el dom.Element) uio.ObserverOption {
	return uio.WithAmbient(uio.Ambient{dom.RootElementKey: el})
}

func TestScrollY(t *testing.T) {
	p := newPage()
	o, r := p.observe(t, dom.ScrollY(p.window))
	assert.Equal(t, 1, p.window.Listeners("scroll"))
	assert.Equal(t, []any{0.0}, r.values)

	p.window.ScrollTo(0, 120)
	p.window.ScrollTo(0, 150)
	p.frames.Flush()
	assert.Equal(t, []any{0.0, 150.0}, r.values)

	require.NoError(t, o.Dispose())
	assert.Equal(t, 0, p.window.Listeners("scroll"))
}

func TestScrollX(t *testing.T) {
	p := newPage()
	_, r := p.observe(t, dom.ScrollX(p.window))
	p.window.ScrollTo(40, 0)
	p.frames.Flush()
	assert.Equal(t, []any{0.0, 40.0}, r.values)
}

func TestSourcesAreSharedAcrossDeclarations(t *testing.T) {
	p := newPage()
	o1, _ := p.observe(t, dom.ScrollY(p.window))
	o2, _ := p.observe(t, dom.ScrollY(p.window))
	_, _ = p.observe(t, dom.ViewportY(p.window, 0.5))
	_, _ = p.observe(t, dom.ViewportX(p.window, 1))

	assert.Same(t, o1.Root(), o2.Root())
	assert.Equal(t, 1, p.window.Listeners("scroll"))
	assert.Equal(t, 1, p.window.Listeners("resize"))

	require.NoError(t, p.system.DisposeAll())
	assert.Equal(t, 0, p.window.Listeners("scroll"))
	assert.Equal(t, 0, p.window.Listeners("resize"))
	assert.Equal(t, 0, p.system.Pool().Len())
}

func TestViewport(t *testing.T) {
	p := newPage()
	_, middle := p.observe(t, dom.ViewportY(p.window, 0.5))
	_, right := p.observe(t, dom.ViewportX(p.window, 1))
	_, height := p.observe(t, dom.ViewportHeight(p.window))
	_, top := p.observe(t, dom.ViewportY(p.window, 0))
	assert.Equal(t, []any{300.0}, middle.values)
	assert.Equal(t, []any{800.0}, right.values)

	p.window.ScrollTo(0, 100)
	p.frames.Flush()
	assert.Equal(t, []any{300.0, 400.0}, middle.values)
	assert.Equal(t, []any{800.0}, right.values, "scroll x did not change")
	assert.Equal(t, []any{0.0, 100.0}, top.values)

	p.window.Resize(1000, 1000)
	p.frames.Flush()
	assert.Equal(t, []any{300.0, 400.0, 600.0}, middle.values)
	assert.Equal(t, []any{800.0, 1000.0}, right.values)
	assert.Equal(t, []any{600.0, 1000.0}, height.values)
}

func TestRootElement(t *testing.T) {
	p := newPage()
	el := p.window.Document().AppendChild(p.window.CreateElement("app"))

	o, _ := p.observe(t, dom.RootElement(), mountedOn(el))
	assert.Equal(t, dom.Element(el), o.Value())
	assert.Equal(t, 0, p.system.Pool().Len())

	missing, _ := p.observe(t, dom.RootElement())
	assert.Nil(t, missing.Value())
}

func TestElement(t *testing.T) {
	p := newPage()
	root := p.window.Document().AppendChild(p.window.CreateElement("app"))
	hero := root.AppendChild(p.window.CreateElement("hero", "banner"))

	o, _ := p.observe(t, dom.Element(".banner"), mountedOn(root))
	assert.Equal(t, dom.Element(hero), o.Value())

	self, _ := p.observe(t, dom.Element(""), mountedOn(root))
	assert.Equal(t, dom.Element(root), self.Value())

	none, _ := p.observe(t, dom.Element("#missing"), mountedOn(root))
	assert.Nil(t, none.Value())

	unmounted, _ := p.observe(t, dom.Element("#hero"))
	assert.Nil(t, unmounted.Value())
}

func TestElementQueriedAgainWhenDepsChange(t *testing.T) {
	p := newPage()
	root := p.window.Document().AppendChild(p.window.CreateElement("app"))

	o, r := p.observe(t, dom.Element("#late", dom.ResizeEvent(p.window)), mountedOn(root))
	assert.Nil(t, o.Value())

	late := root.AppendChild(p.window.CreateElement("late"))
	p.window.Resize(800, 600)
	p.frames.Flush()
	assert.Equal(t, []any{nil, dom.Element(late)}, r.values)
}

func TestGetElementOffset(t *testing.T) {
	w := simdom.NewWindow(800, 600)
	outer := w.Document().AppendChild(w.CreateElement("outer")).SetRect(10, 100, 500, 500).SetBorder(2, 2)
	inner := outer.AppendChild(w.CreateElement("inner")).SetRect(5, 20, 50, 40)

	assert.Equal(t, dom.Offset{Left: 17, Top: 122}, dom.GetElementOffset(w, inner))

	// window scroll does not move document coordinates
	w.ScrollTo(30, 50)
	assert.Equal(t, dom.Offset{Left: 17, Top: 122}, dom.GetElementOffset(w, inner))

	// scrolled containers do
	outer.SetScroll(0, 10)
	assert.Equal(t, dom.Offset{Left: 17, Top: 112}, dom.GetElementOffset(w, inner))

	assert.Equal(t, dom.Offset{Left: 30, Top: 50}, dom.GetElementOffset(w, nil))
}

func TestElementOffsetRecomputedOnResize(t *testing.T) {
	p := newPage()
	el := p.window.Document().AppendChild(p.window.CreateElement("el")).SetRect(10, 100, 200, 40)

	_, r := p.observe(t, dom.ElementOffset(p.window, nil), mountedOn(el))
	assert.Equal(t, []any{dom.Offset{Left: 10, Top: 100}}, r.values)

	el.SetRect(10, 300, 200, 40)
	p.frames.Flush()
	assert.Len(t, r.values, 1, "layout changes alone are not observed")

	p.window.Resize(800, 600)
	p.frames.Flush()
	assert.Equal(t, []any{dom.Offset{Left: 10, Top: 100}, dom.Offset{Left: 10, Top: 300}}, r.values)

	// an identical offset is not a change
	p.window.Resize(800, 600)
	p.frames.Flush()
	assert.Len(t, r.values, 2)
}

func TestElementSize(t *testing.T) {
	p := newPage()
	el := p.window.Document().AppendChild(p.window.CreateElement("el")).SetRect(0, 0, 200, 40)

	_, width := p.observe(t, dom.ElementWidth(p.window, el))
	_, height := p.observe(t, dom.ElementHeight(p.window, el))
	assert.Equal(t, []any{200.0}, width.values)
	assert.Equal(t, []any{40.0}, height.values)

	el.SetRect(0, 0, 300, 40)
	p.window.Resize(800, 600)
	p.frames.Flush()
	assert.Equal(t, []any{200.0, 300.0}, width.values)
	assert.Equal(t, []any{40.0}, height.values)

	_, missing := p.observe(t, dom.ElementWidth(p.window, nil))
	assert.Equal(t, []any{0.0}, missing.values)
}

func TestElementSizeWithoutDeps(t *testing.T) {
	p := newPage()
	el := p.window.Document().AppendChild(p.window.CreateElement("el")).SetRect(0, 0, 200, 40)

	o, _ := p.observe(t, dom.ElementWidth(p.window, el, []any{}...))
	assert.Equal(t, 200.0, o.Value())
	assert.Equal(t, 0, p.window.Listeners("resize"))
}

func TestElementXY(t *testing.T) {
	p := newPage()
	el := p.window.Document().AppendChild(p.window.CreateElement("el")).SetRect(10, 100, 200, 40)

	_, y := p.observe(t, dom.ElementY(p.window, 0.5, nil), mountedOn(el))
	_, x := p.observe(t, dom.ElementX(p.window, 1, dom.Element("")), mountedOn(el))
	assert.Equal(t, []any{120.0}, y.values)
	assert.Equal(t, []any{210.0}, x.values)

	el.SetRect(10, 200, 200, 80)
	p.window.Resize(800, 600)
	p.frames.Flush()
	assert.Equal(t, []any{120.0, 240.0}, y.values)
	assert.Equal(t, []any{210.0}, x.values)
}

func TestTransformedBounds(t *testing.T) {
	p := newPage()
	el := p.window.Document().AppendChild(p.window.CreateElement("el")).SetRect(10, 100, 200, 40)

	_, r := p.observe(t, dom.TransformedBounds(p.window, el, dom.ScrollEvent(p.window)))
	assert.Equal(t, []any{dom.Bounds{X: 10, Y: 100, Width: 200, Height: 40}}, r.values)

	p.window.ScrollTo(0, 80)
	p.frames.Flush()
	assert.Len(t, r.values, 1, "scrolling does not move document bounds")

	el.SetTranslate(0, 15)
	p.window.ScrollTo(0, 90)
	p.frames.Flush()
	assert.Equal(t, dom.Bounds{X: 10, Y: 115, Width: 200, Height: 40}, r.values[1])
}

func TestFrameEvent(t *testing.T) {
	p := newPage()
	o, r := p.observe(t, dom.FrameEvent(p.sched))
	assert.Equal(t, []any{uint64(0)}, r.values)
	assert.Equal(t, 1, p.frames.Pending())

	p.frames.Flush()
	assert.Equal(t, []any{uint64(0), uint64(1)}, r.values)
	assert.Equal(t, 1, p.frames.Pending())

	p.frames.Flush()
	assert.Equal(t, []any{uint64(0), uint64(1), uint64(2)}, r.values)

	require.NoError(t, o.Dispose())
	p.frames.Flush()
	assert.Len(t, r.values, 3)
	assert.Equal(t, 0, p.frames.Pending())
}

func TestCustomEvent(t *testing.T) {
	p := newPage()
	_, r := p.observe(t, dom.Event(p.window, "visibilitychange"))
	p.window.Dispatch("visibilitychange")
	p.frames.Flush()
	assert.Equal(t, []any{uint64(0), uint64(1)}, r.values)
}
