package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/uiobserver/frame"
	"github.com/delaneyj/uiobserver/metrics"
	"github.com/delaneyj/uiobserver/uio"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "pprof"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure propagation and reconciliation latency",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Samples per graph shape",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	ww = []int{1, 10, 100}
	hh = []int{1, 10, 100}

	addOne = uio.Func1("addOne", func(v int) int { return v + 1 })
)

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	reg := prometheus.NewRegistry()
	rec := metrics.New(metrics.WithRegistry(reg))

	log.Printf("warming up")
	if err := benchmarkPropagate(rec, iters, false); err != nil {
		return err
	}

	if err := benchmarkPropagate(rec, iters, true); err != nil {
		return err
	}
	if err := benchmarkReconcile(rec, iters, true); err != nil {
		return err
	}
	return renderMetrics(reg)
}

type graph struct {
	system     *uio.System
	frames     *frame.Manual
	invalidate func()
	value      int
	observers  []*uio.Observer
}

// newGraph builds w independent chains of h computations over one shared
// event source, each chain observed by its own Observer.
func newGraph(rec uio.Recorder) *graph {
	g := &graph{frames: frame.NewManual()}
	g.system = uio.NewSystem(
		frame.NewScheduler(g.frames),
		uio.WithPool(uio.NewPool(uio.WithRecorder(rec))),
	)
	return g
}

func (g *graph) chain(src, read *uio.Func, lane, h int) *uio.Node {
	last := uio.Observe(read, uio.Subscribe(src), lane)
	for j := 0; j < h; j++ {
		last = uio.Observe(addOne, last)
	}
	return last
}

func (g *graph) build(w, h int) (func(lane int) *uio.Node, error) {
	src := uio.NewSource("tick", func(invalidate func(), args ...any) (uio.Unsubscribe, error) {
		g.invalidate = invalidate
		return nil, nil
	})
	read := uio.Func2("read", func(_ uint64, lane int) int {
		return g.value + lane
	})
	declare := func(lane int) *uio.Node {
		return g.chain(src, read, lane, h)
	}

	for i := 0; i < w; i++ {
		o, err := g.system.Observe(declare(i), uio.WithOnChange(func(any) {}))
		if err != nil {
			return nil, err
		}
		g.observers = append(g.observers, o)
	}
	return declare, nil
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "instances", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendRow(tbl table.Writer, name string, g *graph, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRow(table.Row{
		name,
		humanize.Comma(int64(g.system.Pool().Len())),
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	})
}

func benchmarkPropagate(rec uio.Recorder, iters int, shouldRender bool) error {
	tbl := newTable("Propagate: source change to onChange")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			g := newGraph(rec)
			if _, err := g.build(w, h); err != nil {
				return err
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				g.value++
				g.invalidate()
				g.frames.Flush()
				tach.AddTime(time.Since(start))
			}

			appendRow(tbl, fmt.Sprintf("propagate: %d * %d", w, h), g, tach)
			if err := g.system.DisposeAll(); err != nil {
				return err
			}
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return nil
}

func benchmarkReconcile(rec uio.Recorder, iters int, shouldRender bool) error {
	tbl := newTable("Reconcile: unchanged declarations")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			g := newGraph(rec)
			declare, err := g.build(w, h)
			if err != nil {
				return err
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				for lane, o := range g.observers {
					if err := o.Update(declare(lane)); err != nil {
						return err
					}
				}
				tach.AddTime(time.Since(start))
			}

			appendRow(tbl, fmt.Sprintf("reconcile: %d * %d", w, h), g, tach)
			if err := g.system.DisposeAll(); err != nil {
				return err
			}
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return nil
}

func renderMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetTitle("Graph activity")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"metric", "labels", "value"})
	for _, family := range families {
		for _, m := range family.GetMetric() {
			labels := ""
			for _, pair := range m.GetLabel() {
				labels += pair.GetName() + "=" + pair.GetValue() + " "
			}
			v := m.GetCounter().GetValue()
			if m.Gauge != nil {
				v = m.GetGauge().GetValue()
			}
			tbl.AppendRow(table.Row{family.GetName(), labels, humanize.Comma(int64(v))})
		}
	}
	tbl.Render()
	return nil
}
