package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/delaneyj/uiobserver/dom"
	"github.com/delaneyj/uiobserver/dom/simdom"
	"github.com/delaneyj/uiobserver/frame"
	"github.com/delaneyj/uiobserver/uio"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	stepsKey    = "steps"
	distanceKey = "distance"
	intervalKey = "interval"
)

func main() {
	cmd := &cli.Command{
		Name:  "scrolldemo",
		Usage: "Scroll a simulated page and print section progress as it changes",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  stepsKey,
				Usage: "Number of scroll events",
				Value: 24,
			},
			&cli.FloatFlag{
				Name:  distanceKey,
				Usage: "Pixels scrolled per event",
				Value: 120,
			},
			&cli.DurationFlag{
				Name:  intervalKey,
				Usage: "Frame interval",
				Value: frame.DefaultInterval,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var sections = []string{"intro", "features", "pricing", "faq"}

const sectionHeight = 900

// progress is how far the middle of the viewport is through the section,
// clamped to [0, 1].
var progress = uio.Func3("progress", func(middle float64, offset dom.Offset, height float64) float64 {
	if height == 0 {
		return 0
	}
	return math.Max(0, math.Min(1, (middle-offset.Top)/height))
})

type change struct {
	frame    uint64
	scrollY  float64
	section  string
	progress float64
}

func run(ctx context.Context, cmd *cli.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interval := cmd.Duration(intervalKey)
	loop := frame.NewLoop(frame.WithInterval(interval))
	sched := frame.NewScheduler(loop)
	sys := uio.NewSystem(sched)
	w := simdom.NewWindow(1280, 720)

	var changes []change
	setup := func() {
		for n, id := range sections {
			el := w.Document().AppendChild(w.CreateElement(id, "section")).
				SetRect(0, float64(n*sectionHeight), 1280, sectionHeight)
			decl := uio.Observe(progress,
				dom.ViewportY(w, 0.5),
				dom.ElementOffset(w, nil),
				dom.ElementHeight(w, nil),
			)
			_, err := sys.Observe(decl,
				uio.WithAmbient(uio.Ambient{dom.RootElementKey: el}),
				uio.WithOnChange(func(v any) {
					changes = append(changes, change{
						frame:    sched.Frames(),
						scrollY:  w.ScrollY(),
						section:  id,
						progress: v.(float64),
					})
				}),
			)
			if err != nil {
				log.Printf("observe %s: %v", id, err)
			}
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- loop.Run(ctx)
	}()

	if err := loop.Post(ctx, setup); err != nil {
		return err
	}

	steps := int(cmd.Uint(stepsKey))
	distance := cmd.Float(distanceKey)
	for i := 1; i <= steps; i++ {
		y := float64(i) * distance
		if err := loop.Post(ctx, func() { w.ScrollTo(0, y) }); err != nil {
			return err
		}
		time.Sleep(interval * 2)
	}

	disposed := make(chan error, 1)
	if err := loop.Post(ctx, func() { disposed <- sys.DisposeAll() }); err != nil {
		return err
	}
	if err := <-disposed; err != nil {
		return err
	}
	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"frame", "scrollY", "section", "progress"})
	for _, c := range changes {
		table.Append([]string{
			humanize.Comma(int64(c.frame)),
			humanize.Comma(int64(c.scrollY)),
			c.section,
			fmt.Sprintf("%.0f%%", 100*c.progress),
		})
	}
	table.Render()

	log.Printf("%s changes over %s frames, %d listeners left", humanize.Comma(int64(len(changes))), humanize.Comma(int64(sched.Frames())), w.Listeners("scroll")+w.Listeners("resize"))
	return nil
}
