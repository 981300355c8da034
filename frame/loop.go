package frame

import (
	"context"
	"time"
)

const DefaultInterval = time.Second / 60

// Loop is a single goroutine event loop that also acts as a frame Driver.
// Work from other goroutines (input events, timers) enters through Post and
// runs on the loop goroutine, which keeps the graph single threaded.
type Loop struct {
	interval time.Duration
	posts    chan func()
	frames   []func()
}

type LoopOption func(*Loop)

// WithInterval sets the frame interval.
func WithInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		l.interval = d
	}
}

// WithBacklog sets how many posted tasks may wait before Post blocks.
func WithBacklog(n int) LoopOption {
	return func(l *Loop) {
		l.posts = make(chan func(), n)
	}
}

func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		interval: DefaultInterval,
		posts:    make(chan func(), 64),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RequestFrame must be called from the loop goroutine.
func (l *Loop) RequestFrame(fn func()) {
	l.frames = append(l.frames, fn)
}

// Post hands fn to the loop goroutine. It blocks while the backlog is full.
func (l *Loop) Post(ctx context.Context, fn func()) error {
	select {
	case l.posts <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes posted tasks and frames until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posts:
			fn()
		case <-ticker.C:
			frames := l.frames
			l.frames = nil
			for _, fn := range frames {
				fn()
			}
		}
	}
}
