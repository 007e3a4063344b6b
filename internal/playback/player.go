package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/san-kum/nbodyviz/internal/series"
)

// DefaultInterval is the live cadence between frames.
const DefaultInterval = 50 * time.Millisecond

// ErrNilCallback is returned by Run when no frame callback is given.
var ErrNilCallback = errors.New("playback: nil frame callback")

// FrameSource is the read side of a series.Store.
type FrameSource interface {
	FrameCount() int
	Frame(i int) (series.Frame, error)
}

// FrameFunc receives the frame at index. Returning an error halts playback.
type FrameFunc func(index int, f series.Frame) error

// FrameError reports the frame index whose delivery failed.
type FrameError struct {
	Index int
	Err error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("playback: frame %d: %v", e.Index, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

type Option func(*Player)

// WithInterval sets the wait between frames. Zero plays as fast as the
// callback allows.
func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		if d >= 0 {
			p.interval = d
		}
	}
}

// WithLoop controls whether the cursor wraps to frame 0 after the last frame.
func WithLoop(loop bool) Option {
	return func(p *Player) { p.loop = loop }
}

// WithObserver registers a hook called after every delivered frame.
func WithObserver(fn func(index int)) Option {
	return func(p *Player) { p.observer = fn }
}

type Player struct {
	src       FrameSource
	interval  time.Duration
	loop      bool
	observer  func(index int)
	delivered atomic.Int64
}

func New(src FrameSource, opts ...Option) *Player {
	p := &Player{
		src:      src,
		interval: DefaultInterval,
		loop:     true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Player) Interval() time.Duration { return p.interval }
func (p *Player) Loop() bool              { return p.loop }

// Frames reports how many frame callbacks have completed successfully.
func (p *Player) Frames() int64 { return p.delivered.Load() }

// Run delivers frames 0..n-1 to onFrame, waiting the configured interval
// after each callback returns. With looping enabled it wraps forever until
// ctx is cancelled. Cancellation is a normal stop and returns nil; a
// callback error stops playback and is returned as a *FrameError.
func (p *Player) Run(ctx context.Context, onFrame FrameFunc) error {
	if onFrame == nil {
		return ErrNilCallback
	}
	n := p.src.FrameCount()
	if n == 0 {
		return nil
	}

	slog.Debug("playback: starting", "frames", n, "interval", p.interval, "loop", p.loop)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	idx := 0
	for {
		if ctx.Err() != nil {
			slog.Debug("playback: stopped", "delivered", p.delivered.Load())
			return nil
		}

		f, err := p.src.Frame(idx)
		if err != nil {
			return &FrameError{Index: idx, Err: err}
		}
		if err := onFrame(idx, f); err != nil {
			return &FrameError{Index: idx, Err: err}
		}
		p.delivered.Add(1)
		if p.observer != nil {
			p.observer(idx)
		}

		idx++
		if idx == n {
			if !p.loop {
				slog.Debug("playback: finished single pass", "frames", n)
				return nil
			}
			idx = 0
		}

		if p.interval > 0 {
			timer.Reset(p.interval)
			select {
			case <-ctx.Done():
			case <-timer.C:
			}
		}
	}
}
