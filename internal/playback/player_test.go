package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/nbodyviz/internal/series"
)

func makeStore(t *testing.T, n int) *series.Store {
	t.Helper()
	frames := make([]series.Frame, n)
	for i := range frames {
		frames[i] = series.Frame{{X: float64(i)}}
	}
	s, err := series.NewStore(frames, []float64{1})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestRunSinglePass(t *testing.T) {
	p := New(makeStore(t, 4), WithInterval(0), WithLoop(false))

	var got []int
	err := p.Run(context.Background(), func(i int, f series.Frame) error {
		if f[0].X != float64(i) {
			t.Errorf("frame %d carries X=%f", i, f[0].X)
		}
		got = append(got, i)
		return nil
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("expected 4 callbacks, got %d", len(got))
	}
	for i, idx := range got {
		if idx != i {
			t.Errorf("callback %d: expected index %d, got %d", i, i, idx)
		}
	}
	if p.Frames() != 4 {
		t.Errorf("expected 4 delivered, got %d", p.Frames())
	}
}

func TestRunEmpty(t *testing.T) {
	p := New(makeStore(t, 0))

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- p.Run(context.Background(), func(int, series.Frame) error {
			calls++
			return nil
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run on empty series did not return")
	}
	if calls != 0 {
		t.Errorf("expected no callbacks, got %d", calls)
	}
}

func TestRunCallbackError(t *testing.T) {
	p := New(makeStore(t, 3), WithInterval(0))
	boom := errors.New("boom")

	calls := 0
	err := p.Run(context.Background(), func(i int, _ series.Frame) error {
		calls++
		if i == 1 {
			return boom
		}
		return nil
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	var fe *FrameError
	if !errors.As(err, &fe) || fe.Index != 1 || fe.Err != boom {
		t.Errorf("expected FrameError at index 1 wrapping boom, got %v", err)
	}
	if p.Frames() != 1 {
		t.Errorf("expected 1 frame delivered before the failure, got %d", p.Frames())
	}
	if calls != 2 {
		t.Errorf("expected playback to halt after 2 calls, got %d", calls)
	}
}

func TestRunNilCallback(t *testing.T) {
	p := New(makeStore(t, 1))
	if err := p.Run(context.Background(), nil); !errors.Is(err, ErrNilCallback) {
		t.Errorf("expected ErrNilCallback, got %v", err)
	}
}

func TestRunCadence(t *testing.T) {
	interval := 10 * time.Millisecond
	p := New(makeStore(t, 4), WithInterval(interval), WithLoop(false))

	start := time.Now()
	if err := p.Run(context.Background(), func(int, series.Frame) error { return nil }); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Three waits separate four frames; no wait follows the last.
	if elapsed := time.Since(start); elapsed < 3*interval {
		t.Errorf("expected at least %v, took %v", 3*interval, elapsed)
	}
}

func TestOptions(t *testing.T) {
	p := New(makeStore(t, 1))
	if p.Interval() != DefaultInterval {
		t.Errorf("expected default interval, got %v", p.Interval())
	}
	if !p.Loop() {
		t.Error("expected looping by default")
	}

	p = New(makeStore(t, 1), WithInterval(-time.Second))
	if p.Interval() != DefaultInterval {
		t.Error("negative interval should be ignored")
	}

	var seen []int
	p = New(makeStore(t, 2), WithInterval(0), WithLoop(false), WithObserver(func(i int) { seen = append(seen, i) }))
	_ = p.Run(context.Background(), func(int, series.Frame) error { return nil })
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Errorf("unexpected observer calls %v", seen)
	}
}
