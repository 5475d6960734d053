package particles

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewFieldDeterministic(t *testing.T) {
	a := NewField(Config{Count: 10, Seed: 42})
	b := NewField(Config{Count: 10, Seed: 42})
	if len(a.Points()) != 10 {
		t.Fatalf("points = %d, want 10", len(a.Points()))
	}
	for i := range a.Points() {
		if a.Points()[i] != b.Points()[i] {
			t.Fatalf("point %d differs for the same seed", i)
		}
	}
	w, h := a.Size()
	for _, p := range a.Points() {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			t.Errorf("point %+v outside %vx%v", p, w, h)
		}
		if p.Depth < 0 || p.Depth > 1 {
			t.Errorf("depth %v out of range", p.Depth)
		}
	}
}

func TestStepWrapsAround(t *testing.T) {
	f := &Field{width: 100, height: 50, linkDistance: 10, points: []Point{
		{X: 99.5, Y: 0.2, VX: 1, VY: -0.5},
		{X: 10, Y: 10, VX: -0.5, VY: 0.5},
	}}
	f.Step()

	p := f.Points()[0]
	if !near(p.X, 0.5) || !near(p.Y, 49.7) {
		t.Errorf("wrapped point = (%v, %v), want (0.5, 49.7)", p.X, p.Y)
	}
	q := f.Points()[1]
	if !near(q.X, 9.5) || !near(q.Y, 10.5) {
		t.Errorf("moved point = (%v, %v), want (9.5, 10.5)", q.X, q.Y)
	}
}

func TestFrameLinks(t *testing.T) {
	f := &Field{width: 200, height: 200, linkDistance: 100, points: []Point{
		{X: 0, Y: 0, Depth: 1},
		{X: 30, Y: 40, Depth: 0},
		{X: 150, Y: 150, Depth: 0.5},
	}}
	fr := f.Frame()

	if len(fr.Links) != 1 {
		t.Fatalf("links = %d, want 1", len(fr.Links))
	}
	if l := fr.Links[0]; !near(l.Alpha, 0.5) {
		t.Errorf("link alpha = %v, want 0.5", l.Alpha)
	}
	if fr.Dots[0].R <= fr.Dots[1].R || fr.Dots[0].Alpha <= fr.Dots[1].Alpha {
		t.Errorf("near dot %+v should be larger and brighter than far dot %+v", fr.Dots[0], fr.Dots[1])
	}
}

func TestResizeKeepsPositions(t *testing.T) {
	f := &Field{width: 200, height: 200, linkDistance: 10, points: []Point{{X: 150, Y: 150}}}
	f.Resize(100, 100)

	if p := f.Points()[0]; p.X != 150 || p.Y != 150 {
		t.Errorf("point rescaled to (%v, %v)", p.X, p.Y)
	}
	if w, h := f.Size(); w != 100 || h != 100 {
		t.Errorf("size = %vx%v", w, h)
	}
	f.Step()
	if p := f.Points()[0]; p.X != 50 || p.Y != 50 {
		t.Errorf("point after step = (%v, %v), want (50, 50)", p.X, p.Y)
	}
}

func TestAnimatorStopIsDeterministic(t *testing.T) {
	var frames atomic.Int64
	a := NewAnimator(NewField(Config{Count: 5, Seed: 1}), 200, FrameSinkFunc(func(Frame) error {
		frames.Add(1)
		return nil
	}))

	if err := a.Start(t.Context()); err != nil {
		t.Fatal(err)
	}
	if err := a.Start(t.Context()); !errors.Is(err, ErrRunning) {
		t.Fatalf("second Start error = %v, want ErrRunning", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for frames.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatal("no frames sent")
		}
		time.Sleep(5 * time.Millisecond)
	}

	a.Stop()
	n := frames.Load()
	time.Sleep(50 * time.Millisecond)
	if frames.Load() != n {
		t.Errorf("frames sent after Stop: %d -> %d", n, frames.Load())
	}
	a.Stop()

	if err := a.Start(t.Context()); err != nil {
		t.Errorf("restart: %v", err)
	}
	a.Stop()
}

func TestAnimatorEndsOnSinkError(t *testing.T) {
	boom := errors.New("closed")
	a := NewAnimator(NewField(Config{Count: 2, Seed: 1}), 100, FrameSinkFunc(func(Frame) error { return boom }))
	if err := a.Start(t.Context()); err != nil {
		t.Fatal(err)
	}
	select {
	case <-a.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("animator did not stop")
	}
	if !errors.Is(a.Err(), boom) {
		t.Errorf("Err = %v, want %v", a.Err(), boom)
	}
}

func TestAnimatorResize(t *testing.T) {
	sizes := make(chan [2]float64, 64)
	a := NewAnimator(NewField(Config{Count: 1, Seed: 1}), 100, FrameSinkFunc(func(fr Frame) error {
		select {
		case sizes <- [2]float64{fr.Width, fr.Height}:
		default:
		}
		return nil
	}))
	a.Resize(320, 240)
	if err := a.Start(t.Context()); err != nil {
		t.Fatal(err)
	}
	defer a.Stop()

	select {
	case s := <-sizes:
		if s != [2]float64{320, 240} {
			t.Errorf("frame size = %v, want [320 240]", s)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no frame")
	}
}
