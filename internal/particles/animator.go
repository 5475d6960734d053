package particles

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// FrameSink receives rendered frames.
type FrameSink interface {
	SendFrame(Frame) error
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(Frame) error

// SendFrame implements FrameSink.
func (f FrameSinkFunc) SendFrame(fr Frame) error { return f(fr) }

// ErrRunning is returned by Start when the animator is already running.
var ErrRunning = errors.New("animator already running")

// Animator steps a Field at a fixed rate and sends each frame to a sink.
// Unlike a browser animation loop it has an explicit lifetime: Start
// launches it and Stop tears it down.
type Animator struct {
	field *Field
	fps   int
	sink  FrameSink

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
	pending *[2]float64
}

// NewAnimator creates a stopped animator. A non-positive fps selects
// DefaultFPS.
func NewAnimator(field *Field, fps int, sink FrameSink) *Animator {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animator{field: field, fps: fps, sink: sink}
}

// Start begins sending frames until ctx is cancelled, Stop is called or
// the sink fails.
func (a *Animator) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done != nil {
		select {
		case <-a.done:
		default:
			return ErrRunning
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.done = make(chan struct{})
	a.err = nil
	go a.loop(ctx, a.done)
	return nil
}

// Stop halts the loop and waits for it to exit. No frame is sent after
// Stop returns. Stopping a stopped animator is a no-op.
func (a *Animator) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done is closed when the loop exits. It is nil before the first Start.
func (a *Animator) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

// Err returns the sink error that ended the last run, if any.
func (a *Animator) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Resize applies new canvas dimensions before the next frame.
func (a *Animator) Resize(width, height float64) {
	a.mu.Lock()
	a.pending = &[2]float64{width, height}
	a.mu.Unlock()
}

func (a *Animator) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		a.mu.Lock()
		if a.pending != nil {
			a.field.Resize(a.pending[0], a.pending[1])
			a.pending = nil
		}
		a.mu.Unlock()

		a.field.Step()
		// Re-check so a frame never goes out once Stop has been called.
		if ctx.Err() != nil {
			return
		}
		if err := a.sink.SendFrame(a.field.Frame()); err != nil {
			log.Printf("particles: sending frame: %v", err)
			a.mu.Lock()
			a.err = fmt.Errorf("sending frame: %w", err)
			a.mu.Unlock()
			return
		}
	}
}
