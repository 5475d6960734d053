package ui

import "time"

// Typewriter timings.
const (
	TypeStartDelay  = 400 * time.Millisecond
	TypeCharDelay   = 60 * time.Millisecond
	DeleteCharDelay = 28 * time.Millisecond
	TypeHoldDelay   = 900 * time.Millisecond
	TypeNextDelay   = 200 * time.Millisecond
)

// Typewriter types each phrase out, holds it, deletes it and moves on to
// the next, forever.
type Typewriter struct {
	phrases [][]rune
	idx     int
	ch      int
	forward bool
}

// NewTypewriter creates a typewriter over phrases. It returns nil when
// there is nothing to type.
func NewTypewriter(phrases []string) *Typewriter {
	var rs [][]rune
	for _, p := range phrases {
		if p != "" {
			rs = append(rs, []rune(p))
		}
	}
	if len(rs) == 0 {
		return nil
	}
	return &Typewriter{phrases: rs, forward: true}
}

// Step advances one tick. When changed is true, text is the new hero
// text. delay is the wait before the next tick.
func (t *Typewriter) Step() (text string, changed bool, delay time.Duration) {
	p := t.phrases[t.idx]
	if t.forward {
		t.ch++
		if t.ch > len(p) {
			t.forward = false
			return "", false, TypeHoldDelay
		}
	} else {
		t.ch--
		if t.ch < 0 {
			t.forward = true
			t.idx = (t.idx + 1) % len(t.phrases)
			return "", false, TypeNextDelay
		}
	}

	delay = TypeCharDelay
	if !t.forward {
		delay = DeleteCharDelay
	}
	return string(p[:t.ch]), true, delay
}
