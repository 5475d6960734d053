package ui

import (
	"fmt"

	"github.com/yuanwutong/portfolio/internal/content"
)

// Timeline lists every project in order; clicking an entry jumps the
// carousel to it. Each entry animates in the first time it is revealed.
type Timeline struct {
	batch    *Batch
	entries  map[string]bool
	revealed map[string]bool
}

// NewTimeline creates an empty timeline.
func NewTimeline(batch *Batch) *Timeline {
	return &Timeline{batch: batch}
}

type timelineEntry struct {
	ID     string
	Record content.ProjectRecord
}

// Build renders one entry per record and forgets earlier reveals.
func (t *Timeline) Build(records []content.ProjectRecord) {
	t.entries = make(map[string]bool, len(records))
	t.revealed = make(map[string]bool, len(records))

	entries := make([]timelineEntry, len(records))
	for i, r := range records {
		id := TimelineEntryID(i)
		entries[i] = timelineEntry{ID: id, Record: r}
		t.entries[id] = true
	}
	t.batch.add(htmlPatch(IDTimeline, execute("timeline", entries)))
}

// Reveal plays the entrance animation for entry id unless it already
// played. It reports whether the animation was emitted.
func (t *Timeline) Reveal(id string) bool {
	if !t.entries[id] || t.revealed[id] {
		return false
	}
	t.revealed[id] = true
	t.batch.add(animatePatch(id, AnimSlideInLeft))
	return true
}

// TimelineEntryID is the element ID of the i-th timeline entry.
func TimelineEntryID(i int) string {
	return fmt.Sprintf("timeline-entry-%d", i)
}
