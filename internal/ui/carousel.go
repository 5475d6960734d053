package ui

import (
	"fmt"
	"time"

	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/i18n"
)

// DefaultWheelCooldown is how long the carousel ignores wheel events after
// acting on one.
const DefaultWheelCooldown = 500 * time.Millisecond

// Direction is the way the carousel moves.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) enter() string {
	if d == Backward {
		return AnimEnterFromBottom
	}
	return AnimEnterFromTop
}

func (d Direction) exit() string {
	if d == Backward {
		return AnimExitToTop
	}
	return AnimExitToBottom
}

// Carousel shows one project card at a time.
type Carousel struct {
	batch    *Batch
	store    *Store
	now      func() time.Time
	cooldown time.Duration

	records []content.ProjectRecord
	loaded  bool
	cardSeq int
	current string
	exiting string
	resume  time.Time
}

// NewCarousel creates an empty carousel. now is the clock used for wheel
// rate limiting.
func NewCarousel(batch *Batch, store *Store, now func() time.Time, cooldown time.Duration) *Carousel {
	if now == nil {
		now = time.Now
	}
	if cooldown <= 0 {
		cooldown = DefaultWheelCooldown
	}
	return &Carousel{batch: batch, store: store, now: now, cooldown: cooldown}
}

// Len returns the number of projects.
func (c *Carousel) Len() int { return len(c.records) }

// Index returns the current position.
func (c *Carousel) Index() int { return c.store.State().Index }

// Records returns the loaded projects.
func (c *Carousel) Records() []content.ProjectRecord { return c.records }

// SetProjects replaces the project list wholesale and shows the first
// project.
func (c *Carousel) SetProjects(records []content.ProjectRecord) {
	c.records = records
	c.loaded = true
	c.store.SetIndex(0)
	c.current, c.exiting = "", ""

	if len(records) == 0 {
		c.batch.add(
			htmlPatch(IDProjectStage, c.emptyHTML()),
			textPatch(IDProjectCounter, ""),
		)
		return
	}
	c.batch.add(htmlPatch(IDProjectStage, ""))
	c.Render(Forward)
}

// Next moves to the following project, wrapping at the end.
func (c *Carousel) Next() {
	c.step(Forward)
}

// Prev moves to the preceding project, wrapping at the start.
func (c *Carousel) Prev() {
	c.step(Backward)
}

func (c *Carousel) step(d Direction) {
	n := len(c.records)
	if n == 0 {
		return
	}
	c.store.SetIndex((c.Index() + n + int(d)) % n)
	c.Render(d)
}

// Wheel maps a wheel gesture to Next (deltaY > 0) or Prev (deltaY < 0).
// After acting it ignores wheel input for the cooldown so one fast scroll
// moves a single card. It reports whether the carousel moved.
func (c *Carousel) Wheel(deltaY float64) bool {
	if len(c.records) == 0 || deltaY == 0 {
		return false
	}
	now := c.now()
	if now.Before(c.resume) {
		return false
	}
	c.resume = now.Add(c.cooldown)
	if deltaY > 0 {
		c.Next()
	} else {
		c.Prev()
	}
	return true
}

// Find returns the index of the project with the given file, or -1.
func (c *Carousel) Find(file string) int {
	for i, r := range c.records {
		if r.File == file {
			return i
		}
	}
	return -1
}

// Show renders project i, even if it is already displayed.
func (c *Carousel) Show(i int, d Direction) {
	if i < 0 || i >= len(c.records) {
		return
	}
	c.store.SetIndex(i)
	c.Render(d)
}

// Render puts a card for the current project on stage, animating it in
// and the previous card out. A card still leaving from an earlier
// transition is removed at once so only one exit runs at a time.
func (c *Carousel) Render(d Direction) {
	if len(c.records) == 0 {
		return
	}
	if c.exiting != "" {
		c.batch.add(Patch{Op: OpRemove, Target: c.exiting})
		c.exiting = ""
	}
	if c.current != "" {
		c.batch.add(Patch{Op: OpExit, Target: c.current, Animation: d.exit()})
		c.exiting = c.current
	}

	c.cardSeq++
	id := fmt.Sprintf("project-card-%d", c.cardSeq)
	c.current = id
	c.batch.add(
		Patch{Op: OpAppend, Target: IDProjectStage, HTML: execute("card", c.card(id))},
		animatePatch(id, d.enter()),
		textPatch(IDProjectCounter, c.counter()),
	)
}

// Refresh redraws the current card in place, for language changes.
func (c *Carousel) Refresh() {
	switch {
	case !c.loaded:
		return
	case len(c.records) == 0:
		c.batch.add(htmlPatch(IDProjectStage, c.emptyHTML()))
		return
	}
	c.batch.add(htmlPatch(c.current, execute("card-body", c.card(c.current))))
}

// AnimationEnd records that the browser finished and removed a card.
func (c *Carousel) AnimationEnd(id string) {
	if id == c.exiting {
		c.exiting = ""
	}
}

// Exiting returns the ID of the card currently animating out, if any.
func (c *Carousel) Exiting() string { return c.exiting }

// Current returns the ID of the card on stage, if any.
func (c *Carousel) Current() string { return c.current }

type cardData struct {
	ID       string
	Record   content.ProjectRecord
	Position int
	Count    int
	Open     string
}

func (c *Carousel) card(id string) cardData {
	i := c.Index()
	return cardData{
		ID:       id,
		Record:   c.records[i],
		Position: i + 1,
		Count:    len(c.records),
		Open:     i18n.T(c.store.State().Lang, i18n.RoleButtonOpen),
	}
}

func (c *Carousel) emptyHTML() string {
	return execute("empty", i18n.T(c.store.State().Lang, i18n.RoleHintEmpty))
}

func (c *Carousel) counter() string {
	return fmt.Sprintf("%d / %d", c.Index()+1, len(c.records))
}
