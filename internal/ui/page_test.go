package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/i18n"
	"github.com/yuanwutong/portfolio/internal/markdown"
)

func siteFS() fstest.MapFS {
	return fstest.MapFS{
		"projects/intro.md":  {Data: []byte("# About me\n\nI build sensors.\n\n我做传感器。\n")},
		"projects/future.md": {Data: []byte("Next up: robots.\n")},
		"projects/papers.md": {Data: []byte("- Paper one\n")},
		"projects/awards.md": {Data: []byte("- 一等奖\n")},
		"projects/list.txt":  {Data: []byte("a.md | Alpha | 2023\nb.md | Beta | 2024\n| orphan title\n")},
		"projects/a.md":      {Data: []byte("# Alpha\n\nFirst project.\n")},
		"projects/b.md":      {Data: []byte("# Beta\n\nSecond project.\n")},
		"blog/list.txt":      {Data: []byte("hello | Hello | a first post\n")},
		"blog/hello.md":      {Data: []byte("# Hello\n\nPost body.\n")},
	}
}

type recorder struct {
	ch   chan []Patch
	seen []Patch
}

func (r *recorder) Send(patches []Patch) error {
	r.ch <- patches
	return nil
}

// waitFor drains batches until pred holds for everything seen so far.
func (r *recorder) waitFor(t *testing.T, desc string, pred func([]Patch) bool) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for !pred(r.seen) {
		select {
		case b := <-r.ch:
			r.seen = append(r.seen, b...)
		case <-deadline:
			t.Fatalf("timed out waiting for %s", desc)
		}
	}
}

type logRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (l *logRecorder) logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *logRecorder) contains(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

type harness struct {
	page   *Page
	rec    *recorder
	logs   *logRecorder
	events chan Event
}

func startPage(t *testing.T, fsys fstest.MapFS, opts Options) *harness {
	t.Helper()
	return startPageFrom(t, content.DirSource{FS: fsys}, opts)
}

func startPageFrom(t *testing.T, src content.Source, opts Options) *harness {
	t.Helper()
	h := &harness{
		rec:    &recorder{ch: make(chan []Patch, 1024)},
		logs:   &logRecorder{},
		events: make(chan Event),
	}
	opts.Logf = h.logs.logf
	loader := content.NewLoader(src, time.Second)
	h.page = NewPage(loader, markdown.New(), h.rec, opts)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- h.page.Run(ctx, h.events) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run: %v", err)
		}
	})
	return h
}

func (h *harness) send(t *testing.T, ev Event) {
	t.Helper()
	select {
	case h.events <- ev:
	case <-time.After(5 * time.Second):
		t.Fatalf("event %s not accepted", ev.Type)
	}
}

func (h *harness) ready(t *testing.T) {
	t.Helper()
	h.send(t, Event{Type: EventReady})
	h.rec.waitFor(t, "initial content", func(ps []Patch) bool {
		return containsHTML(ps, "about-md", "About me") &&
			containsHTML(ps, "awards-md", "一等奖") &&
			containsHTML(ps, IDProjectStage, `data-file="a.md"`) &&
			containsHTML(ps, IDTimeline, `data-file="b.md"`) &&
			containsHTML(ps, IDBlogList, `data-path="blog/hello.md"`)
	})
}

func TestPageReadyLoadsEverything(t *testing.T) {
	h := startPage(t, siteFS(), Options{DefaultLang: i18n.LangEN})
	h.ready(t)

	ps := h.rec.seen
	if got := lastText(t, ps, "btn-prev"); got != "Previous" {
		t.Errorf("btn-prev = %q", got)
	}
	if zh, en := visibility(t, ps, "about-md"); zh || !en {
		t.Errorf("about visibility zh=%v en=%v", zh, en)
	}
	// The awards block is Chinese only, so it stays fully visible in English.
	if zh, en := visibility(t, ps, "awards-md"); !zh || !en {
		t.Errorf("awards visibility zh=%v en=%v", zh, en)
	}
	if got := lastText(t, ps, IDProjectCounter); got != "1 / 2" {
		t.Errorf("counter = %q", got)
	}
	if !h.logs.contains("missing file name") {
		t.Error("malformed list line not logged")
	}
}

func TestPageMissingListShowsEmpty(t *testing.T) {
	fsys := siteFS()
	delete(fsys, "projects/list.txt")
	h := startPage(t, fsys, Options{DefaultLang: i18n.LangEN})

	h.send(t, Event{Type: EventReady})
	h.rec.waitFor(t, "empty hint", func(ps []Patch) bool {
		return containsHTML(ps, IDProjectStage, "No projects yet")
	})
	if containsHTML(h.rec.seen, IDTimeline, content.NotFoundMarker) || containsHTML(h.rec.seen, IDTimeline, "timeline-entry-0") {
		t.Error("placeholder parsed as a project")
	}
	if !h.logs.contains(content.ProjectListPath) {
		t.Error("list failure not logged")
	}
}

func TestPageMissingSectionShowsPlaceholder(t *testing.T) {
	fsys := siteFS()
	delete(fsys, "projects/future.md")
	h := startPage(t, fsys, Options{DefaultLang: i18n.LangEN})

	h.send(t, Event{Type: EventReady})
	h.rec.waitFor(t, "placeholder", func(ps []Patch) bool {
		return containsHTML(ps, "future-md", content.NotFoundMarker)
	})
}

func TestPageLanguageEvents(t *testing.T) {
	h := startPage(t, siteFS(), Options{DefaultLang: i18n.LangZH})
	h.ready(t)

	h.send(t, Event{Type: EventLang, Lang: "en-US"})
	h.rec.waitFor(t, "english strings", func(ps []Patch) bool {
		return containsHTML(ps, IDBlogList, "Read more")
	})
	if got := lastText(t, h.rec.seen, "tab-blog"); got != "Blog" {
		t.Errorf("tab-blog = %q", got)
	}

	h.send(t, Event{Type: EventLangToggle})
	h.rec.waitFor(t, "chinese strings", func(ps []Patch) bool {
		return lastText(t, ps, "tab-blog") == "博客"
	})

	h.send(t, Event{Type: EventLang, Lang: "fr"})
	h.send(t, Event{Type: EventNext})
	h.rec.waitFor(t, "next after bad language", func(ps []Patch) bool {
		return lastText(t, ps, IDProjectCounter) == "2 / 2"
	})
	if !h.logs.contains(`unsupported language "fr"`) {
		t.Error("bad language not logged")
	}
}

func TestPageJumpFromTimeline(t *testing.T) {
	h := startPage(t, siteFS(), Options{DefaultLang: i18n.LangEN})
	h.ready(t)

	h.send(t, Event{Type: EventJump, File: "b.md"})
	h.rec.waitFor(t, "jump", func(ps []Patch) bool {
		return lastText(t, ps, IDProjectCounter) == "2 / 2" && hasClass(ps, ViewProjects.TabID(), ClassActive, true)
	})
}

func TestPageOpenModal(t *testing.T) {
	h := startPage(t, siteFS(), Options{DefaultLang: i18n.LangEN})
	h.ready(t)

	h.send(t, Event{Type: EventOpen, Kind: "blog", Path: "blog/hello.md"})
	h.rec.waitFor(t, "modal body", func(ps []Patch) bool {
		return containsHTML(ps, IDModalBody, "Post body.")
	})
	if got := lastText(t, h.rec.seen, IDModalTag); got != "Blog" {
		t.Errorf("tag = %q", got)
	}

	h.send(t, Event{Type: EventClose})
	h.rec.waitFor(t, "modal closed", func(ps []Patch) bool {
		return hasClass(ps, IDModal, ClassShow, false)
	})
}

func TestPageDrawerSelect(t *testing.T) {
	h := startPage(t, siteFS(), Options{DefaultLang: i18n.LangEN})
	h.ready(t)

	h.send(t, Event{Type: EventDrawerToggle})
	h.send(t, Event{Type: EventDrawerSelect, View: "research"})
	h.rec.waitFor(t, "drawer closed on select", func(ps []Patch) bool {
		return hasClass(ps, IDDrawer, ClassOpen, false) && hasClass(ps, ViewResearch.ContainerID(), ClassActive, true)
	})
}

func TestPageTypewriter(t *testing.T) {
	h := startPage(t, siteFS(), Options{DefaultLang: i18n.LangEN, Phrases: []string{"hi"}})
	h.send(t, Event{Type: EventReady})
	h.rec.waitFor(t, "typed phrase", func(ps []Patch) bool {
		for _, p := range find(ps, OpText, IDTypewriter) {
			if p.Text == "hi" {
				return true
			}
		}
		return false
	})
}

// gatedListSource serves siteFS, except that the first fetch of the
// project list waits for release and returns an older list.
type gatedListSource struct {
	fsys    fstest.MapFS
	waiting chan struct{}
	release chan struct{}

	mu      sync.Mutex
	fetches int
}

func (s *gatedListSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if name == content.ProjectListPath {
		s.mu.Lock()
		s.fetches++
		first := s.fetches == 1
		s.mu.Unlock()
		if first {
			close(s.waiting)
			select {
			case <-s.release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return []byte("old.md | Old\n"), nil
		}
	}
	return content.DirSource{FS: s.fsys}.Fetch(ctx, name)
}

func TestPageReloadDropsStaleLoads(t *testing.T) {
	fsys := siteFS()
	fsys["projects/list.txt"] = &fstest.MapFile{Data: []byte("new.md | New\n")}
	src := &gatedListSource{fsys: fsys, waiting: make(chan struct{}), release: make(chan struct{})}
	h := startPageFrom(t, src, Options{DefaultLang: i18n.LangEN})

	h.send(t, Event{Type: EventReady})
	select {
	case <-src.waiting:
	case <-time.After(5 * time.Second):
		t.Fatal("project list never fetched")
	}
	h.send(t, Event{Type: EventReload})
	h.rec.waitFor(t, "reloaded list", func(ps []Patch) bool {
		return containsHTML(ps, IDProjectStage, `data-file="new.md"`)
	})

	close(src.release)
	deadline := time.Now().Add(5 * time.Second)
	for !h.logs.contains("dropping stale load of " + content.ProjectListPath) {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the stale list to be dropped")
		}
		time.Sleep(5 * time.Millisecond)
	}

	files := make(chan []string, 1)
	h.page.post(func() {
		var out []string
		for _, r := range h.page.carousel.Records() {
			out = append(out, r.File)
		}
		files <- out
	})
	if got := <-files; len(got) != 1 || got[0] != "new.md" {
		t.Errorf("expected records [new.md], got %v", got)
	}
	if containsHTML(h.rec.seen, IDProjectStage, `data-file="old.md"`) || containsHTML(h.rec.seen, IDTimeline, `data-file="old.md"`) {
		t.Error("stale project list was rendered")
	}
}

func TestPageRunStopsWhenEventsClose(t *testing.T) {
	loader := content.NewLoader(content.DirSource{FS: siteFS()}, time.Second)
	p := NewPage(loader, markdown.New(), SinkFunc(func([]Patch) error { return nil }), Options{})
	events := make(chan Event)
	close(events)
	if err := p.Run(t.Context(), events); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestPageRunReturnsSinkError(t *testing.T) {
	loader := content.NewLoader(content.DirSource{FS: siteFS()}, time.Second)
	errClosed := errors.New("socket closed")
	p := NewPage(loader, markdown.New(), SinkFunc(func([]Patch) error { return errClosed }), Options{})

	events := make(chan Event, 1)
	events <- Event{Type: EventDrawerToggle}
	if err := p.Run(t.Context(), events); !errors.Is(err, errClosed) {
		t.Fatalf("Run error = %v, want %v", err, errClosed)
	}
}

func TestHandleRejectsBadEvents(t *testing.T) {
	loader := content.NewLoader(content.DirSource{FS: siteFS()}, time.Second)
	p := NewPage(loader, markdown.New(), SinkFunc(func([]Patch) error { return nil }), Options{})

	for _, ev := range []Event{
		{Type: "teleport"},
		{Type: EventNav, View: "contact"},
		{Type: EventOpen, Kind: "video"},
		{Type: EventJump, File: "missing.md"},
	} {
		if err := p.Handle(ev); err == nil {
			t.Errorf("Handle(%+v) accepted", ev)
		}
	}
	if p.State().View != ViewOverview || p.State().Lang != i18n.LangZH {
		t.Errorf("state changed: %+v", p.State())
	}
}
