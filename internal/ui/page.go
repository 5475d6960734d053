package ui

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/yuanwutong/portfolio/internal/bilingual"
	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/i18n"
	"github.com/yuanwutong/portfolio/internal/markdown"
)

// Options tune a Page.
type Options struct {
	DefaultLang   i18n.Lang
	Visibility    VisibilityPolicy
	WheelCooldown time.Duration
	// Phrases feed the hero typewriter; empty disables it.
	Phrases []string
	// Now is the clock for wheel rate limiting. Defaults to time.Now.
	Now func() time.Time
	// Logf receives skipped list lines and load failures. It may be
	// called from any goroutine.
	Logf func(format string, args ...any)
}

// Page is the controller for one browser session. All state is owned by
// the goroutine running Run; content loads happen in the background and
// post their results back into that loop.
type Page struct {
	loader   *content.Loader
	renderer *markdown.Renderer
	sink     Sink
	opts     Options

	batch      *Batch
	store      *Store
	lang       *Language
	views      *ViewSwitcher
	carousel   *Carousel
	timeline   *Timeline
	blog       *BlogList
	modal      *Modal
	drawer     *Drawer
	typewriter *Typewriter

	ctx     context.Context
	posts   chan func()
	started bool
	loadSeq int
}

// NewPage wires the page components together.
func NewPage(loader *content.Loader, renderer *markdown.Renderer, sink Sink, opts Options) *Page {
	if !opts.DefaultLang.Valid() {
		opts.DefaultLang = i18n.LangZH
	}
	if opts.Visibility == "" {
		opts.Visibility = PolicyExclusive
	}
	if opts.Logf == nil {
		opts.Logf = func(string, ...any) {}
	}

	batch := &Batch{}
	store := NewStore(State{Lang: opts.DefaultLang, View: Layout[0].View})
	lang := NewLanguage(batch, store, opts.Visibility, Bindings())

	views := NewViewSwitcher(batch, store)
	p := &Page{
		loader:     loader,
		renderer:   renderer,
		sink:       sink,
		opts:       opts,
		batch:      batch,
		store:      store,
		lang:       lang,
		views:      views,
		carousel:   NewCarousel(batch, store, opts.Now, opts.WheelCooldown),
		timeline:   NewTimeline(batch),
		blog:       NewBlogList(batch, store),
		modal:      NewModal(batch, store, lang),
		drawer:     NewDrawer(batch, views),
		typewriter: NewTypewriter(opts.Phrases),
		ctx:        context.Background(),
		posts:      make(chan func()),
	}

	store.Subscribe(TopicLanguage, func(State) {
		p.lang.Apply()
		p.carousel.Refresh()
		p.blog.Refresh()
		p.modal.Relabel()
	})
	store.Subscribe(TopicView, func(State) {
		p.drawer.Close()
	})
	return p
}

// State returns the current UI state.
func (p *Page) State() State { return p.store.State() }

// Run processes events and background results until ctx is cancelled or
// events is closed. Patches produced by each step are flushed to the sink
// as one batch; a sink error ends the loop.
func (p *Page) Run(ctx context.Context, events <-chan Event) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.ctx = ctx

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := p.Handle(ev); err != nil {
				p.opts.Logf("ui: %v", err)
			}
		case fn := <-p.posts:
			fn()
		}
		if err := p.Flush(); err != nil {
			return fmt.Errorf("sending patches: %w", err)
		}
	}
}

// Handle applies one event. Patches accumulate until Flush.
func (p *Page) Handle(ev Event) error {
	switch ev.Type {
	case EventReady:
		p.ready()
	case EventReload:
		p.loadContent()
	case EventNav:
		v, ok := ParseView(ev.View)
		if !ok {
			return fmt.Errorf("unknown view %q", ev.View)
		}
		p.views.Switch(v)
	case EventLang:
		lang := i18n.NormalizeLang(ev.Lang)
		if lang == "" {
			return fmt.Errorf("unsupported language %q", ev.Lang)
		}
		p.lang.Set(lang)
	case EventLangToggle:
		p.lang.Toggle()
	case EventNext:
		p.carousel.Next()
	case EventPrev:
		p.carousel.Prev()
	case EventWheel:
		p.carousel.Wheel(ev.DeltaY)
	case EventJump:
		if !p.JumpTo(ev.File) {
			return fmt.Errorf("no project %q", ev.File)
		}
	case EventOpen:
		kind, err := ParseModalKind(ev.Kind)
		if err != nil {
			return err
		}
		p.OpenModal(kind, ev.Path)
	case EventClose:
		p.modal.Close()
	case EventDrawerToggle:
		p.drawer.Toggle()
	case EventDrawerClose:
		p.drawer.Close()
	case EventDrawerSelect:
		v, ok := ParseView(ev.View)
		if !ok {
			return fmt.Errorf("unknown view %q", ev.View)
		}
		p.drawer.Select(v)
	case EventReveal:
		p.timeline.Reveal(ev.ID)
	case EventAnimationEnd:
		p.carousel.AnimationEnd(ev.ID)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

// Flush sends pending patches to the sink.
func (p *Page) Flush() error {
	if p.batch.Len() == 0 {
		return nil
	}
	return p.sink.Send(p.batch.Take())
}

// JumpTo switches to the projects view and shows the project with the
// given file. It reports whether the project exists.
func (p *Page) JumpTo(file string) bool {
	i := p.carousel.Find(file)
	if i < 0 {
		return false
	}
	p.views.Switch(ViewProjects)
	d := Forward
	if i < p.carousel.Index() {
		d = Backward
	}
	p.carousel.Show(i, d)
	return true
}

// OpenModal shows the modal and loads the document in the background.
func (p *Page) OpenModal(kind ModalKind, path string) {
	ticket := p.modal.Open(kind, path)
	ctx := p.ctx
	go func() {
		block := p.renderBlock(ctx, path)
		p.post(func() { p.modal.Deliver(ticket, block) })
	}()
}

func (p *Page) ready() {
	if p.started {
		p.loadContent()
		return
	}
	p.started = true
	p.lang.ApplyStrings()
	p.loadContent()
	if p.typewriter != nil {
		p.scheduleType(TypeStartDelay)
	}
}

// loadContent starts the independent loads. The timeline is built in the
// same step as the carousel because both derive from the project list.
// Each call starts a new generation; results from older ones are dropped.
func (p *Page) loadContent() {
	p.loadSeq++
	seq := p.loadSeq
	ctx := p.ctx
	for _, s := range StaticSections() {
		go func(s Section) {
			block := p.renderBlock(ctx, s.Source)
			p.postLoad(seq, s.Source, func() {
				p.batch.add(htmlPatch(s.ContentID, block.HTML))
				p.lang.Register(s.ContentID, block)
				p.lang.ApplyVisibility()
			})
		}(s)
	}

	go func() {
		records := loadList(ctx, p, content.ProjectListPath, content.ParseProjects)
		p.postLoad(seq, content.ProjectListPath, func() {
			p.carousel.SetProjects(records)
			p.timeline.Build(records)
		})
	}()

	go func() {
		posts := loadList(ctx, p, content.BlogListPath, content.ParseBlog)
		p.postLoad(seq, content.BlogListPath, func() { p.blog.Build(posts) })
	}()
}

// postLoad posts fn unless a later loadContent has superseded seq by the
// time it runs.
func (p *Page) postLoad(seq int, path string, fn func()) {
	p.post(func() {
		if seq != p.loadSeq {
			p.opts.Logf("ui: dropping stale load of %s", path)
			return
		}
		fn()
	})
}

func (p *Page) scheduleType(d time.Duration) {
	time.AfterFunc(d, func() {
		p.post(func() {
			text, changed, next := p.typewriter.Step()
			if changed {
				p.batch.add(textPatch(IDTypewriter, text))
			}
			p.scheduleType(next)
		})
	})
}

// renderBlock loads, renders and classifies one markdown document. Load
// failures already arrive as placeholder markdown; render failures become
// a single escaped paragraph.
func (p *Page) renderBlock(ctx context.Context, path string) bilingual.Block {
	out, err := p.renderer.Render(p.loader.Load(ctx, path))
	if err != nil {
		out = "<p>" + html.EscapeString(content.NotFound(err)) + "</p>"
	}
	block, err := bilingual.Classify(out)
	if err != nil {
		p.opts.Logf("ui: classifying %s: %v", path, err)
		return bilingual.Block{HTML: out}
	}
	return block
}

// post hands fn to the event loop. It gives up once the page has stopped.
func (p *Page) post(fn func()) bool {
	select {
	case p.posts <- fn:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// loadList fetches and parses a list file. A failed fetch yields an empty
// list so the not-found placeholder is never parsed as records.
func loadList[T any](ctx context.Context, p *Page, path string, parse func(string) ([]T, []content.ParseIssue)) []T {
	raw, err := p.loader.Fetch(ctx, path)
	if err != nil {
		p.opts.Logf("ui: loading %s: %v", path, err)
		return nil
	}
	records, issues := parse(raw)
	for _, is := range issues {
		p.opts.Logf("ui: %s:%d: skipped %q: %s", path, is.Line, is.Text, is.Reason)
	}
	return records
}
