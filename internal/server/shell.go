package server

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/yuanwutong/portfolio/internal/i18n"
	"github.com/yuanwutong/portfolio/internal/ui"
)

// shellData feeds pageTemplate.
type shellData struct {
	Lang      string
	Title     string
	Views     []shellView
	Strings   map[string]string
	Particles bool
	CSS       template.CSS
	JS        template.JS
}

type shellView struct {
	Name         string
	ContainerID  string
	TabID        string
	DrawerItemID string
	Label        string
	Active       bool
	Sections     []shellSection
}

type shellSection struct {
	ID        string
	HeadingID string
	Heading   string
	ContentID string
	Carousel  bool
}

var shellTemplate = template.Must(template.New("page").Parse(pageTemplate))

func (s *Server) shell() shellData {
	lang := s.cfg.Page.DefaultLang
	if !lang.Valid() {
		lang = i18n.LangZH
	}

	d := shellData{
		Lang:      lang.HTMLLang(),
		Title:     s.cfg.Title,
		Strings:   map[string]string{},
		Particles: s.cfg.Particles.Enabled,
		CSS:       template.CSS(cssContent),
		JS:        template.JS(jsContent),
	}
	if d.Title == "" {
		d.Title = "Portfolio"
	}
	for _, b := range ui.Bindings() {
		d.Strings[b.ID] = i18n.T(lang, b.Role)
	}
	for i, vl := range ui.Layout {
		v := shellView{
			Name:         string(vl.View),
			ContainerID:  vl.View.ContainerID(),
			TabID:        vl.View.TabID(),
			DrawerItemID: vl.View.DrawerItemID(),
			Label:        i18n.T(lang, vl.Nav),
			Active:       i == 0,
		}
		for _, sec := range vl.Sections {
			v.Sections = append(v.Sections, shellSection{
				ID:        sec.ID,
				HeadingID: sec.HeadingID(),
				Heading:   i18n.T(lang, sec.Heading),
				ContentID: sec.ContentID,
				Carousel:  sec.ContentID == ui.IDProjectStage,
			})
		}
		d.Views = append(d.Views, v)
	}
	return d
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, s.shell()); err != nil {
		log.Printf("server: rendering page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// pageTemplate is the single page. Every element the page controller
// patches carries a stable id.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>{{.CSS}}</style>
</head>
<body>
  {{if .Particles}}<canvas id="bg"></canvas>{{end}}
  <header class="topbar">
    <button class="icon-btn" id="btn-menu" data-event="drawer-toggle">{{index .Strings "btn-menu"}}</button>
    <nav class="tabs">
      {{range .Views}}<button class="tab{{if .Active}} active{{end}}" id="{{.TabID}}" data-event="nav" data-view="{{.Name}}">{{.Label}}</button>
      {{end}}
    </nav>
    <button class="icon-btn" id="btn-lang" data-event="lang-toggle">{{index .Strings "btn-lang"}}</button>
  </header>

  <div class="drawer-backdrop" id="drawer-backdrop" data-event="drawer-close"></div>
  <aside class="drawer" id="drawer">
    {{range .Views}}<button class="drawer-item{{if .Active}} active{{end}}" id="{{.DrawerItemID}}" data-event="drawer-select" data-view="{{.Name}}">{{.Label}}</button>
    {{end}}
  </aside>

  <section class="hero" id="hero">
    <h1 class="hero-title"><span id="typewriter"></span><span class="caret"></span></h1>
    <div class="hero-visual" id="hero-visual"></div>
  </section>

  <main>
    {{range .Views}}
    <div class="view{{if .Active}} active{{end}}" id="{{.ContainerID}}">
      {{range .Sections}}
      <section class="card" id="{{.ID}}">
        <h2 class="section-heading" id="{{.HeadingID}}">{{.Heading}}</h2>
        {{if .Carousel}}
        <div class="carousel">
          <button class="btn" id="btn-prev" data-event="prev">{{index $.Strings "btn-prev"}}</button>
          <div class="project-stage" id="project-stage"></div>
          <button class="btn" id="btn-next" data-event="next">{{index $.Strings "btn-next"}}</button>
        </div>
        <div class="carousel-foot">
          <span id="project-counter"></span>
          <span class="hint" id="hint-wheel">{{index $.Strings "hint-wheel"}}</span>
        </div>
        {{else}}
        <div class="md" id="{{.ContentID}}"></div>
        {{end}}
      </section>
      {{end}}
    </div>
    {{end}}
  </main>

  <div class="modal" id="modal">
    <div class="modal-card" id="modal-card">
      <div class="modal-head">
        <span class="modal-tag" id="modal-tag"></span>
        <button class="icon-btn" id="modal-close" data-event="close">{{index .Strings "modal-close"}}</button>
      </div>
      <div class="md" id="modal-body"></div>
    </div>
  </div>

  <script>{{.JS}}</script>
</body>
</html>`

const cssContent = `
:root { --bg: #f7f7fb; --fg: #1d1d27; --muted: #6b6b7b; --accent: #3a6df0; --card: #ffffff; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, "PingFang SC", "Microsoft YaHei", sans-serif; background: var(--bg); color: var(--fg); }
body.no-scroll { overflow: hidden; }
#bg { position: fixed; inset: 0; width: 100vw; height: 100vh; z-index: -1; }
.topbar { position: sticky; top: 0; display: flex; align-items: center; gap: 12px; padding: 10px 20px; background: rgba(247,247,251,.85); backdrop-filter: blur(8px); z-index: 10; }
.tabs { display: flex; gap: 6px; flex: 1; }
.tab, .drawer-item, .btn, .icon-btn { border: 0; background: none; color: inherit; font: inherit; cursor: pointer; padding: 6px 12px; border-radius: 8px; }
.tab.active, .drawer-item.active { background: var(--accent); color: #fff; }
.btn { background: var(--accent); color: #fff; }
#btn-menu { display: none; }
.hero { padding: 56px 20px 24px; text-align: center; }
.hero-title { font-size: 2.2rem; min-height: 1.4em; }
.caret { display: inline-block; width: 2px; height: 1em; background: var(--fg); margin-left: 4px; animation: blink 1s steps(1) infinite; vertical-align: middle; }
.hero-visual { height: 8px; transition: transform .2s ease-out; }
main { max-width: 920px; margin: 0 auto; padding: 0 20px 60px; }
.view { display: none; }
.view.active { display: block; }
.card { background: var(--card); border-radius: 14px; padding: 20px 24px; margin: 18px 0; box-shadow: 0 4px 18px rgba(0,0,0,.05); }
.section-heading { margin-top: 0; }
.carousel { display: flex; align-items: center; gap: 12px; }
.project-stage { position: relative; flex: 1; min-height: 180px; overflow: hidden; }
.project-card { position: absolute; inset: 0; padding: 18px; border-radius: 12px; background: linear-gradient(135deg, #eef2ff, #fff); }
.project-index, .project-date, .hint, .blog-tagline, .carousel-foot { color: var(--muted); font-size: .9rem; }
.carousel-foot { display: flex; justify-content: space-between; margin-top: 8px; }
.timeline-list { list-style: none; padding: 0; border-left: 2px solid var(--accent); }
.timeline-entry { position: relative; padding: 6px 14px; cursor: pointer; opacity: 0; }
.timeline-entry time { color: var(--muted); margin-right: 8px; }
.timeline-dot { position: absolute; left: -7px; top: 12px; width: 12px; height: 12px; border-radius: 50%; background: var(--accent); }
.blog-list { list-style: none; padding: 0; }
.blog-entry { padding: 12px 0; border-bottom: 1px solid #eee; cursor: pointer; }
.blog-more { color: var(--accent); }
.modal { position: fixed; inset: 0; display: none; align-items: center; justify-content: center; background: rgba(0,0,0,.4); z-index: 20; }
.modal.show { display: flex; }
.modal-card { background: var(--card); width: min(820px, 92vw); max-height: 86vh; overflow: auto; border-radius: 14px; padding: 20px 24px; }
.modal-head { display: flex; justify-content: space-between; align-items: center; }
.modal-tag { background: #eef2ff; color: var(--accent); padding: 2px 10px; border-radius: 999px; font-size: .85rem; }
.drawer { position: fixed; top: 0; left: 0; bottom: 0; width: 240px; background: var(--card); display: flex; flex-direction: column; padding: 20px 10px; transform: translateX(-100%); transition: transform .25s ease; z-index: 30; }
.drawer.open { transform: none; }
.drawer-backdrop { position: fixed; inset: 0; background: rgba(0,0,0,.3); display: none; z-index: 25; }
.drawer-backdrop.show { display: block; }
.md img { max-width: 100%; }
.md pre { overflow: auto; padding: 12px; border-radius: 8px; }
@media (max-width: 720px) { .tabs { display: none; } #btn-menu { display: inline-block; } }

@keyframes blink { 50% { opacity: 0; } }
@keyframes fade-up { from { opacity: 0; transform: translateY(16px); } to { opacity: 1; transform: none; } }
@keyframes enter-from-top { from { opacity: 0; transform: translateY(-40px) rotateX(25deg); } to { opacity: 1; transform: none; } }
@keyframes enter-from-bottom { from { opacity: 0; transform: translateY(40px) rotateX(-25deg); } to { opacity: 1; transform: none; } }
@keyframes exit-to-top { to { opacity: 0; transform: translateY(-40px) rotateX(25deg); } }
@keyframes exit-to-bottom { to { opacity: 0; transform: translateY(40px) rotateX(-25deg); } }
@keyframes slide-in-left { from { opacity: 0; transform: translateX(-24px); } to { opacity: 1; transform: none; } }
@keyframes scale-in { from { transform: scale(.98); } to { transform: scale(1); } }
.anim-fade-up { animation: fade-up .5s ease both; }
.anim-enter-from-top { animation: enter-from-top .45s ease both; }
.anim-enter-from-bottom { animation: enter-from-bottom .45s ease both; }
.anim-exit-to-top { animation: exit-to-top .45s ease both; }
.anim-exit-to-bottom { animation: exit-to-bottom .45s ease both; }
.anim-slide-in-left { animation: slide-in-left .5s ease both; }
.anim-scale-in { animation: scale-in .2s ease both; }
`

// jsContent applies patches from the UI session, forwards interactions as
// events and paints particle frames.
const jsContent = `(function() {
  var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
  var ws = new WebSocket(proto + '//' + location.host + '/ws/ui');

  function send(ev) {
    if (ws.readyState === 1) ws.send(JSON.stringify(ev));
  }

  function target(id) {
    if (id === 'body') return document.body;
    if (id === 'html') return document.documentElement;
    return document.getElementById(id);
  }

  var reveals = new IntersectionObserver(function(entries) {
    entries.forEach(function(e) {
      if (!e.isIntersecting) return;
      reveals.unobserve(e.target);
      send({type: 'reveal', id: e.target.id});
    });
  }, {threshold: 0.16});

  function play(el, name) {
    el.classList.remove('anim-' + name);
    void el.offsetWidth;
    el.classList.add('anim-' + name);
  }

  function apply(p) {
    if (p.op === 'scroll-top') {
      window.scrollTo({top: 0, behavior: 'smooth'});
      return;
    }
    var el = target(p.target);
    if (!el) return;
    switch (p.op) {
    case 'html':
      el.innerHTML = p.html || '';
      el.querySelectorAll('[data-reveal]').forEach(function(n) { reveals.observe(n); });
      break;
    case 'append':
      el.insertAdjacentHTML('beforeend', p.html || '');
      break;
    case 'text':
      el.textContent = p.text || '';
      break;
    case 'visible':
      var nodes = p.selector ? el.querySelectorAll(p.selector) : [el];
      nodes.forEach(function(n) { n.style.display = p.visible ? '' : 'none'; });
      break;
    case 'add-class':
      el.classList.add(p.class);
      break;
    case 'remove-class':
      el.classList.remove(p.class);
      break;
    case 'animate':
      play(el, p.animation);
      break;
    case 'exit':
      el.addEventListener('animationend', function() {
        el.remove();
        send({type: 'animationend', id: p.target});
      }, {once: true});
      play(el, p.animation);
      break;
    case 'remove':
      el.remove();
      break;
    case 'attr':
      el.setAttribute(p.attr, p.value);
      break;
    }
  }

  ws.onopen = function() { send({type: 'ready'}); };
  ws.onmessage = function(e) {
    var msg = JSON.parse(e.data);
    (msg.patches || []).forEach(apply);
  };

  document.addEventListener('click', function(e) {
    if (e.target.id === 'modal') {
      send({type: 'close'});
      return;
    }
    var n = e.target.closest('[data-event]');
    if (!n) return;
    var d = n.dataset;
    send({type: d.event, view: d.view, lang: d.lang, file: d.file, kind: d.kind, path: d.path});
  });

  document.addEventListener('keydown', function(e) {
    if (e.key === 'Escape') send({type: 'close'});
  });

  var stage = document.getElementById('project-stage');
  if (stage) {
    stage.addEventListener('wheel', function(e) {
      e.preventDefault();
      send({type: 'wheel', deltaY: e.deltaY});
    }, {passive: false});
  }

  var hero = document.getElementById('hero');
  var visual = document.getElementById('hero-visual');
  if (hero && visual) {
    hero.addEventListener('mousemove', function(e) {
      var r = hero.getBoundingClientRect();
      var dx = (e.clientX - r.left - r.width / 2) / r.width;
      var dy = (e.clientY - r.top - r.height / 2) / r.height;
      visual.style.transform = 'translate(' + dx * 12 + 'px, ' + dy * 10 + 'px) rotate(' + dx * 2 + 'deg)';
    });
    hero.addEventListener('mouseleave', function() { visual.style.transform = 'none'; });
  }

  var canvas = document.getElementById('bg');
  if (canvas) {
    var g = canvas.getContext('2d');
    var pws = new WebSocket(proto + '//' + location.host + '/ws/particles');
    function resize() {
      canvas.width = window.innerWidth;
      canvas.height = window.innerHeight;
      if (pws.readyState === 1) pws.send(JSON.stringify({type: 'resize', w: canvas.width, h: canvas.height}));
    }
    window.addEventListener('resize', resize);
    pws.onopen = resize;
    resize();
    pws.onmessage = function(e) {
      var f = JSON.parse(e.data);
      g.clearRect(0, 0, canvas.width, canvas.height);
      (f.links || []).forEach(function(l) {
        g.strokeStyle = 'rgba(58,109,240,' + (l.a * 0.35) + ')';
        g.beginPath();
        g.moveTo(l.x1, l.y1);
        g.lineTo(l.x2, l.y2);
        g.stroke();
      });
      (f.dots || []).forEach(function(d) {
        g.fillStyle = 'rgba(58,109,240,' + d.a + ')';
        g.beginPath();
        g.arc(d.x, d.y, d.r, 0, Math.PI * 2);
        g.fill();
      });
    };
  }
})();`
