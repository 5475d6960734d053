package ui

import (
	"bytes"
	"html/template"
)

var fragments = template.Must(template.New("fragments").Parse(`
{{define "card"}}<article id="{{.ID}}" class="project-card" data-file="{{.Record.File}}">{{template "card-body" .}}</article>{{end}}

{{define "card-body"}}<div class="project-card-inner">
  <span class="project-index">{{.Position}} / {{.Count}}</span>
  <h3 class="project-title">{{.Record.Title}}</h3>
  {{- if .Record.Date}}
  <time class="project-date">{{.Record.Date}}</time>
  {{- end}}
  <button class="btn" data-event="open" data-kind="project" data-path="{{.Record.Path}}">{{.Open}}</button>
</div>{{end}}

{{define "empty"}}<p class="project-empty">{{.}}</p>{{end}}

{{define "timeline"}}<ol class="timeline-list">
{{- range .}}
  <li id="{{.ID}}" class="timeline-entry" data-event="jump" data-file="{{.Record.File}}" data-reveal>
    <span class="timeline-dot"></span>
    {{- if .Record.Date}}<time>{{.Record.Date}}</time>{{end}}
    <span class="timeline-title">{{.Record.Title}}</span>
  </li>
{{- end}}
</ol>{{end}}

{{define "blog"}}<ul class="blog-list">
{{- range .Posts}}
  <li class="blog-entry" data-event="open" data-kind="blog" data-path="{{.Path}}">
    <h3>{{.Title}}</h3>
    {{- if .Tagline}}
    <p class="blog-tagline">{{.Tagline}}</p>
    {{- end}}
    <span class="blog-more">{{$.ReadMore}}</span>
  </li>
{{- end}}
</ul>{{end}}
`))

func execute(name string, data any) string {
	var buf bytes.Buffer
	// Templates are fixed and data is plain structs, so execution cannot
	// fail short of a programming error.
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		panic("ui: executing " + name + ": " + err.Error())
	}
	return buf.String()
}
