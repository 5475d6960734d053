package server

import (
	"encoding/json"
	"log"
	"mime"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/yuanwutong/portfolio/internal/content"
)

// projectsResponse is the JSON response for the projects endpoint.
type projectsResponse struct {
	Projects []content.ProjectRecord `json:"projects"`
	Issues   []content.ParseIssue    `json:"issues"`
}

// blogResponse is the JSON response for the blog endpoint.
type blogResponse struct {
	Posts  []content.BlogRecord `json:"posts"`
	Issues []content.ParseIssue `json:"issues"`
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	resp := projectsResponse{Projects: []content.ProjectRecord{}, Issues: []content.ParseIssue{}}

	raw, err := s.loader.Fetch(r.Context(), content.ProjectListPath)
	if err != nil {
		log.Printf("server: loading %s: %v", content.ProjectListPath, err)
		writeJSON(w, http.StatusOK, resp)
		return
	}
	records, issues := content.ParseProjects(raw)
	if records != nil {
		resp.Projects = records
	}
	if issues != nil {
		resp.Issues = issues
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	resp := blogResponse{Posts: []content.BlogRecord{}, Issues: []content.ParseIssue{}}

	raw, err := s.loader.Fetch(r.Context(), content.BlogListPath)
	if err != nil {
		log.Printf("server: loading %s: %v", content.BlogListPath, err)
		writeJSON(w, http.StatusOK, resp)
		return
	}
	posts, issues := content.ParseBlog(raw)
	if posts != nil {
		resp.Posts = posts
	}
	if issues != nil {
		resp.Issues = issues
	}
	writeJSON(w, http.StatusOK, resp)
}

// serveContent serves raw content files, for links inside rendered
// markdown such as images.
func (s *Server) serveContent(w http.ResponseWriter, r *http.Request) {
	name, err := content.CleanPath(chi.URLParam(r, "*"))
	if err != nil || content.MatchesAny(name, s.excludes()) {
		http.NotFound(w, r)
		return
	}

	data, err := s.cfg.Source.Fetch(r.Context(), name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ct := mime.TypeByExtension(path.Ext(name))
	if ct == "" {
		ct = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.Write(data)
}

func (s *Server) excludes() []string {
	if s.cfg.Exclude != nil {
		return s.cfg.Exclude
	}
	return content.DefaultExcludes
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
