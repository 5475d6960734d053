package content

import (
	"strings"
)

// ProjectRecord is one entry of projects/list.txt.
type ProjectRecord struct {
	File  string `json:"file"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Index int    `json:"index"`
}

// Path returns the content path of the project's markdown file.
func (p ProjectRecord) Path() string {
	return ProjectPath(p.File)
}

// BlogRecord is one entry of blog/list.txt.
type BlogRecord struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
}

// Path returns the content path of the post's markdown file.
func (b BlogRecord) Path() string {
	return BlogPath(b.Slug)
}

// ParseIssue describes a list line that was skipped.
type ParseIssue struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// ParseProjects parses a project list: one "file.md | title | date" record
// per line with title and date optional. Blank lines are ignored; lines
// without a file are skipped and reported.
func ParseProjects(raw string) ([]ProjectRecord, []ParseIssue) {
	var (
		records []ProjectRecord
		issues  []ParseIssue
	)
	for n, line := range splitLines(raw) {
		if line == "" {
			continue
		}
		fields := splitFields(line)
		file := fields[0]
		if file == "" {
			issues = append(issues, ParseIssue{Line: n + 1, Text: line, Reason: "missing file name"})
			continue
		}
		rec := ProjectRecord{
			File:  file,
			Title: field(fields, 1),
			Date:  field(fields, 2),
			Index: len(records),
		}
		if rec.Title == "" {
			rec.Title = NormalizeTitle(file)
		}
		records = append(records, rec)
	}
	return records, issues
}

// ParseBlog parses a blog list: one "slug | title | tagline" record per
// line. Lines with an empty slug are skipped and reported.
func ParseBlog(raw string) ([]BlogRecord, []ParseIssue) {
	var (
		records []BlogRecord
		issues  []ParseIssue
	)
	for n, line := range splitLines(raw) {
		if line == "" {
			continue
		}
		fields := splitFields(line)
		slug := fields[0]
		if slug == "" {
			issues = append(issues, ParseIssue{Line: n + 1, Text: line, Reason: "missing slug"})
			continue
		}
		rec := BlogRecord{
			Slug:    slug,
			Title:   field(fields, 1),
			Tagline: field(fields, 2),
		}
		if rec.Title == "" {
			rec.Title = NormalizeTitle(slug)
		}
		records = append(records, rec)
	}
	return records, issues
}

// NormalizeTitle derives a display title from a file name or slug:
// "flex_sensor.md" becomes "flex sensor".
func NormalizeTitle(name string) string {
	name = strings.TrimSuffix(name, ".md")
	return strings.ReplaceAll(name, "_", " ")
}

// ProjectPath returns the content path for a project file name.
func ProjectPath(file string) string {
	return "projects/" + strings.TrimPrefix(file, "/")
}

// BlogPath returns the content path for a blog slug.
func BlogPath(slug string) string {
	slug = strings.TrimPrefix(slug, "/")
	if !strings.HasSuffix(slug, ".md") {
		slug += ".md"
	}
	return "blog/" + slug
}

func splitLines(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

func splitFields(line string) []string {
	fields := strings.Split(line, "|")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
