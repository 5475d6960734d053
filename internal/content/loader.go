package content

import (
	"context"
	"fmt"
	"time"
)

// NotFoundMarker appears on its own line in every placeholder document
// produced for a failed load.
const NotFoundMarker = "NOT_FOUND"

// DefaultTimeout bounds a single load when the loader is built without one.
const DefaultTimeout = 10 * time.Second

// Well-known content paths.
const (
	IntroPath       = "projects/intro.md"
	PapersPath      = "projects/papers.md"
	AwardsPath      = "projects/awards.md"
	FuturePath      = "projects/future.md"
	ProjectListPath = "projects/list.txt"
	BlogListPath    = "blog/list.txt"
)

// Loader fetches content text and never fails: errors become a placeholder
// markdown document so every caller always has something to render.
type Loader struct {
	src     Source
	timeout time.Duration
}

// NewLoader creates a Loader over src. A non-positive timeout selects
// DefaultTimeout.
func NewLoader(src Source, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{src: src, timeout: timeout}
}

// Load returns the text at name, or a NOT_FOUND placeholder carrying the
// underlying error message.
func (l *Loader) Load(ctx context.Context, name string) string {
	text, err := l.Fetch(ctx, name)
	if err != nil {
		return NotFound(err)
	}
	return text
}

// Fetch is Load without the placeholder conversion, for callers that want
// to report failures themselves.
func (l *Loader) Fetch(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	data, err := l.src.Fetch(ctx, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NotFound renders the placeholder document for a failed load.
func NotFound(err error) string {
	msg := "not found"
	if err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf("# The page could not be found\n%s\n%s", NotFoundMarker, msg)
}
