package content

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are patterns for editor and VCS noise inside the content
// directory. Changes to matching files never trigger a reload.
var DefaultExcludes = []string{
	".git/**",
	"**/.DS_Store",
	"**/*.swp",
	"**/*~",
	"**/.#*",
	"**/4913",
}

// MatchesAny reports whether relPath matches any of the glob patterns. It
// uses doublestar for ** support and also tries each pattern against the
// base name alone.
func MatchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// Orphans returns markdown files under projects/ and blog/ that no list
// entry or fixed section refers to, sorted by path.
func Orphans(fsys fs.FS, projects []ProjectRecord, posts []BlogRecord) ([]string, error) {
	referenced := map[string]bool{
		IntroPath:  true,
		PapersPath: true,
		AwardsPath: true,
		FuturePath: true,
	}
	for _, p := range projects {
		referenced[p.Path()] = true
	}
	for _, b := range posts {
		referenced[b.Path()] = true
	}

	var orphans []string
	for _, pattern := range []string{"projects/**/*.md", "blog/**/*.md"} {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !referenced[m] && !strings.HasPrefix(filepath.Base(m), ".") {
				orphans = append(orphans, m)
			}
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}
