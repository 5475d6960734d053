package ui

import (
	"strings"
	"testing"

	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/i18n"
)

func newTestStore(lang i18n.Lang) *Store {
	return NewStore(State{Lang: lang, View: ViewOverview})
}

func projects(files ...string) []content.ProjectRecord {
	out := make([]content.ProjectRecord, len(files))
	for i, f := range files {
		out[i] = content.ProjectRecord{File: f, Title: content.NormalizeTitle(f), Index: i}
	}
	return out
}

// find returns the patches matching op and target.
func find(patches []Patch, op Op, target string) []Patch {
	var out []Patch
	for _, p := range patches {
		if p.Op == op && p.Target == target {
			out = append(out, p)
		}
	}
	return out
}

// lastText returns the text most recently set on target.
func lastText(t *testing.T, patches []Patch, target string) string {
	t.Helper()
	ps := find(patches, OpText, target)
	if len(ps) == 0 {
		t.Fatalf("no text patch for %s", target)
	}
	return ps[len(ps)-1].Text
}

func hasClass(patches []Patch, target, class string, on bool) bool {
	op := OpRemoveClass
	if on {
		op = OpAddClass
	}
	for _, p := range find(patches, op, target) {
		if p.Class == class {
			return true
		}
	}
	return false
}

func containsHTML(patches []Patch, target, substr string) bool {
	for _, p := range patches {
		if (p.Op == OpHTML || p.Op == OpAppend) && p.Target == target && strings.Contains(p.HTML, substr) {
			return true
		}
	}
	return false
}
