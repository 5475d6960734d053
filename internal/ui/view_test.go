package ui

import (
	"testing"

	"github.com/yuanwutong/portfolio/internal/i18n"
)

func TestViewSwitchActivatesExactlyOne(t *testing.T) {
	batch := &Batch{}
	s := NewViewSwitcher(batch, newTestStore(i18n.LangZH))

	if !s.Switch(ViewBlog) {
		t.Fatal("switch to blog reported no change")
	}
	patches := batch.Take()
	for _, vl := range Layout {
		on := vl.View == ViewBlog
		for _, id := range []string{vl.View.ContainerID(), vl.View.TabID(), vl.View.DrawerItemID()} {
			if !hasClass(patches, id, ClassActive, on) {
				t.Errorf("%s active=%v not set", id, on)
			}
		}
	}
	if len(find(patches, OpScrollTop, "")) != 1 {
		t.Error("missing scroll to top")
	}
	if a := find(patches, OpAnimate, "section-blog"); len(a) != 1 || a[0].Animation != AnimFadeUp {
		t.Errorf("entrance patches = %+v", a)
	}
	if s.Current() != ViewBlog {
		t.Errorf("current = %q", s.Current())
	}
}

func TestViewReselectScrollsWithoutAnimation(t *testing.T) {
	batch := &Batch{}
	s := NewViewSwitcher(batch, newTestStore(i18n.LangZH))

	if s.Switch(ViewOverview) {
		t.Fatal("reselecting the active view reported a change")
	}
	patches := batch.Take()
	if len(find(patches, OpScrollTop, "")) != 1 {
		t.Error("reselect should still scroll to top")
	}
	for _, p := range patches {
		if p.Op == OpAnimate {
			t.Errorf("unexpected animation %+v", p)
		}
	}
}

func TestViewSwitchIgnoresUnknown(t *testing.T) {
	batch := &Batch{}
	s := NewViewSwitcher(batch, newTestStore(i18n.LangZH))
	if s.Switch(View("contact")) {
		t.Error("unknown view reported a change")
	}
	if batch.Len() != 0 {
		t.Errorf("unknown view emitted %d patches", batch.Len())
	}
}

func TestDrawer(t *testing.T) {
	batch := &Batch{}
	d := NewDrawer(batch, NewViewSwitcher(batch, newTestStore(i18n.LangZH)))

	d.Close()
	if batch.Len() != 0 {
		t.Error("closing a closed drawer emitted patches")
	}
	d.Toggle()
	patches := batch.Take()
	if !d.IsOpen() || !hasClass(patches, IDDrawer, ClassOpen, true) || !hasClass(patches, IDDrawerBackdrop, ClassShow, true) {
		t.Fatalf("drawer not opened: %+v", patches)
	}
	d.Toggle()
	patches = batch.Take()
	if d.IsOpen() || !hasClass(patches, IDDrawer, ClassOpen, false) {
		t.Fatalf("drawer not closed: %+v", patches)
	}
}

func TestDrawerSelect(t *testing.T) {
	batch := &Batch{}
	store := newTestStore(i18n.LangZH)
	d := NewDrawer(batch, NewViewSwitcher(batch, store))

	d.Open()
	if !d.Select(ViewProjects) {
		t.Fatal("select reported no change")
	}
	patches := batch.Take()
	if d.IsOpen() || !hasClass(patches, IDDrawer, ClassOpen, false) {
		t.Error("drawer left open after select")
	}
	if store.State().View != ViewProjects || !hasClass(patches, ViewProjects.ContainerID(), ClassActive, true) {
		t.Errorf("view = %q", store.State().View)
	}
}
