package ui

// ViewSwitcher keeps exactly one view visible and the navigation controls
// in sync with it.
type ViewSwitcher struct {
	batch *Batch
	store *Store
}

// NewViewSwitcher creates a switcher over Layout.
func NewViewSwitcher(batch *Batch, store *Store) *ViewSwitcher {
	return &ViewSwitcher{batch: batch, store: store}
}

// Switch activates v. It always scrolls to the top; the entrance
// animation on the view's first section plays only when the view changed.
// Switch reports whether the view changed.
func (s *ViewSwitcher) Switch(v View) bool {
	if _, ok := ParseView(string(v)); !ok {
		return false
	}

	for _, vl := range Layout {
		on := vl.View == v
		s.batch.add(
			classPatch(vl.View.ContainerID(), ClassActive, on),
			classPatch(vl.View.TabID(), ClassActive, on),
			classPatch(vl.View.DrawerItemID(), ClassActive, on),
		)
	}
	s.batch.add(Patch{Op: OpScrollTop})

	changed := s.store.SetView(v)
	if changed {
		if id := firstSection(v); id != "" {
			s.batch.add(animatePatch(id, AnimFadeUp))
		}
	}
	return changed
}

// Current returns the active view.
func (s *ViewSwitcher) Current() View {
	return s.store.State().View
}

func firstSection(v View) string {
	for _, vl := range Layout {
		if vl.View == v && len(vl.Sections) > 0 {
			return vl.Sections[0].ID
		}
	}
	return ""
}
