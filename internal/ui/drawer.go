package ui

// Drawer is the slide-in navigation panel used on narrow screens.
type Drawer struct {
	batch *Batch
	views *ViewSwitcher
	open  bool
}

// NewDrawer creates a closed drawer whose items drive views.
func NewDrawer(batch *Batch, views *ViewSwitcher) *Drawer {
	return &Drawer{batch: batch, views: views}
}

// IsOpen reports whether the drawer is showing.
func (d *Drawer) IsOpen() bool { return d.open }

// Open slides the drawer in.
func (d *Drawer) Open() { d.set(true) }

// Close slides the drawer out. Closing a closed drawer emits nothing.
func (d *Drawer) Close() {
	if d.open {
		d.set(false)
	}
}

// Select switches to v and closes the drawer.
func (d *Drawer) Select(v View) bool {
	changed := d.views.Switch(v)
	d.Close()
	return changed
}

// Toggle flips the drawer.
func (d *Drawer) Toggle() { d.set(!d.open) }

func (d *Drawer) set(open bool) {
	d.open = open
	d.batch.add(
		classPatch(IDDrawer, ClassOpen, open),
		classPatch(IDDrawerBackdrop, ClassShow, open),
	)
}
