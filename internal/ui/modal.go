package ui

import (
	"fmt"

	"github.com/yuanwutong/portfolio/internal/bilingual"
	"github.com/yuanwutong/portfolio/internal/i18n"
)

// ModalKind is the kind of document the modal shows.
type ModalKind string

const (
	ModalProject ModalKind = "project"
	ModalBlog    ModalKind = "blog"
)

// ParseModalKind validates a kind from the browser.
func ParseModalKind(s string) (ModalKind, error) {
	switch ModalKind(s) {
	case ModalProject, ModalBlog:
		return ModalKind(s), nil
	}
	return "", fmt.Errorf("unknown modal kind %q", s)
}

func (k ModalKind) role() i18n.Role {
	if k == ModalBlog {
		return i18n.RoleModalBlog
	}
	return i18n.RoleModalProject
}

// Modal is the shared overlay for project and blog documents.
type Modal struct {
	batch *Batch
	store *Store
	lang  *Language
	open  bool
	kind  ModalKind
	path  string
	seq   int
}

// NewModal creates a hidden modal.
func NewModal(batch *Batch, store *Store, lang *Language) *Modal {
	return &Modal{batch: batch, store: store, lang: lang}
}

// Open shows the overlay for the document at path and locks page scroll.
// The returned ticket must accompany the rendered document in Deliver;
// opening again invalidates earlier tickets.
func (m *Modal) Open(kind ModalKind, path string) int {
	m.open = true
	m.kind = kind
	m.path = path
	m.seq++
	m.batch.add(
		classPatch(IDModal, ClassShow, true),
		classPatch(IDBody, ClassNoScroll, true),
		textPatch(IDModalTag, i18n.T(m.store.State().Lang, kind.role())),
	)
	return m.seq
}

// Deliver injects the classified document for ticket, runs the visibility
// pass and plays the card entrance. Stale tickets and deliveries after
// Close are dropped; Deliver reports whether the document was shown.
func (m *Modal) Deliver(ticket int, block bilingual.Block) bool {
	if !m.open || ticket != m.seq {
		return false
	}
	m.batch.add(htmlPatch(IDModalBody, block.HTML))
	m.lang.Register(IDModalBody, block)
	m.lang.ApplyVisibility()
	m.batch.add(animatePatch(IDModalCard, AnimScaleIn))
	return true
}

// Close hides the overlay and restores page scroll.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.batch.add(
		classPatch(IDModal, ClassShow, false),
		classPatch(IDBody, ClassNoScroll, false),
	)
}

// Relabel updates the tag after a language change.
func (m *Modal) Relabel() {
	if m.open {
		m.batch.add(textPatch(IDModalTag, i18n.T(m.store.State().Lang, m.kind.role())))
	}
}

// IsOpen reports whether the overlay is showing.
func (m *Modal) IsOpen() bool { return m.open }

// Path returns the path of the document last opened.
func (m *Modal) Path() string { return m.path }
