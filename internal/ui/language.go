package ui

import (
	"fmt"

	"github.com/yuanwutong/portfolio/internal/bilingual"
	"github.com/yuanwutong/portfolio/internal/i18n"
)

// VisibilityPolicy decides which language fragments are shown.
type VisibilityPolicy string

const (
	// PolicyExclusive shows only fragments in the current language. A block
	// with nothing in the current language shows everything it has.
	PolicyExclusive VisibilityPolicy = "exclusive"
	// PolicyLegacy is the site's original asymmetric behavior and keeps
	// Chinese mode bilingual: zh shows both languages, en shows only
	// English.
	PolicyLegacy VisibilityPolicy = "legacy"
)

// ParseVisibilityPolicy validates a configured policy name.
func ParseVisibilityPolicy(s string) (VisibilityPolicy, error) {
	switch VisibilityPolicy(s) {
	case PolicyExclusive, PolicyLegacy:
		return VisibilityPolicy(s), nil
	case "":
		return PolicyExclusive, nil
	}
	return "", fmt.Errorf("invalid visibility policy %q: must be exclusive or legacy", s)
}

// Visible reports which fragment languages of block are shown in lang.
func (p VisibilityPolicy) Visible(lang i18n.Lang, block bilingual.Block) (zh, en bool) {
	if p == PolicyLegacy {
		return lang == i18n.LangZH, true
	}
	if !block.Has(lang) {
		return true, true
	}
	return lang == i18n.LangZH, lang == i18n.LangEN
}

// Language applies the current language to the page: fragment visibility
// for every registered block and the fixed strings of every binding.
type Language struct {
	batch    *Batch
	store    *Store
	policy   VisibilityPolicy
	bindings []Binding
	blocks   map[string]bilingual.Block
	order    []string
}

// NewLanguage creates the language applier.
func NewLanguage(batch *Batch, store *Store, policy VisibilityPolicy, bindings []Binding) *Language {
	return &Language{
		batch:    batch,
		store:    store,
		policy:   policy,
		bindings: bindings,
		blocks:   make(map[string]bilingual.Block),
	}
}

// Set switches the language. Listeners, including this applier, rerender.
func (l *Language) Set(lang i18n.Lang) {
	l.store.SetLanguage(lang)
}

// Toggle switches to the other language.
func (l *Language) Toggle() {
	l.Set(l.store.State().Lang.Other())
}

// Register records the classified block now displayed in containerID,
// replacing whatever was there.
func (l *Language) Register(containerID string, block bilingual.Block) {
	if _, ok := l.blocks[containerID]; !ok {
		l.order = append(l.order, containerID)
	}
	l.blocks[containerID] = block
}

// Apply runs the visibility pass and the fixed-string pass.
func (l *Language) Apply() {
	l.ApplyVisibility()
	l.ApplyStrings()
}

// ApplyVisibility shows and hides tagged fragments in every registered
// block.
func (l *Language) ApplyVisibility() {
	lang := l.store.State().Lang
	for _, id := range l.order {
		zh, en := l.policy.Visible(lang, l.blocks[id])
		l.batch.add(
			Patch{Op: OpVisible, Target: id, Selector: langSelector(i18n.LangZH), Visible: zh},
			Patch{Op: OpVisible, Target: id, Selector: langSelector(i18n.LangEN), Visible: en},
		)
	}
}

// ApplyStrings overwrites every bound element with its translation.
func (l *Language) ApplyStrings() {
	lang := l.store.State().Lang
	l.batch.add(Patch{Op: OpAttr, Target: IDDocument, Attr: "lang", Value: lang.HTMLLang()})
	for _, b := range l.bindings {
		l.batch.add(textPatch(b.ID, i18n.T(lang, b.Role)))
	}
}

func langSelector(lang i18n.Lang) string {
	return fmt.Sprintf("[%s=%q]", bilingual.LangAttr, lang)
}
