package ui

import (
	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/i18n"
)

// BlogList renders the list of posts; each entry opens the modal.
type BlogList struct {
	batch  *Batch
	store  *Store
	posts  []content.BlogRecord
	loaded bool
}

// NewBlogList creates an empty blog list.
func NewBlogList(batch *Batch, store *Store) *BlogList {
	return &BlogList{batch: batch, store: store}
}

// Build replaces the list.
func (b *BlogList) Build(posts []content.BlogRecord) {
	b.posts = posts
	b.loaded = true
	b.render()
}

// Refresh re-renders the list for the current language.
func (b *BlogList) Refresh() {
	if b.loaded {
		b.render()
	}
}

// Posts returns the loaded posts.
func (b *BlogList) Posts() []content.BlogRecord { return b.posts }

func (b *BlogList) render() {
	data := struct {
		Posts    []content.BlogRecord
		ReadMore string
	}{
		Posts:    b.posts,
		ReadMore: i18n.T(b.store.State().Lang, i18n.RoleButtonReadMore),
	}
	b.batch.add(htmlPatch(IDBlogList, execute("blog", data)))
}
