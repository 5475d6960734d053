package ui

import (
	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/i18n"
)

// View names a top-level page section group.
type View string

const (
	ViewOverview View = "overview"
	ViewProjects View = "projects"
	ViewBlog     View = "blog"
	ViewResearch View = "research"
)

// ParseView returns the View called name, if there is one.
func ParseView(name string) (View, bool) {
	for _, vl := range Layout {
		if string(vl.View) == name {
			return vl.View, true
		}
	}
	return "", false
}

// ContainerID is the element ID of a view's container.
func (v View) ContainerID() string { return "view-" + string(v) }

// TabID is the element ID of a view's navigation tab.
func (v View) TabID() string { return "tab-" + string(v) }

// DrawerItemID is the element ID of a view's drawer menu entry.
func (v View) DrawerItemID() string { return "drawer-item-" + string(v) }

// Section is a titled block inside a view. Sections with a Source are
// filled from a markdown file; the others are rendered by components.
type Section struct {
	ID        string
	Heading   i18n.Role
	ContentID string
	Source    string
}

// HeadingID is the element ID of the section's heading.
func (s Section) HeadingID() string { return s.ID + "-heading" }

// ViewLayout describes one view.
type ViewLayout struct {
	View     View
	Nav      i18n.Role
	Sections []Section
}

// Layout is the page structure shared by the controller and the HTML
// shell. The first view is active on load.
var Layout = []ViewLayout{
	{
		View: ViewOverview,
		Nav:  i18n.RoleNavOverview,
		Sections: []Section{
			{ID: "section-about", Heading: i18n.RoleHeadingAbout, ContentID: "about-md", Source: content.IntroPath},
			{ID: "section-future", Heading: i18n.RoleHeadingFuture, ContentID: "future-md", Source: content.FuturePath},
		},
	},
	{
		View: ViewProjects,
		Nav:  i18n.RoleNavProjects,
		Sections: []Section{
			{ID: "section-projects", Heading: i18n.RoleHeadingProjects, ContentID: IDProjectStage},
			{ID: "section-timeline", Heading: i18n.RoleHeadingTimeline, ContentID: IDTimeline},
		},
	},
	{
		View: ViewBlog,
		Nav:  i18n.RoleNavBlog,
		Sections: []Section{
			{ID: "section-blog", Heading: i18n.RoleHeadingBlog, ContentID: IDBlogList},
		},
	},
	{
		View: ViewResearch,
		Nav:  i18n.RoleNavResearch,
		Sections: []Section{
			{ID: "section-papers", Heading: i18n.RoleHeadingPapers, ContentID: "papers-md", Source: content.PapersPath},
			{ID: "section-awards", Heading: i18n.RoleHeadingAwards, ContentID: "awards-md", Source: content.AwardsPath},
		},
	},
}

// Binding ties an element to a fixed string role.
type Binding struct {
	ID   string
	Role i18n.Role
}

// chromeBindings are the fixed strings outside of views.
var chromeBindings = []Binding{
	{ID: "btn-prev", Role: i18n.RoleButtonPrev},
	{ID: "btn-next", Role: i18n.RoleButtonNext},
	{ID: "btn-menu", Role: i18n.RoleButtonMenu},
	{ID: "btn-lang", Role: i18n.RoleButtonLang},
	{ID: "hint-wheel", Role: i18n.RoleHintWheel},
	{ID: "modal-close", Role: i18n.RoleButtonClose},
}

// Bindings lists every element whose text the fixed-string pass rewrites.
func Bindings() []Binding {
	var out []Binding
	for _, vl := range Layout {
		out = append(out,
			Binding{ID: vl.View.TabID(), Role: vl.Nav},
			Binding{ID: vl.View.DrawerItemID(), Role: vl.Nav},
		)
		for _, s := range vl.Sections {
			out = append(out, Binding{ID: s.HeadingID(), Role: s.Heading})
		}
	}
	return append(out, chromeBindings...)
}

// StaticSections lists the sections filled from markdown files.
func StaticSections() []Section {
	var out []Section
	for _, vl := range Layout {
		for _, s := range vl.Sections {
			if s.Source != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
