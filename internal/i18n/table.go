package i18n

// Role names a piece of fixed page chrome whose text comes from the
// translation table rather than from content files.
type Role string

const (
	RoleNavOverview Role = "nav.overview"
	RoleNavProjects Role = "nav.projects"
	RoleNavBlog     Role = "nav.blog"
	RoleNavResearch Role = "nav.research"

	RoleHeadingAbout    Role = "heading.about"
	RoleHeadingPapers   Role = "heading.papers"
	RoleHeadingAwards   Role = "heading.awards"
	RoleHeadingFuture   Role = "heading.future"
	RoleHeadingProjects Role = "heading.projects"
	RoleHeadingTimeline Role = "heading.timeline"
	RoleHeadingBlog     Role = "heading.blog"

	RoleButtonPrev     Role = "button.prev"
	RoleButtonNext     Role = "button.next"
	RoleButtonOpen     Role = "button.open"
	RoleButtonClose    Role = "button.close"
	RoleButtonMenu     Role = "button.menu"
	RoleButtonLang     Role = "button.lang"
	RoleButtonReadMore Role = "button.read_more"

	RoleHintWheel Role = "hint.wheel"
	RoleHintEmpty Role = "hint.empty"

	RoleModalProject Role = "modal.project"
	RoleModalBlog    Role = "modal.blog"
)

var catalogs = map[Lang]map[Role]string{
	LangZH: zh,
	LangEN: en,
}

var zh = map[Role]string{
	RoleNavOverview: "概览",
	RoleNavProjects: "项目",
	RoleNavBlog:     "博客",
	RoleNavResearch: "研究",

	RoleHeadingAbout:    "关于我",
	RoleHeadingPapers:   "论文",
	RoleHeadingAwards:   "获奖",
	RoleHeadingFuture:   "未来方向",
	RoleHeadingProjects: "项目",
	RoleHeadingTimeline: "时间线",
	RoleHeadingBlog:     "博客文章",

	RoleButtonPrev:     "上一个",
	RoleButtonNext:     "下一个",
	RoleButtonOpen:     "查看详情",
	RoleButtonClose:    "关闭",
	RoleButtonMenu:     "菜单",
	RoleButtonLang:     "English",
	RoleButtonReadMore: "阅读全文",

	RoleHintWheel: "滚动鼠标滚轮切换项目",
	RoleHintEmpty: "暂无项目",

	RoleModalProject: "项目",
	RoleModalBlog:    "博客",
}

var en = map[Role]string{
	RoleNavOverview: "Overview",
	RoleNavProjects: "Projects",
	RoleNavBlog:     "Blog",
	RoleNavResearch: "Research",

	RoleHeadingAbout:    "About",
	RoleHeadingPapers:   "Papers",
	RoleHeadingAwards:   "Awards",
	RoleHeadingFuture:   "Future Directions",
	RoleHeadingProjects: "Projects",
	RoleHeadingTimeline: "Timeline",
	RoleHeadingBlog:     "Posts",

	RoleButtonPrev:     "Previous",
	RoleButtonNext:     "Next",
	RoleButtonOpen:     "Open",
	RoleButtonClose:    "Close",
	RoleButtonMenu:     "Menu",
	RoleButtonLang:     "中文",
	RoleButtonReadMore: "Read more",

	RoleHintWheel: "Scroll to browse projects",
	RoleHintEmpty: "No projects yet",

	RoleModalProject: "Project",
	RoleModalBlog:    "Blog",
}

// T returns the fixed string for role in lang. Missing entries fall back to
// the role name so gaps in the table show up on the page.
func T(lang Lang, role Role) string {
	if cat, ok := catalogs[lang]; ok {
		if v, ok := cat[role]; ok {
			return v
		}
	}
	return string(role)
}
