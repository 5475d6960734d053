package ui

// Event types sent by the browser, plus reload which the server injects
// when content files change.
const (
	EventReady        = "ready"
	EventReload       = "reload"
	EventNav          = "nav"
	EventLang         = "lang"
	EventLangToggle   = "lang-toggle"
	EventNext         = "next"
	EventPrev         = "prev"
	EventWheel        = "wheel"
	EventJump         = "jump"
	EventOpen         = "open"
	EventClose        = "close"
	EventDrawerToggle = "drawer-toggle"
	EventDrawerClose  = "drawer-close"
	EventDrawerSelect = "drawer-select"
	EventReveal       = "reveal"
	EventAnimationEnd = "animationend"
)

// Event is one user interaction.
type Event struct {
	Type   string  `json:"type"`
	View   string  `json:"view,omitempty"`
	Lang   string  `json:"lang,omitempty"`
	File   string  `json:"file,omitempty"`
	Kind   string  `json:"kind,omitempty"`
	Path   string  `json:"path,omitempty"`
	ID     string  `json:"id,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
}
