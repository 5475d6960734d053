// Package ui holds the page controller: the server-side model of the
// portfolio's single page. Components never touch a DOM; they emit patches
// that the browser applies.
package ui

// Op is a patch operation understood by the browser-side applier.
type Op string

const (
	// OpHTML replaces the inner HTML of Target.
	OpHTML Op = "html"
	// OpAppend appends HTML to Target.
	OpAppend Op = "append"
	// OpText replaces the text content of Target.
	OpText Op = "text"
	// OpVisible shows or hides Target, or the elements matching Selector
	// inside Target.
	OpVisible     Op = "visible"
	OpAddClass    Op = "add-class"
	OpRemoveClass Op = "remove-class"
	// OpAnimate plays a one-shot animation on Target.
	OpAnimate Op = "animate"
	// OpExit plays Animation on Target and removes it once the animation
	// ends. The browser acknowledges with an animationend event.
	OpExit   Op = "exit"
	OpRemove Op = "remove"
	OpAttr   Op = "attr"
	// OpScrollTop smoothly scrolls the window to the top.
	OpScrollTop Op = "scroll-top"
)

// Patch is one DOM mutation.
type Patch struct {
	Op        Op     `json:"op"`
	Target    string `json:"target,omitempty"`
	Selector  string `json:"selector,omitempty"`
	HTML      string `json:"html,omitempty"`
	Text      string `json:"text,omitempty"`
	Class     string `json:"class,omitempty"`
	Animation string `json:"animation,omitempty"`
	Attr      string `json:"attr,omitempty"`
	Value     string `json:"value,omitempty"`
	Visible   bool   `json:"visible"`
}

// Sink receives batches of patches, one batch per handled event.
type Sink interface {
	Send(patches []Patch) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(patches []Patch) error

// Send implements Sink.
func (f SinkFunc) Send(patches []Patch) error { return f(patches) }

// Batch collects patches until the page flushes them.
type Batch struct {
	patches []Patch
}

func (b *Batch) add(p ...Patch) {
	b.patches = append(b.patches, p...)
}

// Len returns the number of pending patches.
func (b *Batch) Len() int { return len(b.patches) }

// Take returns the pending patches and empties the batch.
func (b *Batch) Take() []Patch {
	out := b.patches
	b.patches = nil
	return out
}

func htmlPatch(target, html string) Patch {
	return Patch{Op: OpHTML, Target: target, HTML: html}
}

func textPatch(target, text string) Patch {
	return Patch{Op: OpText, Target: target, Text: text}
}

func classPatch(target, class string, on bool) Patch {
	op := OpRemoveClass
	if on {
		op = OpAddClass
	}
	return Patch{Op: op, Target: target, Class: class}
}

func animatePatch(target, animation string) Patch {
	return Patch{Op: OpAnimate, Target: target, Animation: animation}
}

// Animation names, matched by keyframes in the page stylesheet.
const (
	AnimFadeUp          = "fade-up"
	AnimEnterFromTop    = "enter-from-top"
	AnimEnterFromBottom = "enter-from-bottom"
	AnimExitToTop       = "exit-to-top"
	AnimExitToBottom    = "exit-to-bottom"
	AnimSlideInLeft     = "slide-in-left"
	AnimScaleIn         = "scale-in"
)

// Fixed element IDs the page shell provides.
const (
	IDBody           = "body"
	IDDocument       = "html"
	IDTypewriter     = "typewriter"
	IDProjectStage   = "project-stage"
	IDProjectCounter = "project-counter"
	IDTimeline       = "timeline"
	IDBlogList       = "blog-list"
	IDModal          = "modal"
	IDModalCard      = "modal-card"
	IDModalTag       = "modal-tag"
	IDModalBody      = "modal-body"
	IDDrawer         = "drawer"
	IDDrawerBackdrop = "drawer-backdrop"
)

// Class names toggled by components.
const (
	ClassActive   = "active"
	ClassOpen     = "open"
	ClassShow     = "show"
	ClassNoScroll = "no-scroll"
)
