package ui

import "github.com/yuanwutong/portfolio/internal/i18n"

// Topic identifies a kind of state change.
type Topic int

const (
	TopicLanguage Topic = iota
	TopicView
)

// State is the page's mutable UI state.
type State struct {
	Lang  i18n.Lang
	View  View
	Index int
}

// Listener is called with the new state after a change on its topic.
type Listener func(State)

// Store owns State and notifies listeners of changes. It is not safe for
// concurrent use; the page's event loop is its only caller.
type Store struct {
	state State
	subs  map[Topic][]Listener
}

// NewStore creates a Store holding initial.
func NewStore(initial State) *Store {
	return &Store{state: initial, subs: make(map[Topic][]Listener)}
}

// State returns a copy of the current state.
func (s *Store) State() State { return s.state }

// Subscribe registers fn for changes on topic. Listeners run in
// registration order.
func (s *Store) Subscribe(topic Topic, fn Listener) {
	s.subs[topic] = append(s.subs[topic], fn)
}

// SetLanguage replaces the language and notifies listeners, even when the
// value is unchanged: applying a language is idempotent.
func (s *Store) SetLanguage(lang i18n.Lang) {
	s.state.Lang = lang
	s.publish(TopicLanguage)
}

// SetView records the active view. It reports whether the view changed;
// listeners are only notified on change.
func (s *Store) SetView(v View) bool {
	if s.state.View == v {
		return false
	}
	s.state.View = v
	s.publish(TopicView)
	return true
}

// SetIndex records the carousel position.
func (s *Store) SetIndex(i int) {
	s.state.Index = i
}

func (s *Store) publish(topic Topic) {
	for _, fn := range s.subs[topic] {
		fn(s.state)
	}
}
