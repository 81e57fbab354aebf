package modeswitch

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/hasbyte1/go-selector/selector"
)

// Model is a Bubble Tea model wrapping a [selector.List].
type Model[T comparable] struct {
	list   *selector.List[T]
	keys   KeyMap
	styles Styles
	sep    string
	label  func(T) string
	width  int
}

// Option configures a [Model].
type Option func(*options)

type options struct {
	keys   KeyMap
	styles Styles
	sep    string
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option { return func(o *options) { o.keys = k } }

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option { return func(o *options) { o.styles = s } }

// WithSeparator sets the text drawn between items. The default is "│".
func WithSeparator(sep string) Option { return func(o *options) { o.sep = sep } }

// New wraps list. The list is shared, not copied: changes made through the
// model are visible to the caller and vice versa.
func New[T comparable](list *selector.List[T], opts ...Option) *Model[T] {
	o := options{keys: DefaultKeyMap(), styles: DefaultStyles(), sep: "│"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Model[T]{
		list:   list,
		keys:   o.keys,
		styles: o.styles,
		sep:    o.sep,
		label:  func(item T) string { return fmt.Sprint(item) },
	}
}

// SetLabel sets how an item is turned into its tab text and returns m.
// A nil fn restores the default, fmt.Sprint.
func (m *Model[T]) SetLabel(fn func(T) string) *Model[T] {
	if fn == nil {
		fn = func(item T) string { return fmt.Sprint(item) }
	}
	m.label = fn
	return m
}

// List returns the wrapped list.
func (m *Model[T]) List() *selector.List[T] { return m.list }

// Current returns the current item of the wrapped list.
func (m *Model[T]) Current() T { return m.list.Current() }

// Init implements tea.Model. The model needs no startup command.
func (m *Model[T]) Init() tea.Cmd { return nil }

// Update moves the selection on bound keys and records the terminal width.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		m.handleKey(msg)
	}
	return m, nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	switch {
	case matches(msg, m.keys.Prev):
		m.list.Step(-1)
	case matches(msg, m.keys.Next):
		m.list.Step(1)
	default:
		if i, ok := digit(msg); ok && m.keys.Jump {
			// digits past the end are ignored
			_ = m.list.Select(i)
		}
	}
}

// View renders the items as a single-line tab bar. When the width is known
// the bar is clipped to it instead of wrapping.
func (m *Model[T]) View() string {
	items := m.list.All()
	tabs := make([]string, len(items))
	for i, item := range items {
		if i == m.list.Index() {
			tabs[i] = m.styles.Active.Render(m.label(item))
		} else {
			tabs[i] = m.styles.Inactive.Render(m.label(item))
		}
	}
	bar := strings.Join(tabs, m.styles.Separator.Render(m.sep))
	if m.width <= 0 {
		return m.styles.Bar.Render(bar)
	}
	bar = ansi.Truncate(bar, m.width, "…")
	return m.styles.Bar.Inline(true).Width(m.width).MaxWidth(m.width).Render(bar)
}
