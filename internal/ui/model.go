package ui

import (
	"reflect"

	"github.com/breakeven-llc/business-terminal/internal/editor"
	"github.com/breakeven-llc/business-terminal/internal/party"
	"github.com/breakeven-llc/business-terminal/internal/shell"
	"github.com/breakeven-llc/business-terminal/internal/theme"
	"github.com/breakeven-llc/business-terminal/internal/ui/command"
	uistate "github.com/breakeven-llc/business-terminal/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	promptGlyph       = "$ "
	defaultScrollback = 1000
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the display settings of the terminal.
type Options struct {
	// Width and Height pin the size; resize messages are then ignored.
	Width  int
	Height int
	// InitialWidth and InitialHeight only size the first frame.
	InitialWidth  int
	InitialHeight int
	Scrollback    int
	// Blink enables the blinking caret; tests disable it to avoid timers.
	Blink bool
}

// Model implements the Bubble Tea model for the terminal.
type Model struct {
	editor     *editor.Editor
	interp     *shell.Interpreter
	bus        *command.Bus
	scrollback *uistate.Scrollback

	viewport    viewport.Model
	follow      bool
	cursor      cursor.Model
	cursorDirty bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	animation *party.Animation
	partySeq  int
	quitting  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the terminal with the welcome banner.
func NewModel(interp *shell.Interpreter, opts Options) *Model {
	if interp == nil {
		interp = shell.New(shell.Options{})
	}
	limit := opts.Scrollback
	if limit == 0 {
		limit = defaultScrollback
	}
	m := &Model{
		editor:     editor.New(),
		interp:     interp,
		bus:        command.New(),
		scrollback: uistate.NewScrollback(limit),
		viewport:   viewport.New(0, 0),
		follow:     true,
	}
	switch {
	case opts.Width > 0:
		m.width = opts.Width
		m.fixedWidth = true
	case opts.InitialWidth > 0:
		m.width = opts.InitialWidth
	}
	switch {
	case opts.Height > 0:
		m.height = opts.Height
		m.fixedHeight = true
	case opts.InitialHeight > 0:
		m.height = opts.InitialHeight
	}
	m.syncViewportSize()

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		c.TextStyle = styles.Input.Copy()
	}
	c.SetChar(" ")
	if !opts.Blink {
		c.SetMode(cursor.CursorStatic)
	}
	m.cursor = c

	m.scrollback.Append(bannerEntries(interp.Version())...)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.cursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Close releases resources owned by the terminal session.
func (m *Model) Close() error {
	return m.interp.Close()
}

// Transcript returns the unstyled scrollback, for tests and diagnostics.
func (m *Model) Transcript() []string {
	return m.scrollback.Transcript(promptGlyph)
}

// Buffer returns the current edit buffer.
func (m *Model) Buffer() string { return m.editor.Buffer() }

// History returns the submitted lines.
func (m *Model) History() []string { return m.editor.History().Entries() }

// Busy reports whether a command is still in flight.
func (m *Model) Busy() bool { return m.interp.Busy() }

// Animating reports whether the party animation is running.
func (m *Model) Animating() bool { return m.animation != nil }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Done{}):      m.handleCommandDoneMsg,
		reflect.TypeOf(partyTickMsg{}):      m.handlePartyTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.cursorDirty {
		m.cursorDirty = false
		m.cursor.Blink = false
		if cmd := m.cursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
