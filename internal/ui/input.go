package ui

import (
	"github.com/breakeven-llc/business-terminal/internal/editor"
	"github.com/breakeven-llc/business-terminal/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// inputForKey maps a key press onto an editor fragment.
func inputForKey(msg tea.KeyMsg) (editor.Input, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return editor.Input{}, false
		}
		return editor.Text(string(msg.Runes)), true
	case tea.KeySpace:
		return editor.Text(" "), true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return editor.Signal(editor.KindBackspace), true
	case tea.KeyEnter:
		return editor.Signal(editor.KindEnter), true
	case tea.KeyUp:
		return editor.Signal(editor.KindHistoryPrev), true
	case tea.KeyDown:
		return editor.Signal(editor.KindHistoryNext), true
	case tea.KeyCtrlC:
		return editor.Signal(editor.KindCancel), true
	case tea.KeyCtrlL:
		return editor.Signal(editor.KindClearScreen), true
	case tea.KeyTab:
		return editor.Signal(editor.KindComplete), true
	}
	return editor.Input{}, false
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.animation != nil {
		events.Editor.Drop(key.String(), events.DropAnimating)
		return m.stopParty()
	}
	if m.interp.Busy() {
		events.Editor.Drop(key.String(), events.DropBusy)
		return nil
	}
	switch key.Type {
	case tea.KeyCtrlD:
		if m.editor.Buffer() != "" {
			return nil
		}
		m.quitting = true
		events.App.Stop("eof")
		return tea.Quit
	case tea.KeyPgUp:
		m.scrollPage(-1)
		return nil
	case tea.KeyPgDown:
		m.scrollPage(1)
		return nil
	}
	in, ok := inputForKey(key)
	if !ok {
		return nil
	}
	return m.apply(in)
}

// apply feeds one fragment through the editor and acts on the outcome.
func (m *Model) apply(in editor.Input) tea.Cmd {
	before := m.editor.Buffer()
	res := m.editor.Apply(in)
	if res.Changed {
		m.cursorDirty = true
	}
	m.follow = true
	switch {
	case res.Submitted:
		m.scrollback.Echo(before)
		events.Editor.Submit(res.Line, m.editor.History().Len())
		return m.submit(res.Line)
	case res.Cancelled:
		m.scrollback.Echo(before + "^C")
		events.Editor.Cancel(res.Abandoned)
	case res.ClearScreen:
		m.scrollback.Clear()
		events.Editor.ClearScreen(m.editor.Buffer())
	case res.Recalled:
		events.Editor.Recall(m.editor.History().Cursor(), m.editor.Buffer())
	case res.CompleteRequested:
		completion, ok := m.interp.Complete(before)
		if ok && m.editor.Replace(completion) {
			m.cursorDirty = true
			events.Editor.Complete(before, completion)
		}
	}
	return nil
}

func (m *Model) scrollPage(direction int) {
	if m.viewport.Height <= 0 {
		return
	}
	m.viewport.SetYOffset(m.viewport.YOffset + direction*m.viewport.Height)
	m.follow = m.viewport.AtBottom()
}
