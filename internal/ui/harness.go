package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
// Animation ticks are held back instead of being delivered, so tests step
// the party loop explicitly with Tick.
type Harness struct {
	model *Model
	ticks []tea.Msg
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.deliver(msg)
}

// Type sends each rune of text as a key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a single special key.
func (h *Harness) Press(key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

// Submit types line and presses enter.
func (h *Harness) Submit(line string) {
	h.Type(line)
	h.Press(tea.KeyEnter)
}

// Tick delivers the oldest held animation tick. It reports false when none
// was waiting.
func (h *Harness) Tick() bool {
	if len(h.ticks) == 0 {
		return false
	}
	msg := h.ticks[0]
	h.ticks = h.ticks[1:]
	h.deliver(msg)
	return true
}

// PendingTicks reports how many animation ticks are waiting.
func (h *Harness) PendingTicks() int { return len(h.ticks) }

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool { return h.quit }

func (h *Harness) deliver(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case tea.QuitMsg:
		h.quit = true
	case partyTickMsg:
		h.ticks = append(h.ticks, msg)
	default:
		h.deliver(msg)
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
