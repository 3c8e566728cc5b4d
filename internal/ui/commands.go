package ui

import (
	"errors"
	"time"

	"github.com/breakeven-llc/business-terminal/internal/logging"
	"github.com/breakeven-llc/business-terminal/internal/logging/events"
	"github.com/breakeven-llc/business-terminal/internal/party"
	"github.com/breakeven-llc/business-terminal/internal/shell"
	"github.com/breakeven-llc/business-terminal/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// partyTickMsg advances the animation; seq ties it to one run so stale ticks
// from an earlier run are ignored.
type partyTickMsg struct {
	seq int
}

// submit hands a line to the interpreter and turns held results into
// follow-up commands.
func (m *Model) submit(line string) tea.Cmd {
	res, err := m.interp.Submit(line)
	if err != nil {
		if !errors.Is(err, shell.ErrBusy) {
			logging.Error(err)
		}
		return nil
	}
	if res.Clear {
		m.scrollback.Clear()
	}
	m.scrollback.AppendLines(res.Lines)
	switch {
	case res.Pending != nil:
		return m.bus.Execute(command.Request{Name: res.Name, Pending: res.Pending})
	case res.Animate:
		return m.startParty()
	}
	return nil
}

func (m *Model) handleCommandDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(command.Done)
	if !ok {
		return nil
	}
	m.scrollback.AppendLines(done.Lines)
	m.interp.Release()
	m.follow = true
	return nil
}

func (m *Model) startParty() tea.Cmd {
	m.animation = party.New()
	m.partySeq++
	events.Party.Start(party.FrameCount())
	return partyTick(m.partySeq)
}

func (m *Model) stopParty() tea.Cmd {
	if m.animation == nil {
		return nil
	}
	events.Party.Stop(m.animation.Ticks())
	m.animation = nil
	m.partySeq++
	m.scrollback.AppendLines(shell.PartyStoppedLines())
	m.interp.Release()
	m.follow = true
	return nil
}

func (m *Model) handlePartyTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(partyTickMsg)
	if !ok || m.animation == nil || tick.seq != m.partySeq {
		return nil
	}
	m.animation.Advance()
	return partyTick(tick.seq)
}

func partyTick(seq int) tea.Cmd {
	return tea.Tick(party.Interval, func(time.Time) tea.Msg {
		return partyTickMsg{seq: seq}
	})
}
