// Package ui contains the Bubble Tea program that renders the terminal.
// Model.Update routes each tea.Msg through a typed handler registry so key
// presses, window resizes, finished commands and animation ticks are each
// handled by a focused function.
//
// Message flow:
//   - Key presses become editor inputs (internal/ui/input.go). The editor owns
//     the line buffer and history; the model only reacts to its Result.
//   - Submitted lines go to the shell interpreter. Synchronous output is
//     appended to the scrollback at once. Results with pending work (starting
//     audio) run through the command bus and come back as command.Done.
//   - The party animation is driven by partyTickMsg values. Any key stops it.
//
// While the interpreter holds its guard, key presses are dropped and the
// prompt is hidden, so nothing typed during a running command reaches the
// buffer.
package ui
