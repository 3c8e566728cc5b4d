package editor

import "fmt"

// Kind identifies the variant carried by an Input.
type Kind int

const (
	KindText Kind = iota
	KindBackspace
	KindEnter
	KindHistoryPrev
	KindHistoryNext
	KindCancel
	KindClearScreen
	KindComplete
)

var kindNames = map[Kind]string{
	KindText:        "text",
	KindBackspace:   "backspace",
	KindEnter:       "enter",
	KindHistoryPrev: "history-prev",
	KindHistoryNext: "history-next",
	KindCancel:      "cancel",
	KindClearScreen: "clear-screen",
	KindComplete:    "complete",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Input is a single fragment delivered to the editor: either printable text
// or one of the control signals.
type Input struct {
	Kind Kind
	Text string
}

// Text builds a printable-text fragment.
func Text(s string) Input { return Input{Kind: KindText, Text: s} }

// Signal builds a control fragment.
func Signal(kind Kind) Input { return Input{Kind: kind} }

func (in Input) String() string {
	if in.Kind == KindText {
		return fmt.Sprintf("text(%q)", in.Text)
	}
	return in.Kind.String()
}
