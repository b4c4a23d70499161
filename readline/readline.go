package readline

import (
	"io"

	"github.com/tuicore/vtengine/reactor"
	"github.com/tuicore/vtengine/units"
)

// Outcome is the result of one Readline.ReadLine call.
type Outcome int

const (
	OutcomeLine Outcome = iota
	OutcomeEof
	OutcomeInterrupted
	OutcomeResized
)

// Result pairs an Outcome with the submitted line text (only meaningful for
// OutcomeLine).
type Result struct {
	Outcome Outcome
	Line    string
}

// Readline is a single-line editor driven by reactor key events, coexisting
// with any number of SharedWriter producers.
type Readline struct {
	state   *LineState
	history []string
	histPos int // index into history while navigating; len(history) means "not browsing"

	out io.Writer

	events <-chan reactor.Event
	guard  *reactor.Guard
}

// New constructs a Readline reading from the process-global reactor and
// writing redraws to out.
func New(prompt string, width units.ColWidth, out io.Writer) *Readline {
	ch, guard := reactor.Subscribe()
	rl := &Readline{
		state:  NewLineState(prompt, width),
		out:    out,
		events: ch,
		guard:  guard,
	}
	rl.histPos = 0
	rl.redraw()
	return rl
}

// Close releases the reactor subscription.
func (rl *Readline) Close() { rl.guard.Close() }

func (rl *Readline) AddHistoryEntry(s string) {
	rl.history = append(rl.history, s)
	rl.histPos = len(rl.history)
}

func (rl *Readline) UpdatePrompt(s string) {
	rl.state.SetPrompt(s)
	rl.redraw()
}

// ReadLine blocks on the reactor's event stream, handling keys until a line
// is submitted, Ctrl+C/Ctrl+D fires, or a resize arrives.
func (rl *Readline) ReadLine() Result {
	for ev := range rl.events {
		switch ev.Kind {
		case reactor.EventResize:
			rl.state.SetWidth(ev.Cols)
			rl.redraw()
			return Result{Outcome: OutcomeResized}
		case reactor.EventKey:
			if res, done := rl.handleKey(ev.Key); done {
				return res
			}
		}
	}
	return Result{Outcome: OutcomeEof}
}

func (rl *Readline) handleKey(key string) (Result, bool) {
	switch key {
	case "^C":
		return Result{Outcome: OutcomeInterrupted}, true
	case "^D":
		if rl.state.Text() == "" {
			return Result{Outcome: OutcomeEof}, true
		}
		return Result{}, false
	case "Enter":
		line := rl.state.Text()
		rl.AddHistoryEntry(line)
		rl.state.clear()
		rl.histPos = len(rl.history)
		rl.redraw()
		return Result{Outcome: OutcomeLine, Line: line}, true
	case "Left":
		rl.state.MoveLeft()
	case "Right":
		rl.state.MoveRight()
	case "Home":
		rl.state.Home()
	case "End":
		rl.state.End()
	case "Backspace":
		rl.state.Backspace()
	case "Delete":
		rl.state.Delete()
	case "Up":
		rl.historyPrev()
	case "Down":
		rl.historyNext()
	case "^L":
		rl.redraw()
	default:
		if isPrintable(key) {
			rl.state.InsertAtCursor(key)
		}
	}
	rl.redraw()
	return Result{}, false
}

func isPrintable(key string) bool {
	if len(key) == 0 {
		return false
	}
	if key[0] == '^' || key[0] == 'M' && len(key) > 1 && key[1] == '-' {
		return false
	}
	for _, name := range []string{"Up", "Down", "Left", "Right", "Home", "End",
		"Insert", "Delete", "PageUp", "PageDown", "Escape", "Tab",
		"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12"} {
		if key == name {
			return false
		}
	}
	return true
}

func (rl *Readline) historyPrev() {
	if rl.histPos == 0 {
		return
	}
	rl.histPos--
	rl.loadHistoryAt(rl.histPos)
}

func (rl *Readline) historyNext() {
	if rl.histPos >= len(rl.history) {
		return
	}
	rl.histPos++
	if rl.histPos == len(rl.history) {
		rl.state.clear()
		return
	}
	rl.loadHistoryAt(rl.histPos)
}

func (rl *Readline) loadHistoryAt(i int) {
	rl.state.clear()
	rl.state.InsertAtCursor(rl.history[i])
}

// redraw repaints the prompt and input line in place: return to column 0,
// clear the line, write prompt+text, then position the cursor.
func (rl *Readline) redraw() {
	if rl.out == nil {
		return
	}
	io.WriteString(rl.out, "\r\x1b[2K")
	io.WriteString(rl.out, rl.state.Prompt())
	io.WriteString(rl.out, rl.state.Text())
	col := int(rl.state.Cursor()) + len(rl.state.Prompt())
	io.WriteString(rl.out, "\r")
	if col > 0 {
		io.WriteString(rl.out, "\x1b["+itoa(col)+"C")
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
