package backend

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tuicore/vtengine/style"
	"github.com/tuicore/vtengine/units"
)

// Capabilities describes what a host terminal (or a non-terminal redirect
// target) supports, adapted from the teacher's TerminalCapabilities struct
// but scoped to this engine's concerns: color depth detection now delegates
// to style.DetectTerminalCapability (termenv) instead of a hand-rolled
// TermType string match, and dimensions come from golang.org/x/term instead
// of a caller-supplied default.
type Capabilities struct {
	mu sync.RWMutex

	IsTerminal bool
	Color      style.TerminalCapability
	Width      units.ColWidth
	Height     units.RowHeight
}

// DetectCapabilities probes fd (typically os.Stdout.Fd()) for terminal-ness,
// size, and color depth. A non-terminal fd (piped/redirected output) gets a
// conservative 80x24 grayscale default.
func DetectCapabilities(f *os.File) *Capabilities {
	c := &Capabilities{Width: 80, Height: 24}

	fd := int(f.Fd())
	c.IsTerminal = term.IsTerminal(fd)
	if !c.IsTerminal {
		return c
	}

	if w, h, err := term.GetSize(fd); err == nil {
		c.Width = units.ColWidth(w)
		c.Height = units.RowHeight(h)
	}
	c.Color = style.DetectTerminalCapability(termenv.NewOutput(f))
	return c
}

func (c *Capabilities) Size() (units.ColWidth, units.RowHeight) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Width, c.Height
}

// SetSize updates the tracked size, called on a reactor resize event.
func (c *Capabilities) SetSize(w units.ColWidth, h units.RowHeight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Width, c.Height = w, h
}
