//go:build windows

package reactor

import (
	"os"
	"time"

	"golang.org/x/sys/windows"

	"github.com/tuicore/vtengine/units"
)

// eventWaker is the Windows stand-in for the self-pipe: an auto-reset event
// object, signaled to interrupt a blocked wait the same way a self-pipe
// write interrupts select(2). Stubbed per SPEC_FULL's note that the reactor's
// Windows poll source is a future extension point, not yet console-input
// backed.
type eventWaker struct {
	handle windows.Handle
}

func newEventWaker() (*eventWaker, error) {
	h, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		return nil, err
	}
	return &eventWaker{handle: h}, nil
}

func (e *eventWaker) wake()  { _ = windows.SetEvent(e.handle) }
func (e *eventWaker) close() { _ = windows.CloseHandle(e.handle) }

func spawnWorker(gen uint8) *worker {
	w := &worker{gen: gen, subs: make(map[chan Event]*subState)}
	ew, err := newEventWaker()
	if err != nil {
		w.waker = noopWaker{}
	} else {
		w.waker = ew
	}
	go w.pollLoop()
	return w
}

type noopWaker struct{}

func (noopWaker) wake()  {}
func (noopWaker) close() {}

// pollLoop polls console resize on a timer and checks the subscriber count
// once per tick; a true ConPTY-console-input poll is left for a future
// extension (see conpty_windows.go's DSR handshake for the one Windows
// input path this module currently drives).
func (w *worker) pollLoop() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var lastCols units.ColWidth
	var lastRows units.RowHeight
	first := true

	for range ticker.C {
		if w.subscriberCount() == 0 {
			w.waker.close()
			w.markDone()
			return
		}
		cols, rows, ok := queryTerminalSize()
		if !ok {
			continue
		}
		if first || cols != lastCols || rows != lastRows {
			w.broadcast(Event{Kind: EventResize, Cols: cols, Rows: rows})
			lastCols, lastRows = cols, rows
			first = false
		}
	}
}

func queryTerminalSize() (units.ColWidth, units.RowHeight, bool) {
	var info windows.ConsoleScreenBufferInfo
	h := windows.Handle(os.Stdout.Fd())
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return 0, 0, false
	}
	cols := units.ColWidth(info.Window.Right - info.Window.Left + 1)
	rows := units.RowHeight(info.Window.Bottom - info.Window.Top + 1)
	return cols, rows, true
}
