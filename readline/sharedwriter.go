package readline

import (
	"fmt"
	"io"
	"strings"

	"github.com/tuicore/vtengine/gcstring"
	"github.com/tuicore/vtengine/units"
)

type writerSignal int

const (
	signalData writerSignal = iota
	signalPause
	signalResume
	signalFlush
)

type writerMsg struct {
	kind   writerSignal
	data   []byte
	doneCh chan struct{}
}

// SharedWriter is the sender half of a bounded channel whose background
// consumer interleaves producer output with the live readline prompt
// (spec §4.7). Any number of producers may hold a SharedWriter; order is
// preserved per-producer, interleaving between producers is best-effort.
type SharedWriter struct {
	ch chan writerMsg
}

// NewSharedWriter starts the background consumer draining into rl's prompt
// line and returns the writer producers use.
func NewSharedWriter(rl *Readline, capacity int) *SharedWriter {
	sw := &SharedWriter{ch: make(chan writerMsg, capacity)}
	go sw.consume(rl)
	return sw
}

// Write implements io.Writer; writes are queued, never dropped.
func (sw *SharedWriter) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	sw.ch <- writerMsg{kind: signalData, data: cp}
	return len(p), nil
}

// Pause suppresses output; queued and subsequent writes are preserved, not
// dropped, until Resume.
func (sw *SharedWriter) Pause() { sw.ch <- writerMsg{kind: signalPause} }

// Resume re-emits anything queued while paused.
func (sw *SharedWriter) Resume() { sw.ch <- writerMsg{kind: signalResume} }

// Flush blocks until every write queued before this call has been
// consumed.
func (sw *SharedWriter) Flush() {
	done := make(chan struct{})
	sw.ch <- writerMsg{kind: signalFlush, doneCh: done}
	<-done
}

func (sw *SharedWriter) consume(rl *Readline) {
	var paused bool
	var pending [][]byte

	for msg := range sw.ch {
		switch msg.kind {
		case signalPause:
			paused = true
		case signalResume:
			paused = false
			for _, d := range pending {
				printDataAndFlush(rl, d)
			}
			pending = nil
		case signalFlush:
			if msg.doneCh != nil {
				close(msg.doneCh)
			}
		case signalData:
			if paused {
				pending = append(pending, msg.data)
				continue
			}
			printDataAndFlush(rl, msg.data)
		}
	}
}

// printDataAndFlush implements LineState::print_data_and_flush: clear the
// prompt line, reposition past any incomplete previous foreign write, emit
// data with embedded newlines reset to column 0, then redraw the prompt.
func printDataAndFlush(rl *Readline, data []byte) {
	if rl.out == nil {
		return
	}

	io.WriteString(rl.out, "\r\x1b[2K")
	if !rl.state.lastLineCompleted {
		io.WriteString(rl.out, "\x1b[1A\r")
		if rl.state.lastLineLength > 0 {
			io.WriteString(rl.out, fmt.Sprintf("\x1b[%dC", rl.state.lastLineLength))
		}
	}

	text := string(data)
	text = strings.ReplaceAll(text, "\n", "\n\r")
	io.WriteString(rl.out, text)

	rl.state.lastLineCompleted = strings.HasSuffix(string(data), "\n")
	if !rl.state.lastLineCompleted {
		if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
			rl.state.lastLineLength = colWidthOf(text[idx+1:])
		} else {
			rl.state.lastLineLength += colWidthOf(text)
		}
	} else {
		rl.state.lastLineLength = 0
	}

	io.WriteString(rl.out, "\n")
	rl.redraw()
}

func colWidthOf(s string) units.ColWidth {
	return gcstring.New(s).DisplayWidth()
}
