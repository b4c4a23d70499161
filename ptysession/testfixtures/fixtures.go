// Package testfixtures mirrors the original implementation's
// read_lines_and_drain.rs poll-until-EOF-or-deadline harness: drive a
// Session's Events channel under test without hanging forever if the child
// never exits.
package testfixtures

import (
	"time"

	"github.com/tuicore/vtengine/ptysession"
)

// ReadLinesAndDrain collects Output chunks from events until an Exit event
// arrives or deadline elapses, returning the concatenated output and the
// exit code (-1 if the deadline fired first).
func ReadLinesAndDrain(events <-chan ptysession.Event, deadline time.Duration) (output []byte, exitCode int, timedOut bool) {
	timer := time.NewTimer(deadline)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return output, -1, false
			}
			switch ev.Kind {
			case ptysession.EventOutput:
				output = append(output, ev.Output...)
			case ptysession.EventExit:
				return output, ev.Code, false
			}
		case <-timer.C:
			return output, -1, true
		}
	}
}
