package screen

// QueueProgress records an OSC 9;4 progress update (percent in [0,100]),
// an indeterminate spinner state, a cleared state, or a build-error state.
func (b *Buffer) QueueProgress(percent int, cleared bool, indeterminate bool, buildError bool) {
	switch {
	case buildError:
		b.queueOsc(OscEvent{Kind: OscBuildError})
	case cleared:
		b.queueOsc(OscEvent{Kind: OscProgressCleared})
	case indeterminate:
		b.queueOsc(OscEvent{Kind: OscIndeterminateProgress})
	default:
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		b.queueOsc(OscEvent{Kind: OscProgressUpdate, Percent: uint8(percent)})
	}
}

// QueueHyperlink records an OSC 8 hyperlink open/close and updates the
// buffer's active hyperlink so subsequently printed cells carry its URI.
func (b *Buffer) QueueHyperlink(uri, text string) {
	b.SetActiveHyperlink(uri)
	b.queueOsc(OscEvent{Kind: OscHyperlink, URI: uri, Text: text})
}

// RequestTerminalStatus queues the DSR reply for "are you OK?" (CSI 5n).
func (b *Buffer) RequestTerminalStatus() {
	b.queueDsr(DsrResponse{Kind: DsrTerminalStatus})
}

// RequestCursorPosition queues the DSR reply for CSI 6n, reporting the
// cursor as 1-based row/column.
func (b *Buffer) RequestCursorPosition() {
	b.queueDsr(DsrResponse{
		Kind: DsrCursorPosition,
		Row:  int(b.cursorRow) + 1,
		Col:  int(b.cursorCol) + 1,
	})
}
