package ansiparser

import (
	"strconv"
	"strings"
)

func (p *Parser) handleOSC(b byte) {
	if b >= '0' && b <= '9' {
		p.oscBuf.WriteByte(b)
		return
	}
	if b == ';' {
		p.oscCmd, _ = strconv.Atoi(p.oscBuf.String())
		p.oscBuf.Reset()
		p.state = stateOSCString
		return
	}
	p.state = stateGround
}

func (p *Parser) handleOSCString(b byte) {
	if b == 0x07 || b == 0x1B {
		p.executeOSC()
		p.state = stateGround
		return
	}
	p.oscBuf.WriteByte(b)
}

// executeOSC dispatches a complete OSC command: 0/2 set the window title, 8
// opens or closes a hyperlink, and 9;4 reports build/task progress (the
// ConEmu/Windows-Terminal progress protocol, spec §4.4).
func (p *Parser) executeOSC() {
	args := p.oscBuf.String()
	switch p.oscCmd {
	case 0, 2:
		p.buf.SetTitle(args)
	case 8:
		p.executeHyperlink(args)
	case 9:
		p.executeProgress(args)
	}
}

// executeHyperlink parses "params;uri" (OSC 8); an empty uri closes the
// currently active hyperlink.
func (p *Parser) executeHyperlink(args string) {
	parts := strings.SplitN(args, ";", 2)
	uri := ""
	if len(parts) == 2 {
		uri = parts[1]
	}
	p.buf.QueueHyperlink(uri, "")
}

// executeProgress parses "4;state[;percent]" (ConEmu progress protocol):
// state 0 clears, 1 reports a percent, 2 flags a build error, 3 is
// indeterminate.
func (p *Parser) executeProgress(args string) {
	parts := strings.Split(args, ";")
	if len(parts) < 2 || parts[0] != "4" {
		return
	}
	state, _ := strconv.Atoi(parts[1])
	percent := 0
	if len(parts) >= 3 {
		percent, _ = strconv.Atoi(parts[2])
	}
	switch state {
	case 0:
		p.buf.QueueProgress(0, true, false, false)
	case 1:
		p.buf.QueueProgress(percent, false, false, false)
	case 2:
		p.buf.QueueProgress(percent, false, false, true)
	case 3:
		p.buf.QueueProgress(0, false, true, false)
	}
}
