// Package ansiparser implements the VT100/ANSI byte-stream parser (spec §4.4,
// C6): a state machine that decodes UTF-8 text and escape sequences and
// drives a screen.Buffer, returning the OSC events and DSR responses the
// buffer accumulated while applying them.
package ansiparser

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/tuicore/vtengine/screen"
	"github.com/tuicore/vtengine/style"
	"github.com/tuicore/vtengine/units"
)

type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCString
	stateCharset
)

// Parser decodes a byte stream against a screen.Buffer. It is not
// safe for concurrent use; ptysession serializes reads through one Parser
// per session.
type Parser struct {
	buf   *screen.Buffer
	state parserState

	csiParams    []int
	csiRawParams []string
	csiPrivate   byte
	csiBuf       strings.Builder

	oscCmd int
	oscBuf strings.Builder

	utf8Buf  []byte
	utf8Need int
}

// New creates a parser bound to buf.
func New(buf *screen.Buffer) *Parser {
	return &Parser{buf: buf, csiParams: make([]int, 0, 8)}
}

// ApplyAnsiBytes feeds data through the parser and returns the OSC events and
// DSR responses the underlying buffer accumulated (spec property 7: queues
// are drained once per call).
func (p *Parser) ApplyAnsiBytes(data []byte) ([]screen.OscEvent, []screen.DsrResponse) {
	for _, b := range data {
		p.processByte(b)
	}
	return p.buf.DrainEvents()
}

func (p *Parser) processByte(b byte) {
	if p.utf8Need > 0 {
		if b&0xC0 == 0x80 {
			p.utf8Buf = append(p.utf8Buf, b)
			p.utf8Need--
			if p.utf8Need == 0 {
				r := decodeUTF8(p.utf8Buf)
				if p.state == stateGround {
					p.printRune(r)
				}
				p.utf8Buf = p.utf8Buf[:0]
			}
			return
		}
		p.utf8Buf = p.utf8Buf[:0]
		p.utf8Need = 0
	}

	if p.state == stateGround {
		switch {
		case b&0xE0 == 0xC0:
			p.utf8Buf = append(p.utf8Buf[:0], b)
			p.utf8Need = 1
			return
		case b&0xF0 == 0xE0:
			p.utf8Buf = append(p.utf8Buf[:0], b)
			p.utf8Need = 2
			return
		case b&0xF8 == 0xF0:
			p.utf8Buf = append(p.utf8Buf[:0], b)
			p.utf8Need = 3
			return
		}
	}

	switch p.state {
	case stateGround:
		p.handleGround(b)
	case stateEscape:
		p.handleEscape(b)
	case stateCSI:
		p.handleCSI(b)
	case stateOSC:
		p.handleOSC(b)
	case stateOSCString:
		p.handleOSCString(b)
	case stateCharset:
		p.state = stateGround
	}
}

func decodeUTF8(buf []byte) rune {
	switch len(buf) {
	case 2:
		return rune(buf[0]&0x1F)<<6 | rune(buf[1]&0x3F)
	case 3:
		return rune(buf[0]&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F)
	case 4:
		return rune(buf[0]&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F)
	default:
		return 0xFFFD
	}
}

func (p *Parser) printRune(r rune) {
	p.buf.PutChar(r, runeWidth(r))
}

func (p *Parser) handleGround(b byte) {
	switch b {
	case 0x08:
		p.buf.Backspace()
	case 0x09:
		p.buf.Tab(8)
	case 0x0A, 0x0B, 0x0C:
		p.buf.LineFeed()
	case 0x0D:
		p.buf.CarriageReturn()
	case 0x1B:
		p.state = stateEscape
	default:
		if b >= 0x20 && b < 0x7F {
			p.printRune(rune(b))
		}
	}
}

func (p *Parser) handleEscape(b byte) {
	switch b {
	case '[':
		p.state = stateCSI
		p.csiParams = p.csiParams[:0]
		p.csiRawParams = p.csiRawParams[:0]
		p.csiPrivate = 0
		p.csiBuf.Reset()
	case ']':
		p.state = stateOSC
		p.oscBuf.Reset()
	case '(', ')', '#':
		p.state = stateCharset
	case '7':
		p.buf.SaveCursorPosition()
		p.state = stateGround
	case '8':
		p.buf.RestoreCursorPosition()
		p.state = stateGround
	case 'c':
		p.buf.Clear()
		p.buf.CursorToPosition(0, 0)
		p.buf.SetCurrentStyle(style.TuiStyle{})
		p.state = stateGround
	case 'D':
		p.buf.LineFeed()
		p.state = stateGround
	case 'E':
		p.buf.CarriageReturn()
		p.buf.LineFeed()
		p.state = stateGround
	case 'M':
		p.buf.CursorUp(1)
		p.state = stateGround
	default:
		p.state = stateGround
	}
}

func (p *Parser) handleCSI(b byte) {
	if len(p.csiParams) == 0 && p.csiBuf.Len() == 0 && p.csiPrivate == 0 &&
		(b == '?' || b == '>' || b == '!' || b == '<') {
		p.csiPrivate = b
		return
	}
	if b >= '0' && b <= '9' {
		p.csiBuf.WriteByte(b)
		return
	}
	if b == ';' {
		p.parseCSIParam()
		p.csiBuf.Reset()
		return
	}
	if b == ':' {
		p.csiBuf.WriteByte(b)
		return
	}
	if b >= 0x20 && b <= 0x2F {
		// intermediate byte (e.g. DECSCUSR's space); consumed, not tracked
		// since the engine does not implement cursor-shape reporting.
		p.parseCSIParam()
		return
	}
	p.parseCSIParam()
	p.executeCSI(b)
	p.state = stateGround
}

func (p *Parser) parseCSIParam() {
	s := p.csiBuf.String()
	p.csiRawParams = append(p.csiRawParams, s)
	base := s
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		base = s[:idx]
	}
	n, _ := strconv.Atoi(base)
	p.csiParams = append(p.csiParams, n)
}

func (p *Parser) getParam(idx, def int) int {
	if idx < len(p.csiParams) && p.csiParams[idx] > 0 {
		return p.csiParams[idx]
	}
	return def
}

// runeWidth delegates to uniseg's East Asian Width/combining-mark table, the
// same source gcstring.segmentString uses for cluster widths, so the VT100
// print path and the grapheme-aware text model agree on every code point
// (e.g. combining marks are 0 columns here too, not the 1 a coarse range
// check would give them).
func runeWidth(r rune) units.ColWidth {
	return units.ColWidth(uniseg.RuneWidth(r))
}
