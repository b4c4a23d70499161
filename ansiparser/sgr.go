package ansiparser

import (
	"strconv"
	"strings"

	"github.com/tuicore/vtengine/style"
)

// sgrParam mirrors one SGR parameter with its colon-separated subparameters,
// e.g. "38:2:255:128:0" becomes {Base: 38, Subs: [2, 255, 128, 0]}.
type sgrParam struct {
	Base int
	Subs []int
}

func parseSGRParam(raw string) sgrParam {
	if raw == "" {
		return sgrParam{Base: 0}
	}
	parts := strings.Split(raw, ":")
	base, _ := strconv.Atoi(parts[0])
	subs := make([]int, 0, len(parts)-1)
	for _, part := range parts[1:] {
		if part == "" {
			subs = append(subs, -1)
			continue
		}
		n, _ := strconv.Atoi(part)
		subs = append(subs, n)
	}
	return sgrParam{Base: base, Subs: subs}
}

func (p *Parser) executeSGR() {
	if len(p.csiParams) == 0 {
		p.buf.SetCurrentStyle(style.TuiStyle{})
		return
	}

	cur := p.buf.CurrentStyle()
	i := 0
	for i < len(p.csiParams) {
		param := p.csiParams[i]
		switch param {
		case 0:
			cur = style.TuiStyle{}
		case 1:
			cur.Attrs |= style.AttrBold
		case 2:
			cur.Attrs |= style.AttrDim
		case 3:
			cur.Attrs |= style.AttrItalic
		case 4:
			cur.Attrs |= style.AttrUnderline
		case 5, 6:
			cur.Attrs |= style.AttrBlink
		case 7:
			cur.Attrs |= style.AttrInvert
		case 8:
			cur.Attrs |= style.AttrHidden
		case 9:
			cur.Attrs |= style.AttrStrikethrough
		case 21, 22:
			cur.Attrs &^= style.AttrBold | style.AttrDim
		case 23:
			cur.Attrs &^= style.AttrItalic
		case 24:
			cur.Attrs &^= style.AttrUnderline
		case 25:
			cur.Attrs &^= style.AttrBlink
		case 27:
			cur.Attrs &^= style.AttrInvert
		case 28:
			cur.Attrs &^= style.AttrHidden
		case 29:
			cur.Attrs &^= style.AttrStrikethrough

		case 30, 31, 32, 33, 34, 35, 36, 37:
			c := style.Basic(style.BasicColor(param - 30))
			cur.Fg = &c
		case 90, 91, 92, 93, 94, 95, 96, 97:
			c := style.Basic(style.BasicColor(param - 90 + 8))
			cur.Fg = &c
		case 40, 41, 42, 43, 44, 45, 46, 47:
			c := style.Basic(style.BasicColor(param - 40))
			cur.Bg = &c
		case 100, 101, 102, 103, 104, 105, 106, 107:
			c := style.Basic(style.BasicColor(param - 100 + 8))
			cur.Bg = &c

		case 38:
			if c, consumed := p.extendedColor(i); c != nil {
				cur.Fg = c
				i += consumed
			}
		case 48:
			if c, consumed := p.extendedColor(i); c != nil {
				cur.Bg = c
				i += consumed
			}
		case 39:
			cur.Fg = nil
		case 49:
			cur.Bg = nil
		}
		i++
	}
	p.buf.SetCurrentStyle(cur)
}

// extendedColor parses SGR 38/48 in either colon-subparameter form
// (38:5:N, 38:2:[cs]:R:G:B) or legacy semicolon form (38;5;N, 38;2;R;G;B),
// returning the parsed color and how many extra semicolon-separated params
// it consumed (0 for the subparameter form, since those live in one raw
// param string).
func (p *Parser) extendedColor(i int) (*style.TuiColor, int) {
	if i < len(p.csiRawParams) {
		sub := parseSGRParam(p.csiRawParams[i])
		if len(sub.Subs) >= 2 && sub.Subs[0] == 5 {
			c := style.ANSI256(uint8(sub.Subs[1]))
			return &c, 0
		}
		if len(sub.Subs) >= 4 && sub.Subs[0] == 2 {
			var r, g, b int
			if len(sub.Subs) >= 5 {
				r, g, b = sub.Subs[2], sub.Subs[3], sub.Subs[4]
			} else {
				r, g, b = sub.Subs[1], sub.Subs[2], sub.Subs[3]
			}
			c := style.RGB(uint8(r), uint8(g), uint8(b))
			return &c, 0
		}
	}
	if i+2 < len(p.csiParams) && p.csiParams[i+1] == 5 {
		c := style.ANSI256(uint8(p.csiParams[i+2]))
		return &c, 2
	}
	if i+4 < len(p.csiParams) && p.csiParams[i+1] == 2 {
		c := style.RGB(uint8(p.csiParams[i+2]), uint8(p.csiParams[i+3]), uint8(p.csiParams[i+4]))
		return &c, 4
	}
	return nil, 0
}
