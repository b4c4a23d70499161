//go:build !windows

package ptysession

import (
	"os"
	"os/exec"

	"github.com/creack/pty"

	"github.com/tuicore/vtengine/units"
)

type unixPty struct {
	f *os.File
}

func (u *unixPty) Read(p []byte) (int, error)  { return u.f.Read(p) }
func (u *unixPty) Write(p []byte) (int, error) { return u.f.Write(p) }
func (u *unixPty) Close() error                { return u.f.Close() }

func (u *unixPty) Resize(cols units.ColWidth, rows units.RowHeight) error {
	return pty.Setsize(u.f, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// startPty spawns cmd attached to a new controller/controlled pty pair
// sized cols x rows (spec §4.6 "Unix lifecycle").
func startPty(cmd *exec.Cmd, cols units.ColWidth, rows units.RowHeight) (ptyConn, error) {
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
	if err != nil {
		return nil, err
	}
	return &unixPty{f: f}, nil
}
