//go:build windows

package ptysession

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"unsafe"

	"github.com/tuicore/vtengine/units"
)

var (
	kernel32                = syscall.NewLazyDLL("kernel32.dll")
	procCreatePseudoConsole = kernel32.NewProc("CreatePseudoConsole")
	procResizePseudoConsole = kernel32.NewProc("ResizePseudoConsole")
	procClosePseudoConsole  = kernel32.NewProc("ClosePseudoConsole")
)

type coord struct {
	X int16
	Y int16
}

type hpcon syscall.Handle

// conPty implements ptyConn on Windows via the ConPTY API, adapted from the
// teacher's ConPTY struct: two pipe pairs (input, output) bridging the
// pseudo console to the child process.
type conPty struct {
	mu      sync.Mutex
	hpc     hpcon
	pipeIn  *os.File
	pipeOut *os.File
}

func newConPty(cols units.ColWidth, rows units.RowHeight) (*conPty, error) {
	inputRead, inputWrite, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	outputRead, outputWrite, err := os.Pipe()
	if err != nil {
		inputRead.Close()
		inputWrite.Close()
		return nil, err
	}

	size := coord{X: int16(cols), Y: int16(rows)}
	var hpc hpcon
	r, _, _ := procCreatePseudoConsole.Call(
		uintptr(*(*uint32)(unsafe.Pointer(&size))),
		inputRead.Fd(),
		outputWrite.Fd(),
		0,
		uintptr(unsafe.Pointer(&hpc)),
	)
	if r != 0 {
		inputRead.Close()
		inputWrite.Close()
		outputRead.Close()
		outputWrite.Close()
		return nil, errors.New("ptysession: CreatePseudoConsole failed")
	}

	inputRead.Close()
	outputWrite.Close()
	return &conPty{hpc: hpc, pipeIn: inputWrite, pipeOut: outputRead}, nil
}

func (c *conPty) Read(p []byte) (int, error)  { return c.pipeOut.Read(p) }
func (c *conPty) Write(p []byte) (int, error) { return c.pipeIn.Write(p) }

func (c *conPty) Resize(cols units.ColWidth, rows units.RowHeight) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	size := coord{X: int16(cols), Y: int16(rows)}
	r, _, _ := procResizePseudoConsole.Call(uintptr(c.hpc), uintptr(*(*uint32)(unsafe.Pointer(&size))))
	if r != 0 {
		return errors.New("ptysession: ResizePseudoConsole failed")
	}
	return nil
}

func (c *conPty) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pipeIn != nil {
		c.pipeIn.Close()
	}
	if c.pipeOut != nil {
		c.pipeOut.Close()
	}
	if c.hpc != 0 {
		procClosePseudoConsole.Call(uintptr(c.hpc))
		c.hpc = 0
	}
	return nil
}

// startPty creates a ConPTY, starts cmd attached to it, and performs the DSR
// handshake required before any output flows (spec §4.6 "Windows lifecycle"):
// read until ESC[6n is seen and reply with ESC[1;1R, keeping the writer
// alive for the rest of the session.
func startPty(cmd *exec.Cmd, cols units.ColWidth, rows units.RowHeight) (ptyConn, error) {
	cp, err := newConPty(cols, rows)
	if err != nil {
		return nil, err
	}

	cmd.Stdin = cp.pipeIn
	cmd.Stdout = cp.pipeOut
	cmd.Stderr = cp.pipeOut
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	if err := cmd.Start(); err != nil {
		cp.Close()
		return nil, err
	}

	if err := performDsrHandshake(cp); err != nil {
		cp.Close()
		return nil, err
	}
	return cp, nil
}

// performDsrHandshake scans byte-by-byte for the DSR query "ESC[6n" and
// replies "ESC[1;1R" the moment it appears. Any bytes read before the query
// is found are consumed here and not re-delivered to the caller (the
// teacher never observes this handshake, since its ConPTY path has no
// handshake at all; this sequencing is supplemented from the original
// Rust implementation's Windows PTY session code).
func performDsrHandshake(cp *conPty) error {
	const query = "\x1b[6n"
	matched := 0
	buf := make([]byte, 1)
	for matched < len(query) {
		n, err := cp.pipeOut.Read(buf)
		if n == 0 || err != nil {
			return err
		}
		if buf[0] == query[matched] {
			matched++
		} else {
			matched = 0
		}
	}
	_, err := cp.pipeIn.Write([]byte("\x1b[1;1R"))
	return err
}
