// Package ptysession implements the PTY session lifecycle (spec §4.6, C8):
// spawning a child behind a pseudo-terminal, pumping its output into an
// event stream, and draining/reaping it on exit. Unix spawns use
// github.com/creack/pty; Windows spawns use the ConPTY syscalls in
// conpty_windows.go, adapted from the teacher's hand-rolled implementation.
package ptysession

import (
	"io"
	"os/exec"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tuicore/vtengine/ansiparser"
	"github.com/tuicore/vtengine/screen"
	"github.com/tuicore/vtengine/units"
	"github.com/tuicore/vtengine/vtlog"
)

// Config describes a command to spawn behind a PTY.
type Config struct {
	Program string
	Args    []string
	Dir     string
	Env     []string

	Cols units.ColWidth
	Rows units.RowHeight

	// EchoOn is carried in the config but not read by Spawn: echo of
	// written bytes is whatever the PTY's line discipline does.
	EchoOn bool

	// OscCapture routes output through an ansiparser.Parser bound to a
	// fresh screen.Buffer instead of emitting raw Output events.
	OscCapture bool
}

// EventKind distinguishes the variants of Event.
type EventKind int

const (
	EventOutput EventKind = iota
	EventOscEvents
	EventExit
	EventErr
)

// Event is one item from a Session's Events channel.
type Event struct {
	Kind   EventKind
	Output []byte
	Osc    []screen.OscEvent
	Dsr    []screen.DsrResponse
	Code   int
	Err    error
}

// ptyConn is the minimal controller-side surface a platform pump needs;
// satisfied by *os.File on Unix (via creack/pty) and by the ConPTY wrapper
// on Windows.
type ptyConn interface {
	io.ReadWriteCloser
	Resize(cols units.ColWidth, rows units.RowHeight) error
}

// Session is a spawned child behind a pseudo-terminal.
type Session struct {
	cmd    *exec.Cmd
	pt     ptyConn
	Events chan Event

	parser *ansiparser.Parser
	buf    *screen.Buffer

	log *zap.Logger

	wg       sync.WaitGroup
	exitOnce sync.Once
	exitCode int
	waitErr  error
}

// Spawn starts cfg.Program behind a pseudo-terminal and begins pumping its
// output. The returned Session's Events channel is closed once the read
// loop ends and the child has been reaped. A nil log falls back to the
// ambient vtlog logger.
func Spawn(cfg Config, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = vtlog.L().Desugar()
	}
	cmd := exec.Command(cfg.Program, cfg.Args...)
	cmd.Dir = cfg.Dir
	cmd.Env = cfg.Env

	pt, err := startPty(cmd, cfg.Cols, cfg.Rows)
	if err != nil {
		log.Debug("ptysession: spawn failed", zap.String("program", cfg.Program), zap.Error(err))
		return nil, errors.Wrap(err, "ptysession: spawn")
	}

	s := &Session{
		cmd:    cmd,
		pt:     pt,
		Events: make(chan Event, 64),
		log:    log,
	}
	if cfg.OscCapture {
		s.buf = screen.NewEmpty(cfg.Cols, cfg.Rows)
		s.parser = ansiparser.New(s.buf)
	}

	log.Info("ptysession: spawned", zap.String("program", cfg.Program))
	s.wg.Add(1)
	go s.readLoop()
	return s, nil
}

// readLoop pumps up to 4096 bytes at a time into the parser (if OSC capture
// is enabled) or raw Output events, until the controller reports EOF — the
// signal a Unix PTY gives when the child exits (spec §4.6).
func (s *Session) readLoop() {
	defer s.wg.Done()
	buf := make([]byte, 4096)
	for {
		n, err := s.pt.Read(buf)
		if n > 0 {
			s.emit(buf[:n])
		}
		if err != nil {
			if err != io.EOF {
				s.log.Debug("ptysession: read error", zap.Error(err))
			}
			break
		}
	}
	s.finish()
}

func (s *Session) emit(chunk []byte) {
	if s.parser == nil {
		s.Events <- Event{Kind: EventOutput, Output: append([]byte(nil), chunk...)}
		return
	}
	osc, dsr := s.parser.ApplyAnsiBytes(chunk)
	s.Events <- Event{Kind: EventOscEvents, Osc: osc, Dsr: dsr}
}

// finish waits for the child and emits the exit event. macOS requires
// draining the controller before Wait or waitpid blocks forever (spec
// §4.6); readLoop has already read to EOF when finish runs, so this only
// reaps the process.
func (s *Session) finish() {
	s.exitOnce.Do(func() {
		err := s.cmd.Wait()
		s.waitErr = err
		s.exitCode = exitCodeOf(err)
		s.log.Info("ptysession: exited", zap.Int("code", s.exitCode))
		s.Events <- Event{Kind: EventExit, Code: s.exitCode, Err: err}
		close(s.Events)
	})
}

func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

// Buffer returns the session's offscreen buffer, or nil if OSC capture was
// not enabled for this session.
func (s *Session) Buffer() *screen.Buffer { return s.buf }

// Write sends bytes to the child's stdin via the PTY.
func (s *Session) Write(p []byte) (int, error) { return s.pt.Write(p) }

// Resize propagates a terminal size change to both the PTY and, when OSC
// capture is enabled, the internal screen buffer.
func (s *Session) Resize(cols units.ColWidth, rows units.RowHeight) error {
	if s.buf != nil {
		s.buf = screen.NewEmpty(cols, rows)
		s.parser = ansiparser.New(s.buf)
	}
	return s.pt.Resize(cols, rows)
}

// Drain blocks until the read loop has observed EOF and the child has been
// reaped, returning the exit code.
func (s *Session) Drain() int {
	s.wg.Wait()
	return s.exitCode
}

// Close closes the underlying PTY, unblocking the read loop.
func (s *Session) Close() error {
	return s.pt.Close()
}
