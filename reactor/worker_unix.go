//go:build !windows

package reactor

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/tuicore/vtengine/units"
)

// selfPipeWaker is the self-pipe trick: writing a byte to w unblocks a
// select(2) call blocked reading r, the way mio_poller/sources.rs registers
// a wakeup fd alongside the polled sources.
type selfPipeWaker struct {
	r, w int
}

func newSelfPipeWaker() (*selfPipeWaker, error) {
	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		return nil, err
	}
	return &selfPipeWaker{r: fds[0], w: fds[1]}, nil
}

func (s *selfPipeWaker) wake() {
	var b [1]byte
	_, _ = unix.Write(s.w, b[:])
}

func (s *selfPipeWaker) drain() {
	var b [64]byte
	for {
		n, err := unix.Read(s.r, b[:])
		if n <= 0 || err != nil {
			return
		}
	}
}

func (s *selfPipeWaker) close() {
	_ = unix.Close(s.r)
	_ = unix.Close(s.w)
}

func spawnWorker(gen uint8) *worker {
	w := &worker{gen: gen, subs: make(map[chan Event]*subState)}

	sp, err := newSelfPipeWaker()
	if err != nil {
		// No usable waker: stdin is not polled and the worker is marked
		// done at once, so signalLoop stops at the first signal it sees.
		w.waker = noopWaker{}
		go w.signalLoop()
		w.markDone()
		return w
	}
	w.waker = sp

	go w.pollLoop(sp)
	go w.signalLoop()
	return w
}

type noopWaker struct{}

func (noopWaker) wake()  {}
func (noopWaker) close() {}

// pollLoop select(2)s over stdin and the self-pipe so an unsubscribe can
// interrupt a blocked read and force a subscriber-count recheck (spec
// "termination race": the check happens on wake, not on signal).
func (w *worker) pollLoop(sp *selfPipeWaker) {
	stdinFD := int(os.Stdin.Fd())
	buf := make([]byte, 4096)

	for {
		var rfds unix.FdSet
		fdZero(&rfds)
		fdSet(&rfds, stdinFD)
		fdSet(&rfds, sp.r)
		nfd := stdinFD
		if sp.r > nfd {
			nfd = sp.r
		}

		_, err := unix.Select(nfd+1, &rfds, nil, nil, nil)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}

		if fdIsSet(&rfds, sp.r) {
			sp.drain()
			if w.subscriberCount() == 0 {
				sp.close()
				w.markDone()
				return
			}
		}

		if fdIsSet(&rfds, stdinFD) {
			n, err := unix.Read(stdinFD, buf)
			if n > 0 {
				decodeKeyBytes(buf[:n], w.broadcast)
			}
			if err != nil && err != unix.EAGAIN {
				sp.close()
				w.markDone()
				return
			}
		}
	}
}

func (w *worker) signalLoop() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)

	for range sigCh {
		if w.terminated() {
			return
		}
		cols, rows, ok := queryTerminalSize()
		if !ok {
			continue
		}
		w.broadcast(Event{Kind: EventResize, Cols: cols, Rows: rows})
	}
}

func queryTerminalSize() (units.ColWidth, units.RowHeight, bool) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, false
	}
	return units.ColWidth(ws.Col), units.RowHeight(ws.Row), true
}

func fdZero(set *unix.FdSet) {
	for i := range set.Bits {
		set.Bits[i] = 0
	}
}

func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}

func fdIsSet(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/64]&(1<<(uint(fd)%64)) != 0
}
