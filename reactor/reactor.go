// Package reactor implements the process-global, lazily-initialized
// input/signal broadcaster (spec §4.8, C11). The first Subscribe call spawns
// a worker thread that polls stdin and SIGWINCH; each subscriber gets a
// receiver and a drop-guard. When the last guard drops, the worker is woken
// through an OS-level waker, rechecks the subscriber count, and exits if it
// is still zero; a later Subscribe call detects the terminated state and
// spawns a fresh worker with a fresh waker.
package reactor

import (
	"sync"
	"sync/atomic"

	"github.com/tuicore/vtengine/units"
	"github.com/tuicore/vtengine/vtlog"
)

// EventKind distinguishes the reactor's broadcast event variants.
type EventKind int

const (
	EventKey EventKind = iota
	EventResize
	EventSignal
	EventLagged
)

// Event is the unit broadcast to every subscriber.
type Event struct {
	Kind EventKind

	// EventKey
	Key   string
	Bytes []byte

	// EventResize
	Cols units.ColWidth
	Rows units.RowHeight

	// EventLagged
	Skipped int
}

const broadcastCapacity = 4096

// Guard cancels a single subscription when dropped. Dropping a guard cancels
// only that subscriber; it does not affect others.
type Guard struct {
	once sync.Once
	w    *worker
	ch   chan Event
}

// Close unsubscribes. Safe to call more than once.
func (g *Guard) Close() {
	g.once.Do(func() {
		g.w.unsubscribe(g.ch)
	})
}

var (
	globalMu   sync.Mutex
	globalW    *worker
	generation uint32 // wraps at 256, matching the spec's u8 generation counter
)

// Subscribe returns a receive-only channel of broadcast events and a guard
// that must be closed to release the subscription. The first subscriber
// after process start, or after the prior worker terminated, spawns a fresh
// worker incarnation.
func Subscribe() (<-chan Event, *Guard) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalW == nil || globalW.terminated() {
		gen := uint8(atomic.AddUint32(&generation, 1))
		vtlog.L().Debugw("reactor: spawning worker", "generation", gen)
		globalW = spawnWorker(gen)
	}
	ch := globalW.subscribe()
	return ch, &Guard{w: globalW, ch: ch}
}

// Generation returns the incarnation number of the currently live worker, or
// 0 if none has ever run. Exposed for tests that distinguish "thread reused"
// from "thread respawned".
func Generation() uint8 {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalW == nil {
		return 0
	}
	return globalW.gen
}

// subState tracks how many broadcasts a subscriber has missed because its
// channel was full, so the next successful send can carry an accurate
// EventLagged count instead of silently dropping events.
type subState struct {
	skipped int
}

// worker is one incarnation of the polling thread plus its subscriber set.
type worker struct {
	gen uint8

	mu   sync.Mutex
	subs map[chan Event]*subState

	done   int32 // atomic: 1 once the worker goroutine has exited
	waker  waker
}

func (w *worker) terminated() bool {
	return atomic.LoadInt32(&w.done) == 1
}

func (w *worker) subscribe() chan Event {
	ch := make(chan Event, broadcastCapacity)
	w.mu.Lock()
	w.subs[ch] = &subState{}
	w.mu.Unlock()
	return ch
}

func (w *worker) unsubscribe(ch chan Event) {
	w.mu.Lock()
	delete(w.subs, ch)
	empty := len(w.subs) == 0
	w.mu.Unlock()
	close(ch)
	if empty {
		// Wake the worker so it can recheck the subscriber count. The
		// check happens when the worker wakes, not now, so a subscribe
		// racing in between correctly keeps the worker alive (spec
		// "termination race").
		w.waker.wake()
	}
}

func (w *worker) subscriberCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

// broadcast delivers ev to every subscriber. A full channel never blocks the
// worker or the other subscribers; instead the subscriber's skip counter is
// incremented, and the next time its channel has room, a single EventLagged
// carrying the accumulated count is delivered ahead of the real event (spec
// §5 "slow consumers observe Lagged(n) on their next receive").
func (w *worker) broadcast(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for ch, st := range w.subs {
		if st.skipped > 0 {
			select {
			case ch <- Event{Kind: EventLagged, Skipped: st.skipped}:
				st.skipped = 0
			default:
				st.skipped++
				continue
			}
		}
		select {
		case ch <- ev:
		default:
			st.skipped++
		}
	}
}

func (w *worker) markDone() {
	atomic.StoreInt32(&w.done, 1)
	vtlog.L().Debugw("reactor: worker terminated", "generation", w.gen)
}
