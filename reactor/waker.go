package reactor

// waker is the OS-level mechanism that interrupts the worker's blocking
// poll, grounded on mio_poller/sources.rs's wakeup-fd registration. It is
// coupled to the worker incarnation that owns the underlying poll resources
// and cannot outlive it — a terminated worker's waker is discarded along
// with the worker.
type waker interface {
	wake()
	close()
}
