package reactor

import "testing"

func TestDecodeOneKeyEnter(t *testing.T) {
	name, n := decodeOneKey([]byte{13})
	if name != "Enter" || n != 1 {
		t.Fatalf("got (%q, %d)", name, n)
	}
}

func TestDecodeOneKeyCtrlC(t *testing.T) {
	name, n := decodeOneKey([]byte{3})
	if name != "^C" || n != 1 {
		t.Fatalf("got (%q, %d)", name, n)
	}
}

func TestDecodeOneKeyArrow(t *testing.T) {
	name, n := decodeOneKey([]byte("\x1b[A"))
	if name != "Up" || n != 3 {
		t.Fatalf("got (%q, %d)", name, n)
	}
}

func TestDecodeOneKeyPlainRune(t *testing.T) {
	name, n := decodeOneKey([]byte("x"))
	if name != "x" || n != 1 {
		t.Fatalf("got (%q, %d)", name, n)
	}
}

func TestDecodeKeyBytesSplitsChunk(t *testing.T) {
	var got []string
	decodeKeyBytes([]byte("ab\r"), func(ev Event) { got = append(got, ev.Key) })
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "Enter" {
		t.Fatalf("got %v", got)
	}
}

func TestBroadcastBackpressureDeliversLaggedMarker(t *testing.T) {
	w := &worker{subs: make(map[chan Event]*subState)}
	ch := make(chan Event, 1)
	w.subs[ch] = &subState{}

	w.broadcast(Event{Kind: EventKey, Key: "a"}) // fills the only slot
	w.broadcast(Event{Kind: EventKey, Key: "b"}) // channel full: skipped++
	w.broadcast(Event{Kind: EventKey, Key: "c"}) // channel still full: skipped++

	if st := w.subs[ch]; st.skipped != 2 {
		t.Fatalf("expected skipped=2, got %d", st.skipped)
	}

	<-ch // drain "a", freeing one slot

	w.broadcast(Event{Kind: EventKey, Key: "d"})

	got := <-ch
	if got.Kind != EventLagged || got.Skipped != 2 {
		t.Fatalf("expected Lagged(2) to fill the freed slot first, got %+v", got)
	}
	if st := w.subs[ch]; st.skipped != 1 {
		t.Fatalf("expected skipped reset to 0 then incremented for dropped 'd', got %d", st.skipped)
	}
}

func TestSubscribeReturnsGuard(t *testing.T) {
	ch, g := Subscribe()
	if ch == nil || g == nil {
		t.Fatal("expected non-nil channel and guard")
	}
	g.Close()
	g.Close() // idempotent
}
