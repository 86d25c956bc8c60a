package runtime

import (
	"fmt"
	"testing"
)

func TestQueue_FIFO(t *testing.T) {
	q := newQueue()

	const n = 100
	for i := 0; i < n; i++ {
		q.in <- command{id: fmt.Sprintf("cmd-%03d", i)}
	}
	close(q.in)

	i := 0
	for cmd := range q.out {
		want := fmt.Sprintf("cmd-%03d", i)
		if cmd.id != want {
			t.Fatalf("position %d: id = %s, want %s", i, cmd.id, want)
		}
		i++
	}
	if i != n {
		t.Errorf("received %d commands, want %d", i, n)
	}
}

func TestQueue_UnboundedSends(t *testing.T) {
	q := newQueue()

	// Nothing reads out during this loop; the sends only complete if the
	// pump buffers without limit.
	const n = 10000
	for i := 0; i < n; i++ {
		q.in <- command{id: fmt.Sprintf("cmd-%d", i)}
	}
	close(q.in)

	count := 0
	for range q.out {
		count++
	}
	if count != n {
		t.Errorf("received %d commands, want %d", count, n)
	}
}

func TestQueue_CloseFlushes(t *testing.T) {
	q := newQueue()

	for i := 0; i < 5; i++ {
		q.in <- command{id: fmt.Sprintf("cmd-%d", i)}
	}
	close(q.in)

	var ids []string
	for cmd := range q.out {
		ids = append(ids, cmd.id)
	}
	if len(ids) != 5 {
		t.Fatalf("flushed %d commands, want 5", len(ids))
	}
	if ids[0] != "cmd-0" || ids[4] != "cmd-4" {
		t.Errorf("flush order = %v, want submission order", ids)
	}
}

func TestQueue_CloseEmpty(t *testing.T) {
	q := newQueue()
	close(q.in)

	if _, ok := <-q.out; ok {
		t.Error("out should close without delivering anything")
	}
}

func TestQueue_InterleavedSendReceive(t *testing.T) {
	q := newQueue()

	done := make(chan []string)
	go func() {
		var ids []string
		for cmd := range q.out {
			ids = append(ids, cmd.id)
		}
		done <- ids
	}()

	const n = 500
	for i := 0; i < n; i++ {
		q.in <- command{id: fmt.Sprintf("cmd-%04d", i)}
	}
	close(q.in)

	ids := <-done
	if len(ids) != n {
		t.Fatalf("received %d commands, want %d", len(ids), n)
	}
	for i, id := range ids {
		want := fmt.Sprintf("cmd-%04d", i)
		if id != want {
			t.Fatalf("position %d: id = %s, want %s", i, id, want)
		}
	}
}
