package dispatch

import (
	"testing"
)

func resetDispatcher(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { RegisterDispatch(nil) })
}

func TestDispatch_NoDispatcherRegistered(t *testing.T) {
	resetDispatcher(t)
	RegisterDispatch(nil)
	if Dispatch(func() {}) {
		t.Error("expected Dispatch to report failure with no dispatcher")
	}
}

func TestDispatch_NilCallback(t *testing.T) {
	resetDispatcher(t)
	RegisterDispatch(func(callback func()) { callback() })
	if Dispatch(nil) {
		t.Error("expected Dispatch to reject a nil callback")
	}
}

func TestDispatch_InvokesRegisteredFunction(t *testing.T) {
	resetDispatcher(t)
	var got []int
	RegisterDispatch(func(callback func()) { callback() })

	for i := 0; i < 3; i++ {
		i := i
		if !Dispatch(func() { got = append(got, i) }) {
			t.Fatalf("dispatch %d failed", i)
		}
	}
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("expected callbacks in order, got %v", got)
	}
}

func TestQueue_RunConsumesInOrder(t *testing.T) {
	q := NewQueue(8)
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		q.Dispatch(func() { got = append(got, i) })
	}
	q.Close()
	q.Run()

	if len(got) != 5 {
		t.Fatalf("expected 5 callbacks, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("expected FIFO order, got %v", got)
		}
	}
}

func TestQueue_CloseStopsRun(t *testing.T) {
	q := NewQueue(1)
	done := make(chan struct{})
	go func() {
		q.Run()
		close(done)
	}()

	ran := make(chan struct{})
	q.Dispatch(func() { close(ran) })
	<-ran

	q.Close()
	<-done
}

func TestQueue_DispatchAfterCloseIsDropped(t *testing.T) {
	q := NewQueue(4)
	q.Close()
	q.Dispatch(func() { t.Error("callback ran after close") })
	q.Run()
}

func TestQueue_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	q := NewQueue(1)
	q.Dispatch(func() {})
	q.Dispatch(func() { t.Error("overflow callback should have been dropped") })
	q.Close()
	q.Run()
}

func TestQueue_CloseIdempotent(t *testing.T) {
	q := NewQueue(1)
	q.Close()
	q.Close()
}
