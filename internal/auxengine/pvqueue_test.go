package auxengine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPVQueuePushCap(t *testing.T) {
	var q = NewPVQueue()
	for i := 0; i < PVQueueCap; i++ {
		if !q.Push(PVRecord{Moves: []Move{Move(i)}}) {
			t.Fatalf("Push() = false before cap, at i=%d", i)
		}
	}
	if q.Push(PVRecord{Moves: []Move{1}}) {
		t.Error("Push() = true past cap, want false")
	}
	if q.Len() != PVQueueCap {
		t.Errorf("Len() = %d, want %d", q.Len(), PVQueueCap)
	}
}

func TestPVQueueDrainAllThenPushAll(t *testing.T) {
	var q = NewPVQueue()
	q.Push(PVRecord{Moves: []Move{1, 2}, StartDepth: 3, Support: 100})
	q.Push(PVRecord{Moves: []Move{3, 4}, StartDepth: 5, Support: 200})

	var want = []PVRecord{
		{Moves: []Move{1, 2}, StartDepth: 3, Support: 100},
		{Moves: []Move{3, 4}, StartDepth: 5, Support: 200},
	}
	var drained = q.DrainAll()
	if diff := cmp.Diff(want, drained); diff != "" {
		t.Fatalf("DrainAll() mismatch (-want +got):\n%s", diff)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after DrainAll() = %d, want 0", q.Len())
	}

	q.PushAll(drained[:1])
	if q.Len() != 1 {
		t.Errorf("Len() after PushAll() = %d, want 1", q.Len())
	}
}
