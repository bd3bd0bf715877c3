package auxengine

import "testing"

func TestEnqueueRefusesWhenStopped(t *testing.T) {
	var q = NewNodeQueue()
	var root = newFakeRoot()
	var target = root.child(0)

	if Enqueue(q, target, root, func() bool { return true }) {
		t.Fatal("Enqueue() = true while stop is set, want false")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if target.AuxState() != AuxUnset {
		t.Errorf("target.AuxState() = %v, want AuxUnset", target.AuxState())
	}
}

func TestEnqueueSucceeds(t *testing.T) {
	var q = NewNodeQueue()
	var root = newFakeRoot()
	var target = root.child(0)

	if !Enqueue(q, target, root, func() bool { return false }) {
		t.Fatal("Enqueue() = false, want true")
	}
	if target.AuxState() != AuxPending {
		t.Errorf("target.AuxState() = %v, want AuxPending", target.AuxState())
	}

	entry, ok := q.Pop(func() bool { return false })
	if !ok {
		t.Fatal("Pop() ok = false after Enqueue")
	}
	if entry.Target != Node(target) || entry.Witness != Node(root) {
		t.Errorf("Pop() entry = %+v, want target=%v witness=%v", entry, target, root)
	}
}
