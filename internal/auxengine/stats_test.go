package auxengine

import (
	"testing"
	"time"
)

func TestPureStatsSnapshot(t *testing.T) {
	var s = newPureStats()
	s.recordQuery(100*time.Millisecond, 10)
	s.recordQuery(200*time.Millisecond, 20)

	var snap = s.snapshot(42, 7)
	if snap.HelperCalls != 2 {
		t.Errorf("HelperCalls = %d, want 2", snap.HelperCalls)
	}
	if snap.NodesAddedByHelper != 30 {
		t.Errorf("NodesAddedByHelper = %d, want 30", snap.NodesAddedByHelper)
	}
	if snap.AverageDuration != 150*time.Millisecond {
		t.Errorf("AverageDuration = %v, want 150ms", snap.AverageDuration)
	}
	if snap.QueueSizeAtSelection != 42 {
		t.Errorf("QueueSizeAtSelection = %d, want 42", snap.QueueSizeAtSelection)
	}
	if snap.PVCacheSize != 7 {
		t.Errorf("PVCacheSize = %d, want 7", snap.PVCacheSize)
	}
}

func TestPureStatsResetClearsCounters(t *testing.T) {
	var s = newPureStats()
	s.recordQuery(time.Second, 100)
	s.reset()
	var snap = s.snapshot(0, 0)
	if snap.HelperCalls != 0 || snap.NodesAddedByHelper != 0 || snap.AverageDuration != 0 {
		t.Errorf("snapshot after reset = %+v, want all zero", snap)
	}
}

func TestPureStatsThreadCounterRoundTrip(t *testing.T) {
	var s = newPureStats()
	s.incThread()
	s.incThread()

	var done = make(chan struct{})
	go func() {
		s.waitAllStopped()
		close(done)
	}()

	s.decThread()
	select {
	case <-done:
		t.Fatal("waitAllStopped() returned before every thread decremented")
	case <-time.After(20 * time.Millisecond):
	}

	s.decThread()
	<-done
}

func TestPureStatsInitialPurgeRunHandshake(t *testing.T) {
	var s = newPureStats()
	var done = make(chan struct{})
	go func() {
		s.waitInitialPurgeRun(func() bool { return false })
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("waitInitialPurgeRun() returned before the signal")
	case <-time.After(20 * time.Millisecond):
	}

	s.setInitialPurgeRun()
	<-done
}
