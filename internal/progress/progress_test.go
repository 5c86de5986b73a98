package progress

import (
	"errors"
	"sync"
	"testing"
)

func TestTrackerLifecycle(t *testing.T) {
	tracker := NewTracker(3, true)

	tracker.Start("Technical Risk")
	tracker.Success("technical", 4)
	tracker.Start("Schedule Risk")
	tracker.Fail("schedule", errors.New("boom"))
	tracker.Success("quality", 3)
	tracker.Finish()

	if tracker.done != 3 {
		t.Errorf("done = %d, want 3", tracker.done)
	}
	if tracker.failed != 1 {
		t.Errorf("failed = %d, want 1", tracker.failed)
	}
}

func TestTrackerConcurrentUpdates(t *testing.T) {
	tracker := NewTracker(50, true)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				tracker.Fail("category", errors.New("boom"))
			} else {
				tracker.Success("category", 2)
			}
		}(i)
	}
	wg.Wait()
	tracker.Finish()

	if tracker.done != 50 {
		t.Errorf("done = %d, want 50", tracker.done)
	}
	if tracker.failed != 10 {
		t.Errorf("failed = %d, want 10", tracker.failed)
	}
}

func TestTrackerZeroTotal(t *testing.T) {
	tracker := NewTracker(0, false)
	tracker.render() // must not divide by zero
	tracker.Finish()
}
