package jobs

import (
	"sync"
	"testing"
)

func TestTrackerLifecycle(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()

	job, err := tracker.Create("resume.pdf")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if job.ID == "" {
		t.Fatal("job has no id")
	}
	if job.Status != StatusParsing {
		t.Fatalf("new job status = %q, want %q", job.Status, StatusParsing)
	}

	tracker.Update(job.ID, func(j *Job) {
		j.Status = StatusExtracting
		j.TotalChunks = 7
	})

	got, ok := tracker.Get(job.ID)
	if !ok {
		t.Fatal("job disappeared after update")
	}
	if got.Status != StatusExtracting || got.TotalChunks != 7 {
		t.Fatalf("job after update = %+v", got)
	}
	if got.UpdatedAt.Before(job.UpdatedAt) {
		t.Error("UpdatedAt did not advance")
	}
}

func TestTrackerUnknownJob(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()

	if _, ok := tracker.Get("missing"); ok {
		t.Fatal("Get returned a job for an unknown id")
	}

	// Must not panic or create the job.
	tracker.Update("missing", func(j *Job) { j.Status = StatusDone })
	if _, ok := tracker.Get("missing"); ok {
		t.Fatal("Update created a job for an unknown id")
	}
}

func TestTrackerConcurrentUpdates(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	job, err := tracker.Create("doc.txt")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Update(job.ID, func(j *Job) {
				j.ChunksProcessed++
			})
		}()
	}
	wg.Wait()

	got, _ := tracker.Get(job.ID)
	if got.ChunksProcessed != 50 {
		t.Fatalf("ChunksProcessed = %d, want 50", got.ChunksProcessed)
	}
}
