package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"csrwatch/internal/report"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordRun_RoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	started := time.Date(2024, 6, 5, 8, 0, 0, 0, time.UTC)
	run := Run{
		ID:         uuid.NewString(),
		Mode:       "check",
		Window:     "2024-06-05",
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		ErrorCount: 2,
	}
	results := []report.Result{
		{Subject: "consolidation_backups/sat1", Status: report.StatusMissingSource, Detail: "File not found: /x"},
		{Subject: "consolidation_backups/sat2", Status: report.StatusCopiedOk, Detail: "copied"},
		{Subject: "consolidation_nova_compute", Status: report.StatusMissingDirectory, Detail: "The path /y does not exist."},
	}

	if err := store.RecordRun(ctx, run, results); err != nil {
		t.Fatal(err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.Mode != "check" || got.ErrorCount != 2 {
		t.Fatalf("run mismatch: %+v", got)
	}
	if !got.StartedAt.Equal(started) {
		t.Fatalf("started_at mismatch: %s", got.StartedAt)
	}

	stored, err := store.RunResults(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	// Only error-status results are persisted.
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored results, got %d", len(stored))
	}
	if stored[0].Status != report.StatusMissingSource || stored[1].Status != report.StatusMissingDirectory {
		t.Fatalf("result order or status lost: %+v", stored)
	}
}

func TestRecentRuns_NewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := Run{
			ID:         uuid.NewString(),
			Mode:       "feeds",
			Window:     "2024-06-0" + string(rune('1'+i)),
			StartedAt:  base.AddDate(0, 0, i),
			FinishedAt: base.AddDate(0, 0, i).Add(time.Second),
		}
		if err := store.RecordRun(ctx, run, nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("limit not applied: got %d runs", len(runs))
	}
	if !runs[0].StartedAt.After(runs[1].StartedAt) {
		t.Fatalf("runs not newest-first: %s then %s", runs[0].StartedAt, runs[1].StartedAt)
	}
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	run := Run{ID: uuid.NewString(), Mode: "check", Window: "2024-06", StartedAt: time.Now(), FinishedAt: time.Now()}
	if err := store.RecordRun(ctx, run, nil); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected persisted run after reopen, got %d", len(runs))
	}
}
