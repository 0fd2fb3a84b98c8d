package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenPath(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := Entry{
		SourcePath: "/downloads/invoice march.pdf",
		FinalPath:  "/sorted/Finance/invoice march.pdf",
		Folder:     "Finance",
		Pattern:    "invoice",
		Phase:      "filename",
		MovedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	second := Entry{
		SourcePath: "/downloads/photo.png",
		FinalPath:  "/sorted/Images/photo.png",
		Folder:     "Images",
		Pattern:    "*.png",
		Phase:      "glob",
	}
	if err := store.Record(ctx, first); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(ctx, second); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Folder != "Images" {
		t.Fatalf("expected newest entry first, got %q", entries[0].Folder)
	}
	if entries[1].Pattern != "invoice" || entries[1].Phase != "filename" {
		t.Fatalf("unexpected oldest entry: %+v", entries[1])
	}
	if !entries[1].MovedAt.Equal(first.MovedAt) {
		t.Fatalf("expected moved_at %v, got %v", first.MovedAt, entries[1].MovedAt)
	}
	if entries[0].MovedAt.IsZero() {
		t.Fatal("zero MovedAt should default to the insertion time")
	}

	limited, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List with limit: %v", err)
	}
	if len(limited) != 1 || limited[0].Folder != "Images" {
		t.Fatalf("unexpected limited listing: %+v", limited)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, folder := range []string{"Finance", "Images", "Finance"} {
		err := store.Record(ctx, Entry{
			SourcePath: "/downloads/a",
			FinalPath:  "/sorted/" + folder + "/a",
			Folder:     folder,
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	counts, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if counts["Finance"] != 2 || counts["Images"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := store.Record(ctx, Entry{SourcePath: "/d/a", FinalPath: "/s/Misc/a", Folder: "Misc"})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	deleted, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("expected 3 deleted, got %d", deleted)
	}

	entries, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty journal after clear, got %d entries", len(entries))
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	store, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	if err := store.Record(ctx, Entry{SourcePath: "/d/r.txt", FinalPath: "/s/Reports/r.txt", Folder: "Reports"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenPath(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Folder != "Reports" {
		t.Fatalf("unexpected entries after reopen: %+v", entries)
	}
}

func TestNopRecorderDiscards(t *testing.T) {
	var rec Recorder = Nop{}
	if err := rec.Record(context.Background(), Entry{Folder: "Misc"}); err != nil {
		t.Fatalf("Nop.Record: %v", err)
	}
}
