package routes_test

import (
	"testing"

	"sortd/internal/config"
	"sortd/internal/routes"
)

func defaultTable() *routes.Table {
	return routes.New(config.Default().Routes)
}

func TestMatchGlobCaseInsensitive(t *testing.T) {
	table := defaultTable()
	decision, ok := table.Match("photo.PNG", "")
	if !ok {
		t.Fatal("expected match")
	}
	if decision.Folder != "Images" {
		t.Fatalf("unexpected folder: %q", decision.Folder)
	}
	if decision.Phase != routes.PhaseGlob {
		t.Fatalf("unexpected phase: %v", decision.Phase)
	}
	if decision.Pattern != "*.png" {
		t.Fatalf("unexpected pattern: %q", decision.Pattern)
	}
}

func TestMatchFilenameKeyword(t *testing.T) {
	table := defaultTable()
	decision, ok := table.Match("Invoice_March.pdf", "")
	if !ok {
		t.Fatal("expected match")
	}
	if decision.Folder != "Finance" || decision.Phase != routes.PhaseFilename {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestGlobPhaseOutranksKeywordAndContent(t *testing.T) {
	table := routes.New([]config.Route{
		{Pattern: "invoice", Folder: "Finance"},
		{Pattern: "*.png", Folder: "Images"},
	})
	// Filename matches both the invoice keyword and the png glob; the glob
	// phase runs first even though the keyword route is declared first.
	decision, ok := table.Match("invoice.png", "invoice invoice invoice")
	if !ok {
		t.Fatal("expected match")
	}
	if decision.Folder != "Images" || decision.Phase != routes.PhaseGlob {
		t.Fatalf("glob phase should win: %+v", decision)
	}
}

func TestContentPhaseOnlyWithContent(t *testing.T) {
	table := defaultTable()
	if _, ok := table.Match("notes.txt", ""); ok {
		t.Fatal("expected no match without content")
	}
	decision, ok := table.Match("notes.txt", "Math homework for Friday")
	if !ok {
		t.Fatal("expected content match")
	}
	if decision.Folder != "School" || decision.Phase != routes.PhaseContent {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestFirstMatchWinsWithinPhase(t *testing.T) {
	table := routes.New([]config.Route{
		{Pattern: "report", Folder: "Reports"},
		{Pattern: "report", Folder: "Archive"},
	})
	decision, ok := table.Match("report_q3.xlsx", "")
	if !ok {
		t.Fatal("expected match")
	}
	if decision.Folder != "Reports" {
		t.Fatalf("first declared route should win: %+v", decision)
	}
}

func TestNoMatchLeavesFileAlone(t *testing.T) {
	table := defaultTable()
	if _, ok := table.Match("random.bin", "nothing relevant"); ok {
		t.Fatal("expected no match")
	}
}

func TestMalformedGlobNeverMatches(t *testing.T) {
	table := routes.New([]config.Route{
		{Pattern: "[unclosed", Folder: "Broken"},
		{Pattern: "*.txt", Folder: "Text"},
	})
	decision, ok := table.Match("a.txt", "")
	if !ok || decision.Folder != "Text" {
		t.Fatalf("malformed glob should be skipped: %+v ok=%v", decision, ok)
	}
}

func TestCharacterClassGlob(t *testing.T) {
	table := routes.New([]config.Route{
		{Pattern: "img_[0-9]?.jpg", Folder: "Shots"},
	})
	if _, ok := table.Match("IMG_42.jpg", ""); !ok {
		t.Fatal("expected character class glob to match")
	}
	if _, ok := table.Match("img_ab.jpg", ""); ok {
		t.Fatal("expected non-digit to miss the class")
	}
}

func TestRulesPreserveOrder(t *testing.T) {
	table := defaultTable()
	rules := table.Rules()
	if len(rules) != table.Len() {
		t.Fatalf("rules length mismatch: %d vs %d", len(rules), table.Len())
	}
	if rules[0].Pattern != "invoice" {
		t.Fatalf("unexpected first rule: %+v", rules[0])
	}
}
