package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(ErrTransient, "settle", "re-check", "file vanished", base)
	if !errors.Is(err, ErrTransient) {
		t.Fatal("expected transient marker")
	}
	if !errors.Is(err, base) {
		t.Fatal("expected wrapped cause to survive")
	}
	want := "transient condition: settle: re-check: file vanished: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !IsTransient(err) {
		t.Fatal("expected transient default")
	}
	if err.Error() != "transient condition: service failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
