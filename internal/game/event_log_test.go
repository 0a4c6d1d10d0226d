package game

import (
	"strings"
	"testing"
)

func TestEventLog_FilterAndLastOf(t *testing.T) {
	l := NewEventLog()
	l.Add(1, CategoryScreen, "change", "menu -> game")
	l.Add(4, CategoryMove, "blocked", "(100.0,140.0)")
	l.Add(9, CategoryMove, "blocked", "(100.0,140.0)")
	l.Add(12, CategoryScreen, "change", "game -> win")

	if got := l.Count(CategoryMove, ""); got != 2 {
		t.Fatalf("move count = %d, want 2", got)
	}
	if got := len(l.Filter("", "change")); got != 2 {
		t.Fatalf("change count = %d, want 2", got)
	}
	e, ok := l.LastOf(CategoryScreen, "change")
	if !ok || e.Tick != 12 || e.Value != "game -> win" {
		t.Fatalf("LastOf = %+v, %v", e, ok)
	}
	if _, ok := l.LastOf(CategoryFPS, "update"); ok {
		t.Fatal("LastOf found a missing category")
	}
}

func TestEventLog_Format(t *testing.T) {
	l := NewEventLog()
	l.Add(42, CategoryScreen, "change", "game -> win")

	got := l.Format()
	want := "[T=042] screen    change           game -> win\n"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(l.Entries()[0].String(), "game -> win") {
		t.Fatal("String() lost the value")
	}
}
