package domain

import (
	"testing"
	"time"
)

func TestNewCompositionMintsIdentity(t *testing.T) {
	t.Parallel()
	a := NewComposition("Noir", validDoc(), GeneratedByTemplate)
	b := NewComposition("Noir", validDoc(), "openai")
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("ids = %q, %q; want distinct non-empty", a.ID, b.ID)
	}
	if a.GeneratedBy != GeneratedByTemplate {
		t.Fatalf("GeneratedBy = %q, want %q", a.GeneratedBy, GeneratedByTemplate)
	}
	if b.GeneratedBy != "openai" {
		t.Fatalf("GeneratedBy = %q, want openai", b.GeneratedBy)
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("CreatedAt is zero")
	}
}

func TestProjectAddAndRemoveComposition(t *testing.T) {
	t.Parallel()
	p := NewProject("Summer Campaign")
	if len(p.Compositions) != 0 {
		t.Fatalf("new project has %d compositions", len(p.Compositions))
	}

	first := NewComposition("A", validDoc(), GeneratedByTemplate)
	second := NewComposition("B", validDoc(), GeneratedByTemplate)
	before := p.UpdatedAt
	time.Sleep(time.Millisecond)
	p.AddComposition(first)
	p.AddComposition(second)
	if len(p.Compositions) != 2 {
		t.Fatalf("compositions = %d, want 2", len(p.Compositions))
	}
	if !p.UpdatedAt.After(before) {
		t.Fatal("UpdatedAt not refreshed by AddComposition")
	}

	p.RemoveComposition(first.ID)
	if len(p.Compositions) != 1 || p.Compositions[0].ID != second.ID {
		t.Fatalf("after remove: %+v", p.Compositions)
	}

	// Removing an unknown id is a no-op on membership.
	p.RemoveComposition("missing")
	if len(p.Compositions) != 1 {
		t.Fatalf("compositions = %d, want 1", len(p.Compositions))
	}
}
