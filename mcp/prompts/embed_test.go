package prompts

import (
	"reflect"
	"testing"
)

func TestLoad_OK(t *testing.T) {
	g, err := Load("voting_workflow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Version != Version || g.Name != "voting_workflow" {
		t.Fatalf("unexpected guide header %+v", g)
	}
	if g.Text == "" {
		t.Fatalf("guide text empty")
	}
}

func TestLoad_Unknown(t *testing.T) {
	if _, err := Load("unknown"); err == nil {
		t.Fatalf("expected error for unknown guide")
	}
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestList(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"error_handling", "voting_workflow"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for _, n := range names {
		if _, err := Load(n); err != nil {
			t.Fatalf("listed guide %q does not load: %v", n, err)
		}
	}
}
