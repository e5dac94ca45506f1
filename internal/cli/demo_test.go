package cli

import (
	"strings"
	"testing"
)

func TestSeedAtlas(t *testing.T) {
	reg := seedAtlas(DefaultConfig())

	if got := reg.Len(); got != 6 {
		t.Fatalf("Len() = %d, want 6", got)
	}
	if got := reg.Height(); got != 3 {
		t.Errorf("Height() = %d, want 3", got)
	}

	veloria, ok := reg.Find(20)
	if !ok {
		t.Fatal("Find(20) not found")
	}
	if veloria.Name != "Veloria" {
		t.Errorf("Find(20).Name = %q, want %q", veloria.Name, "Veloria")
	}
	if got := veloria.Routes.Len(); got != 4 {
		t.Errorf("Veloria districts = %d, want 4", got)
	}

	dist, path, err := veloria.Routes.ShortestPath("Center", "Mills")
	if err != nil {
		t.Fatalf("ShortestPath() error = %v", err)
	}
	if dist != 6 {
		t.Errorf("ShortestPath() dist = %v, want 6", dist)
	}
	want := []string{"Center", "Harbor", "Oldtown", "Mills"}
	if len(path) != len(want) {
		t.Fatalf("ShortestPath() path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("ShortestPath() path = %v, want %v", path, want)
		}
	}
}

func TestRunDemo(t *testing.T) {
	var buf strings.Builder
	if err := runDemo(&buf, seedAtlas(DefaultConfig())); err != nil {
		t.Fatalf("runDemo() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Registered 6 cities, AVL height 3",
		"in-order:  10 20 25 30 40 50",
		"Shortest Center → Mills:  Center → Harbor → Oldtown → Mills (distance 6)",
		"unreachable from North",
		"BST export height: 6 → DSW → 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("runDemo() output missing %q\noutput:\n%s", want, out)
		}
	}
}
