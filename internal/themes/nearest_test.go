package themes

import "testing"

func TestNearest(t *testing.T) {
	catalog, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}

	matches, err := catalog.Nearest("#15803d")
	if err != nil {
		t.Fatalf("Nearest() error = %v", err)
	}
	if len(matches) != len(catalog.Themes) {
		t.Fatalf("matches = %d, want %d", len(matches), len(catalog.Themes))
	}
	if matches[0].Theme.ID != "forest" || matches[0].Distance > 1e-9 {
		t.Fatalf("closest = %s (%f)", matches[0].Theme.ID, matches[0].Distance)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Distance < matches[i-1].Distance {
			t.Fatalf("matches not sorted at %d", i)
		}
	}

	if _, err := catalog.Nearest("green"); err == nil {
		t.Fatalf("expected invalid color error")
	}
}
