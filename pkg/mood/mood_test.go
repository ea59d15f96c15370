package mood

import "testing"

func TestCatalogShape(t *testing.T) {
	moods := Catalog()
	if len(moods) != 8 {
		t.Fatalf("expected 8 moods, got %d", len(moods))
	}
	seen := make(map[string]bool)
	for _, m := range moods {
		if m.ID == "" || m.Name == "" || m.Emoji == "" || m.Color == "" {
			t.Fatalf("incomplete mood: %+v", m)
		}
		if m.Value < 1 || m.Value > 5 {
			t.Fatalf("mood value out of range: %+v", m)
		}
		if seen[m.ID] {
			t.Fatalf("duplicate mood id %s", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	Catalog()[0].Name = "Tampered"
	if Catalog()[0].Name == "Tampered" {
		t.Fatalf("catalog edits must not stick")
	}
}

func TestByID(t *testing.T) {
	m, ok := ByID("happy")
	if !ok || m.Name != "Happy" || m.Value != 4 {
		t.Fatalf("unexpected lookup result: %+v %v", m, ok)
	}
	if _, ok := ByID("nope"); ok {
		t.Fatalf("unknown id should miss")
	}
}

func TestForAlias(t *testing.T) {
	for _, alias := range []string{"happy", "Happy", " HAPPY "} {
		m, err := ForAlias(alias)
		if err != nil || m.ID != "happy" {
			t.Fatalf("alias %q failed: %+v %v", alias, m, err)
		}
	}
	if _, err := ForAlias("grumpy"); err == nil {
		t.Fatalf("unknown alias should error")
	}
}
