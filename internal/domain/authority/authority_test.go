package authority

import "testing"

func TestNew_Valid(t *testing.T) {
	a, err := New(954, "galanda, mikuláš")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID() != 954 {
		t.Errorf("ID() = %d", a.ID())
	}
	if a.Name() != "galanda, mikuláš" {
		t.Errorf("Name() = %q", a.Name())
	}
}

func TestNew_NonPositiveID(t *testing.T) {
	for _, id := range []int64{0, -1} {
		if _, err := New(id, "x"); err == nil {
			t.Errorf("expected error for id %d", id)
		}
	}
}
