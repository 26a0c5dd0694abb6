package item

import (
	"testing"
	"time"
)

func TestNew_Valid(t *testing.T) {
	it, err := New("SVK:SNG.O_184", "Kosec", "galanda, mikuláš")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID() != "SVK:SNG.O_184" {
		t.Errorf("ID() = %q", it.ID())
	}
	if it.Title() != "Kosec" {
		t.Errorf("Title() = %q", it.Title())
	}
	if it.Author() != "galanda, mikuláš" {
		t.Errorf("Author() = %q", it.Author())
	}
}

func TestNew_EmptyID(t *testing.T) {
	_, err := New("", "Kosec", "")
	if err == nil {
		t.Fatal("expected error for empty ID")
	}
}

func TestReconstruct(t *testing.T) {
	created := time.Date(2015, 3, 2, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2020, 7, 14, 9, 30, 0, 0, time.UTC)

	it := Reconstruct(
		"SVK:SNG.O_184", "O 184", "Kosec", "galanda, mikuláš",
		"Muž kosiaci lúku.", "olejomaľba", "plátno", "Slovensko",
		"Slovenská národná galéria, SNG",
		[]string{"krajina", "práca"}, 1930, 1935, true, false,
		[]int64{954}, created, updated,
	)

	if it.Identifier() != "O 184" {
		t.Errorf("Identifier() = %q", it.Identifier())
	}
	if it.Description() != "Muž kosiaci lúku." {
		t.Errorf("Description() = %q", it.Description())
	}
	if it.Technique() != "olejomaľba" || it.Medium() != "plátno" {
		t.Errorf("Technique()/Medium() = %q/%q", it.Technique(), it.Medium())
	}
	if it.Place() != "Slovensko" {
		t.Errorf("Place() = %q", it.Place())
	}
	if it.Gallery() != "Slovenská národná galéria, SNG" {
		t.Errorf("Gallery() = %q", it.Gallery())
	}
	if len(it.Tags()) != 2 {
		t.Errorf("Tags() = %v", it.Tags())
	}
	if it.DateEarliest() != 1930 || it.DateLatest() != 1935 {
		t.Errorf("dating = [%d, %d]", it.DateEarliest(), it.DateLatest())
	}
	if !it.HasImage() || it.HasIIP() {
		t.Errorf("HasImage()/HasIIP() = %v/%v", it.HasImage(), it.HasIIP())
	}
	if len(it.AuthorityIDs()) != 1 || it.AuthorityIDs()[0] != 954 {
		t.Errorf("AuthorityIDs() = %v", it.AuthorityIDs())
	}
	if !it.CreatedAt().Equal(created) || !it.UpdatedAt().Equal(updated) {
		t.Errorf("timestamps = %v / %v", it.CreatedAt(), it.UpdatedAt())
	}
}
