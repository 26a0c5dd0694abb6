package item

import (
	"fmt"
	"time"
)

// Item is a catalogued artwork (immutable value object). Fields mirror the
// engine document shape: dating is an open interval [dateEarliest, dateLatest]
// because most artifacts carry a span rather than a single year.
type Item struct {
	id           string
	identifier   string
	title        string
	author       string
	description  string
	technique    string
	medium       string
	place        string
	gallery      string
	tags         []string
	dateEarliest int
	dateLatest   int
	hasImage     bool
	hasIIP       bool
	authorityIDs []int64
	createdAt    time.Time
	updatedAt    time.Time
}

// New validates and creates an Item. ID is required; everything else is
// optional since catalogue records are frequently incomplete.
func New(id, title, author string) (Item, error) {
	if id == "" {
		return Item{}, fmt.Errorf("item ID is required")
	}
	return Item{id: id, title: title, author: author}, nil
}

// Reconstruct creates an Item without validation (engine hydration).
func Reconstruct(
	id, identifier, title, author, description, technique, medium, place, gallery string,
	tags []string, dateEarliest, dateLatest int, hasImage, hasIIP bool,
	authorityIDs []int64, createdAt, updatedAt time.Time,
) Item {
	return Item{
		id: id, identifier: identifier, title: title, author: author,
		description: description, technique: technique, medium: medium,
		place: place, gallery: gallery, tags: tags,
		dateEarliest: dateEarliest, dateLatest: dateLatest,
		hasImage: hasImage, hasIIP: hasIIP, authorityIDs: authorityIDs,
		createdAt: createdAt, updatedAt: updatedAt,
	}
}

// ID returns the item identifier.
func (i *Item) ID() string { return i.id }

// Identifier returns the institutional catalogue number.
func (i *Item) Identifier() string { return i.identifier }

// Title returns the item title.
func (i *Item) Title() string { return i.title }

// Author returns the raw author string ("surname, given name").
func (i *Item) Author() string { return i.author }

// Description returns the free-text description.
func (i *Item) Description() string { return i.description }

// Technique returns the production technique.
func (i *Item) Technique() string { return i.technique }

// Medium returns the material/medium.
func (i *Item) Medium() string { return i.medium }

// Place returns the place of origin.
func (i *Item) Place() string { return i.place }

// Gallery returns the owning institution.
func (i *Item) Gallery() string { return i.gallery }

// Tags returns the descriptive tags.
func (i *Item) Tags() []string { return i.tags }

// DateEarliest returns the earliest possible production year.
func (i *Item) DateEarliest() int { return i.dateEarliest }

// DateLatest returns the latest possible production year.
func (i *Item) DateLatest() int { return i.dateLatest }

// HasImage reports whether a main image exists.
func (i *Item) HasImage() bool { return i.hasImage }

// HasIIP reports whether a deep-zoom image exists.
func (i *Item) HasIIP() bool { return i.hasIIP }

// AuthorityIDs returns ids of linked authorities (artists, institutions).
func (i *Item) AuthorityIDs() []int64 { return i.authorityIDs }

// CreatedAt returns the record creation time.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last record update time.
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
