package authority

import "fmt"

// Authority is an identity an item can be attributed to (an artist, a
// workshop, an institution). Only the numeric id takes part in retrieval.
type Authority struct {
	id   int64
	name string
}

// New validates and creates an Authority.
func New(id int64, name string) (Authority, error) {
	if id <= 0 {
		return Authority{}, fmt.Errorf("authority ID must be positive, got %d", id)
	}
	return Authority{id: id, name: name}, nil
}

// ID returns the authority identifier.
func (a *Authority) ID() int64 { return a.id }

// Name returns the raw authority name ("surname, given name").
func (a *Authority) Name() string { return a.name }
