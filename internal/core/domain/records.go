package domain

import (
	"cmp"
	"slices"
	"time"
)

// Record is a domain record owned by the upstream system of record.
type Record interface {
	// RecordID returns the unique id of the record.
	RecordID() string
	// DisplayName returns the human readable name of the record.
	DisplayName() string
}

// Contact is an address book entry.
type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"Name"`
	Email   string `json:"Email,omitempty"`
	Phone   string `json:"Phone,omitempty"`
	Active  bool   `json:"Active"`
	Deleted bool   `json:"Deleted"`
}

// RecordID implements Record.
func (c Contact) RecordID() string { return c.ID }

// DisplayName implements Record.
func (c Contact) DisplayName() string { return c.Name }

// Provider is a service provider attached to the household (plumber, utility company, ...).
type Provider struct {
	ID       string `json:"id"`
	Name     string `json:"Name"`
	Category string `json:"Category,omitempty"`
	Phone    string `json:"Phone,omitempty"`
	Website  string `json:"Website,omitempty"`
	Active   bool   `json:"Active"`
	Deleted  bool   `json:"Deleted"`
}

// RecordID implements Record.
func (p Provider) RecordID() string { return p.ID }

// DisplayName implements Record.
func (p Provider) DisplayName() string { return p.Name }

// Note is a free-form note, optionally pinned to a tile.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"Title"`
	Body      string    `json:"Body,omitempty"`
	TileID    string    `json:"TileId,omitempty"`
	CreatedAt time.Time `json:"CreatedAt,omitzero"`
}

// RecordID implements Record.
func (n Note) RecordID() string { return n.ID }

// DisplayName implements Record.
func (n Note) DisplayName() string { return n.Title }

// Task is a household to-do item.
type Task struct {
	ID    string    `json:"id"`
	Title string    `json:"Title"`
	Due   time.Time `json:"Due,omitzero"`
	Done  bool      `json:"Done"`
}

// RecordID implements Record.
func (t Task) RecordID() string { return t.ID }

// DisplayName implements Record.
func (t Task) DisplayName() string { return t.Title }

// Event is a calendar event.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"Title"`
	Start time.Time `json:"Start,omitzero"`
	End   time.Time `json:"End,omitzero"`
}

// RecordID implements Record.
func (e Event) RecordID() string { return e.ID }

// DisplayName implements Record.
func (e Event) DisplayName() string { return e.Title }

// User is the profile of an account member.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
}

// RecordID implements Record.
func (u User) RecordID() string { return u.ID }

// DisplayName implements Record.
func (u User) DisplayName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// SortByID returns a copy of in sorted by record id, then display name.
func SortByID[T Record](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Or(
			cmp.Compare(a.RecordID(), b.RecordID()),
			cmp.Compare(a.DisplayName(), b.DisplayName()),
		)
	})
	return out
}

// Normalize returns the form of a collection of key that digests are taken over.
// Nil collections normalize to empty ones. Order-insensitive keys are
// sorted by id, then display name; other keys keep their order.
func Normalize[T Record](key CacheKey, in []T) []T {
	if key.OrderInsensitive() {
		return SortByID(in)
	}
	if in == nil {
		return []T{}
	}
	return in
}

// NormalizeValue applies Normalize to a cached record collection.
// Values of any other type are returned unchanged.
func NormalizeValue(key CacheKey, value any) any {
	switch v := value.(type) {
	case []Tile:
		return Normalize(key, v)
	case []Contact:
		return Normalize(key, v)
	case []Provider:
		return Normalize(key, v)
	case []Note:
		return Normalize(key, v)
	case []Task:
		return Normalize(key, v)
	case []Event:
		return Normalize(key, v)
	case []User:
		return Normalize(key, v)
	}
	return value
}
