// Package record defines the journal's stored record types and the derived
// views computed from them.
package record

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Record is the part of every stored record the shared collection routines
// (merge, sort, streak) rely on.
type Record interface {
	RecordID() string
	Created() time.Time
}

// Body is implemented by records that carry written text.
type Body interface {
	Text() string
}

// Meta holds the fields common to every record. It is embedded in each
// concrete record type and flattened on the wire.
type Meta struct {
	ID        string     `json:"id" validate:"required"`
	CreatedAt Timestamp  `json:"createdAt" validate:"required"`
	UpdatedAt *Timestamp `json:"updatedAt,omitempty"`
}

func (m Meta) RecordID() string {
	return m.ID
}

func (m Meta) Created() time.Time {
	return m.CreatedAt.Time
}

// NewMeta stamps a fresh record created at now.
func NewMeta(id string, now time.Time) Meta {
	ts := At(now)
	return Meta{
		ID:        id,
		CreatedAt: ts,
		UpdatedAt: &ts,
	}
}

// NewID returns a time-ordered, collision resistant identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SortNewestFirst orders records by creation time, newest first. Records
// created at the same instant keep their relative order.
func SortNewestFirst[T Record](records []T) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Created().After(records[j].Created())
	})
}

// Index returns the position of the record with id, or -1.
func Index[T Record](records []T, id string) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}
