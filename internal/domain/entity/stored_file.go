package entity

import "time"

// StoredFile is an entry in the generic upload collection. It has a
// lifecycle of its own: commerces embed a denormalized CommerceFile copy
// instead of referencing these documents.
type StoredFile struct {
	ID        string    `json:"_id,omitempty"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
