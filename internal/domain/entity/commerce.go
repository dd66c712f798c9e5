// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Commerce is a registered local business. The CIF is its business key:
// unique among non-deleted commerces and immutable after registration.
// The admin fills in the registration fields; the commerce itself maintains
// the published content (title, summary, texts, photo), and users append
// scoring/review entries.
type Commerce struct {
	ID        string        `json:"_id,omitempty"`
	Name      string        `json:"nombre"`
	CIF       string        `json:"CIF"`
	Address   string        `json:"direccion"`
	Email     string        `json:"correo"`
	Password  string        `json:"-"` // bcrypt hash, never serialized
	Phone     string        `json:"telefono"`
	City      string        `json:"ciudad,omitempty"`
	Activity  []string      `json:"actividad,omitempty"`
	Title     string        `json:"titulo,omitempty"`
	Summary   string        `json:"resumen,omitempty"`
	Texts     []string      `json:"textos,omitempty"`
	File      *CommerceFile `json:"file,omitempty"`
	Scoring   []float64     `json:"scoring,omitempty"`
	Reviews   []string      `json:"review,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Deleted   bool          `json:"-"`
	DeletedAt *time.Time    `json:"-"`
}

// CommerceFile is the denormalized copy of an uploaded photo attached to a
// commerce. It is not a reference into the storage collection.
type CommerceFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// AverageScoring returns the mean of the appended ratings, 0 when none.
func (c *Commerce) AverageScoring() float64 {
	if len(c.Scoring) == 0 {
		return 0
	}

	var sum float64
	for _, s := range c.Scoring {
		sum += s
	}

	return sum / float64(len(c.Scoring))
}
