package models

import (
	"time"
)

// Federation defines the sporting federation model based on the 'federations'
// table. Students reference a federation through their FederationInfo.
type Federation struct {
	ID           int64          `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"` // Unique
	Acronym      string         `json:"acronym" db:"acronym"`
	Type         FederationType `json:"type" db:"type"`
	Country      string         `json:"country" db:"country"`
	Website      string         `json:"website" db:"website"`
	ContactEmail string         `json:"contactEmail" db:"contact_email"`
	ContactPhone string         `json:"contactPhone" db:"contact_phone"`
	MartialArts  []MartialArt   `json:"martialArts" db:"martial_arts"`
	FoundingYear int            `json:"foundingYear" db:"founding_year"`
	Active       bool           `json:"active" db:"active"`
	Notes        string         `json:"notes" db:"notes"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}

// Covers reports whether the federation licenses students of the given
// discipline, either directly or through "general" coverage.
func (f *Federation) Covers(art MartialArt) bool {
	for _, a := range f.MartialArts {
		if a == art || a == ArtGeneral {
			return true
		}
	}
	return false
}
