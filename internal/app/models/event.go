package models

import (
	"time"
)

// Event defines the school event model based on the 'events' table.
// Events are physically deleted, never soft-deleted.
type Event struct {
	ID                int64      `json:"id" db:"id"`
	Title             string     `json:"title" db:"title"`
	Description       string     `json:"description" db:"description"`
	Date              time.Time  `json:"date" db:"date"`
	Type              EventType  `json:"type" db:"type"`
	MartialArt        MartialArt `json:"martialArt" db:"martial_art"` // "all" targets every discipline
	CreatedBy         int64      `json:"createdBy" db:"created_by"`
	Location          string     `json:"location" db:"location"`
	DurationMinutes   int        `json:"durationMinutes" db:"duration_minutes"`
	VisibleToStudents bool       `json:"visibleToStudents" db:"visible_to_students"`
	ParticipantLimit  int        `json:"participantLimit" db:"participant_limit"` // 0 = unlimited
	Cost              float64    `json:"cost" db:"cost"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`

	CreatorEmail string `json:"creatorEmail,omitempty"` // Relation, no db tag
}
