package dto

import (
	"github.com/dojanghq/dojang/internal/app/models"
)

// CreateEventRequest is the payload for POST /events
type CreateEventRequest struct {
	Title             string  `json:"title" binding:"required" example:"Campeonato Regional"`
	Description       string  `json:"description"`
	Date              string  `json:"date" binding:"required" example:"2024-09-21"` // YYYY-MM-DD
	Type              string  `json:"type" example:"training"`
	MartialArt        string  `json:"martialArt" example:"all"`
	Location          string  `json:"location" example:"Polideportivo Municipal"`
	DurationMinutes   int     `json:"durationMinutes" binding:"gte=0" example:"120"`
	VisibleToStudents *bool   `json:"visibleToStudents"` // Defaults to true
	ParticipantLimit  int     `json:"participantLimit" binding:"gte=0"`
	Cost              float64 `json:"cost" binding:"gte=0"`
}

// UpdateEventRequest carries the editable event fields. Nil fields keep their
// current value.
type UpdateEventRequest struct {
	Title             *string  `json:"title,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Date              *string  `json:"date,omitempty"` // YYYY-MM-DD
	Type              *string  `json:"type,omitempty"`
	MartialArt        *string  `json:"martialArt,omitempty"`
	Location          *string  `json:"location,omitempty"`
	DurationMinutes   *int     `json:"durationMinutes,omitempty" binding:"omitempty,gte=0"`
	VisibleToStudents *bool    `json:"visibleToStudents,omitempty"`
	ParticipantLimit  *int     `json:"participantLimit,omitempty" binding:"omitempty,gte=0"`
	Cost              *float64 `json:"cost,omitempty" binding:"omitempty,gte=0"`
}

// HasUpdates reports whether at least one field was provided
func (r *UpdateEventRequest) HasUpdates() bool {
	return r.Title != nil || r.Description != nil || r.Date != nil ||
		r.Type != nil || r.MartialArt != nil || r.Location != nil ||
		r.DurationMinutes != nil || r.VisibleToStudents != nil ||
		r.ParticipantLimit != nil || r.Cost != nil
}

// EventFilter narrows the event list; zero values mean "any"
type EventFilter struct {
	Type       string `form:"type"`
	MartialArt string `form:"martialArt"`
	From       string `form:"from"` // YYYY-MM-DD
	To         string `form:"to"`   // YYYY-MM-DD
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
}

// EventListResponse is a paginated event list
type EventListResponse struct {
	Count      int             `json:"count"`
	Pagination Pagination      `json:"pagination"`
	Events     []*models.Event `json:"events"`
}

// UpcomingEventsResponse lists the next events visible to students
type UpcomingEventsResponse struct {
	Count  int             `json:"count"`
	Events []*models.Event `json:"events"`
}
