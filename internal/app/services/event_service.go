package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/repositories"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
	"github.com/dojanghq/dojang/internal/pkg/helpers"
)

// defaultEventDuration is assumed when the admin gives no duration
const defaultEventDuration = 60

// EventService handles the school event calendar
type EventService struct {
	eventRepo   *repositories.EventRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repositories.EventRepository, studentRepo *repositories.StudentRepository, logger zerolog.Logger) *EventService {
	return &EventService{
		eventRepo:   eventRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create schedules a new event. Past dates are rejected; omitted fields take
// the calendar defaults (60 minutes, every discipline, visible).
func (s *EventService) Create(ctx context.Context, createdBy int64, req *dto.CreateEventRequest) (*models.Event, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title cannot be empty")
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD")
	}

	// Dates parse as UTC midnight, so compare against the UTC day
	today := startOfDay(time.Now().UTC())
	if date.Before(today) {
		return nil, apperrors.NewValidationError("event date cannot be in the past")
	}

	if err := validateEventNumbers(req.DurationMinutes, req.ParticipantLimit, req.Cost); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		Date:              date,
		Type:              models.EventTraining,
		MartialArt:        models.ArtAll,
		CreatedBy:         createdBy,
		Location:          req.Location,
		DurationMinutes:   defaultEventDuration,
		VisibleToStudents: true,
		ParticipantLimit:  req.ParticipantLimit,
		Cost:              req.Cost,
	}

	if req.Type != "" {
		eventType := models.EventType(req.Type)
		if !models.IsValidEventType(eventType) {
			return nil, apperrors.NewValidationError("unknown event type: " + req.Type)
		}
		event.Type = eventType
	}
	if req.MartialArt != "" {
		art := models.MartialArt(req.MartialArt)
		if art != models.ArtAll && !models.IsStudentMartialArt(art) {
			return nil, apperrors.NewValidationError("unknown martial art: " + req.MartialArt)
		}
		event.MartialArt = art
	}
	if req.DurationMinutes > 0 {
		event.DurationMinutes = req.DurationMinutes
	}
	if req.VisibleToStudents != nil {
		event.VisibleToStudents = *req.VisibleToStudents
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventId", event.ID).Str("title", event.Title).Msg("Event created")
	return event, nil
}

// GetByID retrieves one event. Students cannot see hidden events.
func (s *EventService) GetByID(ctx context.Context, id int64, isAdmin bool) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !event.VisibleToStudents && !isAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	return event, nil
}

// List returns a page of events. Students only see visible events; a
// discipline filter also matches events open to every discipline.
func (s *EventService) List(ctx context.Context, filter dto.EventFilter, isAdmin bool) (*dto.EventListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)

	events, total, err := s.eventRepo.List(ctx, filter, offset, limit, !isAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.EventListResponse{
		Count:      len(events),
		Pagination: helpers.NewPagination(total, filter.Page, limit),
		Events:     events,
	}, nil
}

// Upcoming lists the next visible events. A student caller defaults to their
// own discipline.
func (s *EventService) Upcoming(ctx context.Context, limit int, userID int64, isAdmin bool) (*dto.UpcomingEventsResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	var art models.MartialArt
	if !isAdmin {
		student, err := s.studentRepo.GetByUserID(ctx, userID)
		if err == nil {
			art = student.MartialArt
		} else if !apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
	}

	events, err := s.eventRepo.GetUpcoming(ctx, startOfDay(time.Now()), limit, art)
	if err != nil {
		return nil, err
	}

	return &dto.UpcomingEventsResponse{Count: len(events), Events: events}, nil
}

// Today lists today's visible events grouped by discipline
func (s *EventService) Today(ctx context.Context) (map[string][]*models.Event, error) {
	from := startOfDay(time.Now())
	to := from.Add(24*time.Hour - time.Nanosecond)

	events, err := s.eventRepo.GetBetween(ctx, from, to, 0, true)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]*models.Event{}
	for _, event := range events {
		key := string(event.MartialArt)
		grouped[key] = append(grouped[key], event)
	}

	return grouped, nil
}

// Update edits an event. Only its creator or an admin may touch it.
func (s *EventService) Update(ctx context.Context, id int64, callerID int64, isAdmin bool, req *dto.UpdateEventRequest) (*models.Event, error) {
	if !req.HasUpdates() {
		return nil, apperrors.NewValidationError("no updatable field provided")
	}

	duration, limit, cost := 0, 0, 0.0
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	if req.ParticipantLimit != nil {
		limit = *req.ParticipantLimit
	}
	if req.Cost != nil {
		cost = *req.Cost
	}
	if err := validateEventNumbers(duration, limit, cost); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && event.CreatedBy != callerID {
		return nil, apperrors.ErrPermissionDenied
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperrors.NewValidationError("title cannot be empty")
		}
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		date, err := helpers.ParseDate(*req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date must be YYYY-MM-DD")
		}
		fields["date"] = date
	}
	if req.Type != nil {
		eventType := models.EventType(*req.Type)
		if !models.IsValidEventType(eventType) {
			return nil, apperrors.NewValidationError("unknown event type: " + *req.Type)
		}
		fields["type"] = eventType
	}
	if req.MartialArt != nil {
		art := models.MartialArt(*req.MartialArt)
		if art != models.ArtAll && !models.IsStudentMartialArt(art) {
			return nil, apperrors.NewValidationError("unknown martial art: " + *req.MartialArt)
		}
		fields["martial_art"] = art
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.DurationMinutes != nil {
		fields["duration_minutes"] = *req.DurationMinutes
	}
	if req.VisibleToStudents != nil {
		fields["visible_to_students"] = *req.VisibleToStudents
	}
	if req.ParticipantLimit != nil {
		fields["participant_limit"] = *req.ParticipantLimit
	}
	if req.Cost != nil {
		fields["cost"] = *req.Cost
	}

	if err := s.eventRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, id)
}

// Delete removes an event for good. Only its creator or an admin may.
func (s *EventService) Delete(ctx context.Context, id int64, callerID int64, isAdmin bool) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && event.CreatedBy != callerID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("eventId", id).Msg("Event deleted")
	return nil
}

// validateEventNumbers rejects negative duration, limit and cost
func validateEventNumbers(durationMinutes, participantLimit int, cost float64) error {
	if durationMinutes < 0 {
		return apperrors.NewValidationError("durationMinutes must not be negative")
	}
	if participantLimit < 0 {
		return apperrors.NewValidationError("participantLimit must not be negative")
	}
	if cost < 0 {
		return apperrors.NewValidationError("cost must not be negative")
	}
	return nil
}

// startOfDay truncates t to local midnight
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
