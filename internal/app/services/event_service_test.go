package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
)

func TestCreateEventRejectsNegativeNumbers(t *testing.T) {
	// No repository: validation must fail before anything is persisted
	svc := &EventService{}
	date := time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")

	tests := []struct {
		name string
		req  dto.CreateEventRequest
	}{
		{"negative cost", dto.CreateEventRequest{Title: "Examen de cinturón", Date: date, Cost: -50}},
		{"negative participant limit", dto.CreateEventRequest{Title: "Examen de cinturón", Date: date, ParticipantLimit: -3}},
		{"negative duration", dto.CreateEventRequest{Title: "Examen de cinturón", Date: date, DurationMinutes: -10}},
	}

	for _, tt := range tests {
		_, err := svc.Create(context.Background(), 1, &tt.req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("%s: expected validation error, got %v", tt.name, err)
		}
	}
}

func TestUpdateEventRejectsNegativeNumbers(t *testing.T) {
	svc := &EventService{}

	cost := -50.0
	if _, err := svc.Update(context.Background(), 1, 1, true, &dto.UpdateEventRequest{Cost: &cost}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("negative cost: expected validation error, got %v", err)
	}

	limit := -3
	if _, err := svc.Update(context.Background(), 1, 1, true, &dto.UpdateEventRequest{ParticipantLimit: &limit}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("negative participant limit: expected validation error, got %v", err)
	}

	duration := -10
	if _, err := svc.Update(context.Background(), 1, 1, true, &dto.UpdateEventRequest{DurationMinutes: &duration}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("negative duration: expected validation error, got %v", err)
	}
}
