package services

import (
	"errors"
	"testing"
	"time"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
)

func TestBuildPromotionRecordDefaults(t *testing.T) {
	student := &models.Student{ID: 7, CurrentBelt: models.BeltAmarillo}
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	record, err := buildPromotionRecord(student, &dto.PromoteRequest{NewBelt: "naranja"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The history archives the belt held until this exam
	if record.PreviousBelt != models.BeltAmarillo {
		t.Errorf("previous belt = %s, want amarillo", record.PreviousBelt)
	}
	if record.NewBelt != models.BeltNaranja {
		t.Errorf("new belt = %s, want naranja", record.NewBelt)
	}
	if !record.DateAchieved.Equal(now) {
		t.Errorf("date achieved = %v, want now", record.DateAchieved)
	}
	if record.Instructor != defaultPromotionInstructor {
		t.Errorf("instructor = %q, want default", record.Instructor)
	}
	if record.Notes != defaultPromotionNotes {
		t.Errorf("notes = %q, want default", record.Notes)
	}
}

func TestBuildPromotionRecordExplicitFields(t *testing.T) {
	student := &models.Student{CurrentBelt: models.BeltVerde}
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	record, err := buildPromotionRecord(student, &dto.PromoteRequest{
		NewBelt:    "azul",
		ExamDate:   "2024-06-01",
		Instructor: "Maestro Kim",
		Notes:      "Examen superado",
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	if !record.DateAchieved.Equal(want) {
		t.Errorf("date achieved = %v, want exam date", record.DateAchieved)
	}
	if record.Instructor != "Maestro Kim" || record.Notes != "Examen superado" {
		t.Errorf("explicit fields not kept: %+v", record)
	}
}

func TestBuildPromotionRecordUnknownBelt(t *testing.T) {
	student := &models.Student{CurrentBelt: models.BeltBlanco}

	_, err := buildPromotionRecord(student, &dto.PromoteRequest{NewBelt: "dorado"}, time.Now())
	if !errors.Is(err, apperrors.ErrInvalidBelt) {
		t.Fatalf("expected ErrInvalidBelt, got %v", err)
	}
}

func TestBuildPromotionRecordBadExamDate(t *testing.T) {
	student := &models.Student{CurrentBelt: models.BeltBlanco}

	_, err := buildPromotionRecord(student, &dto.PromoteRequest{NewBelt: "amarillo", ExamDate: "15/06/2024"}, time.Now())
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildPromotionRecordAllowsSkipsAndDemotions(t *testing.T) {
	student := &models.Student{CurrentBelt: models.BeltRojo}
	now := time.Now()

	// Skipping ahead and going backwards are both instructor calls
	if _, err := buildPromotionRecord(student, &dto.PromoteRequest{NewBelt: "negro-2dan"}, now); err != nil {
		t.Fatalf("skip rejected: %v", err)
	}
	if _, err := buildPromotionRecord(student, &dto.PromoteRequest{NewBelt: "blanco"}, now); err != nil {
		t.Fatalf("demotion rejected: %v", err)
	}
}
