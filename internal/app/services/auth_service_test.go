package services

import (
	"errors"
	"testing"
	"time"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
)

func TestNewStudentProfileDefaults(t *testing.T) {
	user := &models.User{ID: 3, Email: "ana.garcia@example.com"}

	student, err := newStudentProfile(user, &dto.RegisterRequest{FullName: "  Ana García  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if student.UserID != 3 {
		t.Errorf("userID = %d, want 3", student.UserID)
	}
	if student.FullName != "Ana García" {
		t.Errorf("full name = %q, want trimmed", student.FullName)
	}
	if student.MartialArt != models.ArtTaekwondo {
		t.Errorf("martial art = %s, want taekwondo default", student.MartialArt)
	}
	if student.Category != models.CategoryAdult {
		t.Errorf("category = %s, want adulto default", student.Category)
	}
	if student.CurrentBelt != models.BeltBlanco {
		t.Errorf("belt = %s, want blanco default", student.CurrentBelt)
	}
	if student.BirthDate != nil {
		t.Errorf("birth date = %v, want unset", student.BirthDate)
	}
}

func TestNewStudentProfileNameFallback(t *testing.T) {
	user := &models.User{Email: "ana.garcia@example.com"}

	student, err := newStudentProfile(user, &dto.RegisterRequest{FullName: "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if student.FullName != "ana.garcia" {
		t.Errorf("full name = %q, want mailbox fallback", student.FullName)
	}
}

func TestNewStudentProfileMartialArt(t *testing.T) {
	user := &models.User{Email: "ana@example.com"}

	student, err := newStudentProfile(user, &dto.RegisterRequest{FullName: "Ana", MartialArt: "hapkido"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if student.MartialArt != models.ArtHapkido {
		t.Errorf("martial art = %s, want hapkido", student.MartialArt)
	}

	_, err = newStudentProfile(user, &dto.RegisterRequest{FullName: "Ana", MartialArt: "karate"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for unknown discipline, got %v", err)
	}
}

func TestNewStudentProfileBirthDate(t *testing.T) {
	user := &models.User{Email: "ana@example.com"}

	student, err := newStudentProfile(user, &dto.RegisterRequest{FullName: "Ana", BirthDate: "2001-09-14"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2001, time.September, 14, 0, 0, 0, 0, time.UTC)
	if student.BirthDate == nil || !student.BirthDate.Equal(want) {
		t.Errorf("birth date = %v, want %v", student.BirthDate, want)
	}

	_, err = newStudentProfile(user, &dto.RegisterRequest{FullName: "Ana", BirthDate: "14/09/2001"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}
}
