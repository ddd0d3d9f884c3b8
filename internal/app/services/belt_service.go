package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/repositories"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
	"github.com/dojanghq/dojang/internal/pkg/helpers"
)

// Promotion defaults when the admin leaves the fields empty
const (
	defaultPromotionInstructor = "Administrador"
	defaultPromotionNotes      = "Promoción de grado"
)

// BeltService handles the belt ladder and grade promotions
type BeltService struct {
	studentRepo *repositories.StudentRepository
	beltRepo    *repositories.BeltRepository
	logger      zerolog.Logger
}

// NewBeltService creates a new BeltService
func NewBeltService(studentRepo *repositories.StudentRepository, beltRepo *repositories.BeltRepository, logger zerolog.Logger) *BeltService {
	return &BeltService{
		studentRepo: studentRepo,
		beltRepo:    beltRepo,
		logger:      logger,
	}
}

// promotionRecord is the resolved history entry a promotion will write
type promotionRecord struct {
	PreviousBelt models.BeltColor
	NewBelt      models.BeltColor
	DateAchieved time.Time
	Instructor   string
	Notes        string
}

// buildPromotionRecord resolves a promotion request against the student's
// current state. The history entry records the belt held UNTIL this exam, so
// the trail answers "when did the student hold belt X". Any ladder belt is a
// legal target: promotions may skip grades or even go backwards, the
// instructor's judgement is not second-guessed here.
func buildPromotionRecord(student *models.Student, req *dto.PromoteRequest, now time.Time) (promotionRecord, error) {
	newBelt := models.BeltColor(req.NewBelt)
	if !models.IsValidBelt(newBelt) {
		return promotionRecord{}, apperrors.ErrInvalidBelt
	}

	record := promotionRecord{
		PreviousBelt: student.CurrentBelt,
		NewBelt:      newBelt,
		DateAchieved: now,
		Instructor:   defaultPromotionInstructor,
		Notes:        defaultPromotionNotes,
	}

	if req.ExamDate != "" {
		examDate, err := helpers.ParseDate(req.ExamDate)
		if err != nil {
			return promotionRecord{}, apperrors.NewValidationError("examDate must be YYYY-MM-DD")
		}
		record.DateAchieved = examDate
	}
	if req.Instructor != "" {
		record.Instructor = req.Instructor
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}

	return record, nil
}

// Promote advances a student to a new belt, archiving the old one and
// clearing any scheduled exam date.
func (s *BeltService) Promote(ctx context.Context, studentID int64, req *dto.PromoteRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	record, err := buildPromotionRecord(student, req, time.Now())
	if err != nil {
		return nil, err
	}

	err = s.studentRepo.Promote(ctx, student.ID, record.PreviousBelt, record.NewBelt,
		record.DateAchieved, record.Instructor, record.Notes)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentId", student.ID).
		Str("from", string(record.PreviousBelt)).
		Str("to", string(record.NewBelt)).
		Msg("Student promoted")

	return s.studentRepo.GetByID(ctx, studentID)
}

// GetBeltHistory returns a student's grade trail in the order it was earned
func (s *BeltService) GetBeltHistory(ctx context.Context, studentID int64) (*dto.BeltHistoryResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	history, err := s.studentRepo.GetBeltHistory(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.BeltHistoryResponse{
		Student:     student.FullName,
		CurrentBelt: string(student.CurrentBelt),
		History:     history,
	}, nil
}

// ListBelts returns the seeded belt ladder in grade order
func (s *BeltService) ListBelts(ctx context.Context) ([]*models.Belt, error) {
	return s.beltRepo.GetAll(ctx)
}
