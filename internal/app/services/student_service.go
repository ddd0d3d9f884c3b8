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

// StudentService handles student profile management
type StudentService struct {
	studentRepo *repositories.StudentRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetByID retrieves a student with their belt history attached
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.studentRepo.GetBeltHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	student.BeltHistory = history

	return student, nil
}

// GetMyProfile retrieves the profile linked to a user account
func (s *StudentService) GetMyProfile(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrProfileNotLinked
		}
		return nil, err
	}

	history, err := s.studentRepo.GetBeltHistory(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	student.BeltHistory = history

	return student, nil
}

// Search lists active students matching the filter
func (s *StudentService) Search(ctx context.Context, filter dto.StudentSearchFilter) (*dto.StudentListResponse, error) {
	if filter.MartialArt != "" && !models.IsStudentMartialArt(models.MartialArt(filter.MartialArt)) {
		return nil, apperrors.NewValidationError("unknown martial art: " + filter.MartialArt)
	}
	if filter.Category != "" && !models.IsValidCategory(models.Category(filter.Category)) {
		return nil, apperrors.NewValidationError("unknown category: " + filter.Category)
	}
	if filter.CurrentBelt != "" && !models.IsValidBelt(models.BeltColor(filter.CurrentBelt)) {
		return nil, apperrors.ErrInvalidBelt
	}

	students, err := s.studentRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Count:    len(students),
		Students: students,
	}, nil
}

// UpdateMyProfile lets a student change their own contact fields. Everything
// else stays admin-only.
func (s *StudentService) UpdateMyProfile(ctx context.Context, userID int64, req *dto.UpdateMyProfileRequest) (*models.Student, error) {
	if !req.HasUpdates() {
		return nil, apperrors.NewValidationError("no updatable field provided")
	}

	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrProfileNotLinked
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.EmergencyContact != nil {
		fields["emergency_contact"] = *req.EmergencyContact
	}

	if err := s.studentRepo.UpdateFields(ctx, student.ID, fields); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, student.ID)
}

// Update applies an admin edit to a student profile. Nil fields keep their
// current value; an empty nextExamDate clears the scheduled exam.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if !req.HasUpdates() {
		return nil, apperrors.NewValidationError("no updatable field provided")
	}

	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.EmergencyContact != nil {
		fields["emergency_contact"] = *req.EmergencyContact
	}
	if req.BirthDate != nil {
		birthDate, err := helpers.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, apperrors.NewValidationError("birthDate must be YYYY-MM-DD")
		}
		fields["birth_date"] = birthDate
	}
	if req.MartialArt != nil {
		art := models.MartialArt(*req.MartialArt)
		if !models.IsStudentMartialArt(art) {
			return nil, apperrors.NewValidationError("unknown martial art: " + *req.MartialArt)
		}
		fields["martial_art"] = art
	}
	if req.Category != nil {
		category := models.Category(*req.Category)
		if !models.IsValidCategory(category) {
			return nil, apperrors.NewValidationError("unknown category: " + *req.Category)
		}
		fields["category"] = category
	}
	if req.NextExamDate != nil {
		if *req.NextExamDate == "" {
			fields["next_exam_date"] = nil
		} else {
			examDate, err := helpers.ParseDate(*req.NextExamDate)
			if err != nil {
				return nil, apperrors.NewValidationError("nextExamDate must be YYYY-MM-DD")
			}
			fields["next_exam_date"] = examDate
		}
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	if err := s.studentRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, id)
}

// Deactivate soft-deletes a student: the profile is flagged inactive and the
// login disabled, but the row and its history are never deleted.
func (s *StudentService) Deactivate(ctx context.Context, id int64) (*dto.DeactivatedStudent, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !student.Active {
		return nil, apperrors.ErrStudentInactive
	}

	if err := s.studentRepo.Deactivate(ctx, student.ID, student.UserID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Msg("Student deactivated")

	email := ""
	if user, err := s.userRepo.GetByID(ctx, student.UserID); err == nil {
		email = user.Email
	}

	return &dto.DeactivatedStudent{
		ID:            student.ID,
		FullName:      student.FullName,
		Email:         email,
		Active:        false,
		DeactivatedAt: time.Now(),
	}, nil
}

// AddAchievement records a competition or exam result on a student's record
func (s *StudentService) AddAchievement(ctx context.Context, studentID int64, achievement *models.Achievement) (*models.Achievement, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	achievement.StudentID = studentID
	if err := s.studentRepo.AddAchievement(ctx, achievement); err != nil {
		return nil, err
	}

	return achievement, nil
}

// GetAchievements lists a student's recorded achievements
func (s *StudentService) GetAchievements(ctx context.Context, studentID int64) ([]models.Achievement, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.studentRepo.GetAchievements(ctx, studentID)
}
