package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/repositories"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
	"github.com/dojanghq/dojang/internal/pkg/photostorage"
)

// maxPhotoSize caps profile photo uploads at 5MB
const maxPhotoSize = 5 << 20

var allowedPhotoExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// PhotoService handles student profile photos on the CDN
type PhotoService struct {
	studentRepo *repositories.StudentRepository
	storage     photostorage.PhotoStorage
	logger      zerolog.Logger
}

// NewPhotoService creates a new PhotoService. A nil storage disables photo
// uploads (no CDN account configured).
func NewPhotoService(studentRepo *repositories.StudentRepository, storage photostorage.PhotoStorage, logger zerolog.Logger) *PhotoService {
	return &PhotoService{
		studentRepo: studentRepo,
		storage:     storage,
		logger:      logger,
	}
}

func validatePhotoHeader(header *multipart.FileHeader) error {
	if header.Size > maxPhotoSize {
		return apperrors.NewValidationError("photo must not exceed 5MB")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPhotoExtensions[ext] {
		return apperrors.NewValidationError("photo must be a jpeg, jpg, png, gif or webp image")
	}

	return nil
}

// UploadPhoto replaces a student's profile photo. The old CDN asset is
// removed best-effort before the upload; if persisting the new URL fails the
// fresh asset is removed again so the CDN does not accumulate orphans.
func (s *PhotoService) UploadPhoto(ctx context.Context, studentID int64, header *multipart.FileHeader) (*models.Student, error) {
	if s.storage == nil {
		return nil, apperrors.NewBadRequestError("photo storage is not configured")
	}

	if err := validatePhotoHeader(header); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening uploaded photo: %w", err)
	}
	defer file.Close()

	if student.PhotoURL != "" {
		if err := s.storage.DeleteStudentPhoto(ctx, student.PhotoURL); err != nil {
			s.logger.Warn().Err(err).Int64("studentId", student.ID).Msg("Failed to delete previous photo")
		}
	}

	photoURL, err := s.storage.UploadStudentPhoto(ctx, student.ID, file)
	if err != nil {
		return nil, err
	}

	err = s.studentRepo.UpdateFields(ctx, student.ID, map[string]interface{}{"photo_url": photoURL})
	if err != nil {
		if delErr := s.storage.DeleteStudentPhoto(ctx, photoURL); delErr != nil {
			s.logger.Warn().Err(delErr).Int64("studentId", student.ID).Msg("Failed to clean up uploaded photo")
		}
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Msg("Profile photo updated")
	return s.studentRepo.GetByID(ctx, student.ID)
}

// DeletePhoto removes a student's profile photo from the CDN and the profile
func (s *PhotoService) DeletePhoto(ctx context.Context, studentID int64) error {
	if s.storage == nil {
		return apperrors.NewBadRequestError("photo storage is not configured")
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if student.PhotoURL == "" {
		return apperrors.NewBadRequestError("student has no profile photo")
	}

	if err := s.storage.DeleteStudentPhoto(ctx, student.PhotoURL); err != nil {
		return err
	}

	return s.studentRepo.UpdateFields(ctx, student.ID, map[string]interface{}{"photo_url": ""})
}
