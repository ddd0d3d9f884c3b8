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

// licenseExpiryWindow is how far ahead a license counts as "expiring soon"
const licenseExpiryWindow = 30 * 24 * time.Hour

// FederationService handles federations and student licensing
type FederationService struct {
	federationRepo *repositories.FederationRepository
	studentRepo    *repositories.StudentRepository
	logger         zerolog.Logger
}

// NewFederationService creates a new FederationService
func NewFederationService(federationRepo *repositories.FederationRepository, studentRepo *repositories.StudentRepository, logger zerolog.Logger) *FederationService {
	return &FederationService{
		federationRepo: federationRepo,
		studentRepo:    studentRepo,
		logger:         logger,
	}
}

// ListFederations lists active federations matching the filter
func (s *FederationService) ListFederations(ctx context.Context, filter dto.FederationFilter) (*dto.FederationListResponse, error) {
	federations, err := s.federationRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.FederationListResponse{
		Count:       len(federations),
		Federations: federations,
	}, nil
}

// GetFederation retrieves one federation
func (s *FederationService) GetFederation(ctx context.Context, id int64) (*models.Federation, error) {
	return s.federationRepo.GetByID(ctx, id)
}

// FederateStudent enrolls a student under a federation license. The
// federation must cover the student's discipline; an existing license is
// archived before being overwritten. Nothing is mutated on a failed check.
func (s *FederationService) FederateStudent(ctx context.Context, studentID int64, req *dto.FederateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	federation, err := s.federationRepo.GetByID(ctx, req.FederationID)
	if err != nil {
		return nil, err
	}

	if !federation.Covers(student.MartialArt) {
		return nil, apperrors.ErrMartialArtNotCovered
	}

	expiry, err := helpers.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, apperrors.NewValidationError("expiryDate must be YYYY-MM-DD")
	}

	licenseType := models.LicenseGeneral
	if req.LicenseType != "" {
		licenseType = models.LicenseType(req.LicenseType)
	}

	taken, err := s.studentRepo.LicenseNumberExists(ctx, req.LicenseNumber, student.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrLicenseNumberExists
	}

	err = s.studentRepo.Federate(ctx, student, federation, req.LicenseNumber, licenseType, expiry, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentId", student.ID).
		Int64("federationId", federation.ID).
		Str("license", req.LicenseNumber).
		Msg("Student federated")

	return s.studentRepo.GetByID(ctx, studentID)
}

// partitionLicenses splits federated students into expiry buckets: already
// expired, and expiring within the warning window.
func partitionLicenses(students []*models.Student, now time.Time) dto.LicenseAlerts {
	alerts := dto.LicenseAlerts{
		Expired:  []dto.LicenseAlert{},
		Expiring: []dto.LicenseAlert{},
	}

	cutoff := now.Add(licenseExpiryWindow)
	for _, student := range students {
		expiry := student.FederationInfo.LicenseExpiry
		if expiry == nil {
			continue
		}

		alert := dto.LicenseAlert{
			Name:          student.FullName,
			LicenseNumber: student.FederationInfo.LicenseNumber,
			ExpiryDate:    expiry,
		}

		// A license run out this very instant is expired, not expiring
		switch {
		case !expiry.After(now):
			alerts.Expired = append(alerts.Expired, alert)
		case !expiry.After(cutoff):
			alerts.Expiring = append(alerts.Expiring, alert)
		}
	}

	return alerts
}

// GetFederatedStudents returns a federation's current roster with the expiry
// alert views. Pure read, nothing is mutated.
func (s *FederationService) GetFederatedStudents(ctx context.Context, federationID int64) (*dto.FederatedStudentsResponse, error) {
	// 404 before an empty roster
	if _, err := s.federationRepo.GetByID(ctx, federationID); err != nil {
		return nil, err
	}

	students, err := s.studentRepo.GetFederatedByFederation(ctx, federationID)
	if err != nil {
		return nil, err
	}

	alerts := partitionLicenses(students, time.Now())

	return &dto.FederatedStudentsResponse{
		TotalFederated:  len(students),
		ExpiredLicenses: len(alerts.Expired),
		ExpiringSoon:    len(alerts.Expiring),
		Students:        students,
		Alerts:          alerts,
	}, nil
}

// GetLicenseHistory lists a student's archived licenses
func (s *FederationService) GetLicenseHistory(ctx context.Context, studentID int64) ([]models.LicenseHistoryEntry, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.studentRepo.GetLicenseHistory(ctx, studentID)
}
