package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/repositories"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
	"github.com/dojanghq/dojang/internal/pkg/auth"
	"github.com/dojanghq/dojang/internal/pkg/helpers"
)

// AuthService handles registration, login and identity lookups
type AuthService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a login account plus its student profile. The two inserts
// are compensated, not transactional: when the profile insert fails the user
// created in this request is deleted again so a retry with the same email
// succeeds.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashedPassword,
		RoleType: models.RoleStudent,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	student, err := newStudentProfile(user, req)
	if err == nil {
		err = s.studentRepo.Create(ctx, student)
	}
	if err != nil {
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			s.logger.Error().Err(delErr).Int64("userId", user.ID).
				Msg("Failed to compensate user after profile creation error")
		}
		return nil, err
	}

	token, err := s.generateTokenResponse(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Int64("studentId", student.ID).Msg("Student registered")

	return &dto.RegisterResponse{
		Token:          *token,
		StudentProfile: dto.NewStudentSummary(student),
	}, nil
}

// newStudentProfile builds the profile row for a fresh registration. Missing
// optional fields fall back to the school defaults: white belt, adult
// category, taekwondo, not federated.
func newStudentProfile(user *models.User, req *dto.RegisterRequest) (*models.Student, error) {
	student := &models.Student{
		UserID:           user.ID,
		FullName:         strings.TrimSpace(req.FullName),
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		MartialArt:       models.ArtTaekwondo,
		Category:         models.CategoryAdult,
		CurrentBelt:      models.BeltBlanco,
	}

	if student.FullName == "" {
		// Fall back to the mailbox name until the student completes the profile
		student.FullName = strings.SplitN(user.Email, "@", 2)[0]
	}

	if req.MartialArt != "" {
		art := models.MartialArt(req.MartialArt)
		if !models.IsStudentMartialArt(art) {
			return nil, apperrors.NewValidationError("unknown martial art: " + req.MartialArt)
		}
		student.MartialArt = art
	}

	if req.BirthDate != "" {
		birthDate, err := helpers.ParseDate(req.BirthDate)
		if err != nil {
			return nil, apperrors.NewValidationError("birthDate must be YYYY-MM-DD")
		}
		student.BirthDate = &birthDate
	}

	return student, nil
}

// Login authenticates a user by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.generateTokenResponse(user)
}

// GetProfile returns the authenticated identity, with the student profile ID
// attached when one exists.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.UserProfile{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.RoleType),
	}

	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err == nil {
		profile.StudentID = &student.ID
	} else if !apperrors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	return profile, nil
}

func (s *AuthService) generateTokenResponse(user *models.User) (*dto.TokenResponse, error) {
	accessToken, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		UserID:      user.ID,
		Email:       user.Email,
		Role:        string(user.RoleType),
	}, nil
}
