package services

import (
	"github.com/rs/zerolog"

	"github.com/dojanghq/dojang/internal/app/repositories"
	"github.com/dojanghq/dojang/internal/pkg/auth"
	"github.com/dojanghq/dojang/internal/pkg/photostorage"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	StudentService    *StudentService
	BeltService       *BeltService
	FederationService *FederationService
	PaymentService    *PaymentService
	EventService      *EventService
	DashboardService  *DashboardService
	PhotoService      *PhotoService
}

// NewServices wires every service to its repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage photostorage.PhotoStorage,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.StudentRepository, jwtService, logger),
		StudentService:    NewStudentService(repos.StudentRepository, repos.UserRepository, logger),
		BeltService:       NewBeltService(repos.StudentRepository, repos.BeltRepository, logger),
		FederationService: NewFederationService(repos.FederationRepository, repos.StudentRepository, logger),
		PaymentService:    NewPaymentService(repos.PaymentRepository, repos.StudentRepository, logger),
		EventService:      NewEventService(repos.EventRepository, repos.StudentRepository, logger),
		DashboardService:  NewDashboardService(repos.StudentRepository, repos.PaymentRepository, repos.EventRepository, logger),
		PhotoService:      NewPhotoService(repos.StudentRepository, storage, logger),
	}
}
