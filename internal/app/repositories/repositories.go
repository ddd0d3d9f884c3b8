package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	BeltRepository       *BeltRepository
	FederationRepository *FederationRepository
	PaymentRepository    *PaymentRepository
	EventRepository      *EventRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		BeltRepository:       NewBeltRepository(db),
		FederationRepository: NewFederationRepository(db),
		PaymentRepository:    NewPaymentRepository(db),
		EventRepository:      NewEventRepository(db),
	}
}
