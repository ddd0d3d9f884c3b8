package models

import (
	"time"
)

// Payment defines the monthly fee model based on the 'payments' table.
// At most one payment exists per (student, month) pair, enforced by a
// unique constraint.
type Payment struct {
	ID            int64         `json:"id" db:"id"`
	StudentID     int64         `json:"studentId" db:"student_id"`
	Month         string        `json:"month" db:"month" example:"2024-03"` // YYYY-MM
	Year          int           `json:"year" db:"year"`
	Amount        float64       `json:"amount" db:"amount"`
	Paid          bool          `json:"paid" db:"paid"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty" db:"payment_date"`
	DueDate       time.Time     `json:"dueDate" db:"due_date"`
	PaymentMethod PaymentMethod `json:"paymentMethod" db:"payment_method"`
	Notes         string        `json:"notes" db:"notes"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`

	Student *Student `json:"student,omitempty"` // Relation, no db tag
}
