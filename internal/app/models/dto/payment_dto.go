package dto

import (
	"time"

	"github.com/dojanghq/dojang/internal/app/models"
)

// CreatePaymentRequest creates one monthly fee for a student
type CreatePaymentRequest struct {
	StudentID int64   `json:"studentId" binding:"required" example:"7"`
	Month     string  `json:"month" binding:"required" example:"2024-03"` // YYYY-MM
	Year      int     `json:"year" example:"2024"`
	Amount    float64 `json:"amount" binding:"required,gte=0" example:"50"`
	DueDate   string  `json:"dueDate" binding:"required" example:"2024-03-05"` // YYYY-MM-DD
	Notes     string  `json:"notes"`
}

// MarkPaidRequest settles a pending payment
type MarkPaidRequest struct {
	PaymentMethod string `json:"paymentMethod" example:"cash"` // Defaults to cash
	Notes         string `json:"notes"`
}

// PaymentFilter narrows a student's payment list
type PaymentFilter struct {
	Year  int    `form:"year"`
	Month string `form:"month"`
	Paid  *bool  `form:"paid"`
}

// PaymentTotals sums a payment list by state
type PaymentTotals struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Total   float64 `json:"total"`
}

// StudentPaymentsResponse is a student's payment list with totals
type StudentPaymentsResponse struct {
	Count    int               `json:"count"`
	Totals   PaymentTotals     `json:"totals"`
	Payments []*models.Payment `json:"payments"`
}

// PaymentAlert annotates an unpaid payment with how far it is from its due date
type PaymentAlert struct {
	ID           int64     `json:"id"`
	Student      string    `json:"student"`
	Month        string    `json:"month"`
	Amount       float64   `json:"amount"`
	DueDate      time.Time `json:"dueDate"`
	DaysOverdue  int       `json:"daysOverdue,omitempty"`
	DaysUntilDue int       `json:"daysUntilDue,omitempty"`
}

// AlertBucket is one side of the alert partition (overdue or upcoming)
type AlertBucket struct {
	Count       int            `json:"count"`
	TotalAmount float64        `json:"totalAmount"`
	Payments    []PaymentAlert `json:"payments"`
}

// PaymentAlertsResponse carries both alert buckets plus an overall summary
type PaymentAlertsResponse struct {
	Overdue  AlertBucket         `json:"overdue"`
	Upcoming AlertBucket         `json:"upcoming"`
	Summary  PaymentAlertSummary `json:"summary"`
}

// PaymentAlertSummary aggregates both buckets
type PaymentAlertSummary struct {
	TotalAlerts int       `json:"totalAlerts"`
	TotalAmount float64   `json:"totalAmount"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// MartialArtBreakdown groups a report's payments by discipline
type MartialArtBreakdown struct {
	Total         int     `json:"total"`
	Paid          int     `json:"paid"`
	Pending       int     `json:"pending"`
	AmountPaid    float64 `json:"amountPaid"`
	AmountPending float64 `json:"amountPending"`
}

// MonthlyReportStatistics summarizes one month of payments. PaymentRate
// divides paid payments by active students, not by issued payments.
type MonthlyReportStatistics struct {
	TotalStudents  int     `json:"totalStudents"`
	TotalPayments  int     `json:"totalPayments"`
	Paid           int     `json:"paid"`
	Pending        int     `json:"pending"`
	PaymentRate    string  `json:"paymentRate" example:"78.57%"`
	TotalCollected float64 `json:"totalCollected"`
	TotalPending   float64 `json:"totalPending"`
	ExpectedTotal  float64 `json:"expectedTotal"`
}

// MonthlyReportResponse is the admin payment report for one period
type MonthlyReportResponse struct {
	Period          string                          `json:"period" example:"2024-03"`
	Statistics      MonthlyReportStatistics         `json:"statistics"`
	ByMartialArt    map[string]*MartialArtBreakdown `json:"byMartialArt"`
	PaidPayments    []*models.Payment               `json:"paidPayments"`
	PendingPayments []*models.Payment               `json:"pendingPayments"`
}

// MyPaymentsSummary summarizes the calling student's current-year payments
type MyPaymentsSummary struct {
	CurrentYear   int     `json:"currentYear"`
	TotalPayments int     `json:"totalPayments"`
	Paid          int     `json:"paid"`
	Pending       int     `json:"pending"`
	AmountPaid    float64 `json:"amountPaid"`
	AmountPending float64 `json:"amountPending"`
}

// MyPaymentsResponse is the student-facing payment listing
type MyPaymentsResponse struct {
	Student  string            `json:"student"`
	Summary  MyPaymentsSummary `json:"summary"`
	Payments []*models.Payment `json:"payments"`
}
