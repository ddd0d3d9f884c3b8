package dto

import (
	"time"

	"github.com/dojanghq/dojang/internal/app/models"
)

// DistributionEntry is one bucket of a grouped count
type DistributionEntry struct {
	Key   string `json:"key" example:"taekwondo"`
	Count int    `json:"count" example:"12"`
}

// AdminStatsResponse is the headline admin dashboard block. The money and
// event figures cover the current calendar month up to now, not a rolling
// window.
type AdminStatsResponse struct {
	Month           string  `json:"month" example:"2024-03"`
	ActiveStudents  int     `json:"activeStudents"`
	MonthCollected  float64 `json:"monthCollected"`
	MonthEvents     int     `json:"monthEvents"`
	OverduePayments int     `json:"overduePayments"`
}

// ArtDistributionEntry is one discipline's share of the active roster
type ArtDistributionEntry struct {
	MartialArt string  `json:"martialArt"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage" example:"41.67"`
}

// MartialArtsDistributionResponse breaks the active roster down by discipline
type MartialArtsDistributionResponse struct {
	TotalStudents int                    `json:"totalStudents"`
	Distribution  []ArtDistributionEntry `json:"distribution"`
}

// PaymentsStatusBucket is one slice of the month's payment status
type PaymentsStatusBucket struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// PaymentsStatusResponse summarizes the current month's payments plus
// everything overdue from any month.
type PaymentsStatusResponse struct {
	Month   string               `json:"month" example:"2024-03"`
	Paid    PaymentsStatusBucket `json:"paid"`
	Pending PaymentsStatusBucket `json:"pending"`
	Overdue PaymentsStatusBucket `json:"overdue"`
}

// ActiveAlertsResponse lists the conditions needing immediate attention
type ActiveAlertsResponse struct {
	OverduePayments []PaymentAlert  `json:"overduePayments"`
	UpcomingEvents  []*models.Event `json:"upcomingEvents"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

// RecentStudentsResponse lists the latest registrations
type RecentStudentsResponse struct {
	Count    int              `json:"count"`
	Students []StudentSummary `json:"students"`
}

// StudentDashboardResponse is the student landing-page aggregate
type StudentDashboardResponse struct {
	Profile         StudentSummary            `json:"profile"`
	NextExamDate    *time.Time                `json:"nextExamDate,omitempty"`
	BeltHistory     []models.BeltHistoryEntry `json:"beltHistory"`
	Payments        MyPaymentsSummary         `json:"payments"`
	PendingPayments []*models.Payment         `json:"pendingPayments"`
	UpcomingEvents  []*models.Event           `json:"upcomingEvents"`
	License         *StudentLicenseStatus     `json:"license,omitempty"`
}

// StudentLicenseStatus is the student's own federation license view
type StudentLicenseStatus struct {
	FederationName string     `json:"federationName"`
	LicenseNumber  string     `json:"licenseNumber"`
	LicenseType    string     `json:"licenseType"`
	ExpiryDate     *time.Time `json:"expiryDate"`
	Expired        bool       `json:"expired"`
	ExpiringSoon   bool       `json:"expiringSoon"`
}
