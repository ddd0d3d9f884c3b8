package dto

import (
	"time"

	"github.com/dojanghq/dojang/internal/app/models"
)

// FederateStudentRequest enrolls a student under a federation license
type FederateStudentRequest struct {
	FederationID  int64  `json:"federationId" binding:"required" example:"2"`
	LicenseNumber string `json:"licenseNumber" binding:"required" example:"LIC-2024-0017"`
	LicenseType   string `json:"licenseType" example:"competition"`
	ExpiryDate    string `json:"expiryDate" binding:"required" example:"2025-06-30"` // YYYY-MM-DD
}

// FederationFilter narrows the federation list
type FederationFilter struct {
	MartialArt string `form:"martialArt"`
	Country    string `form:"country"`
}

// FederationListResponse wraps a federation list with its count
type FederationListResponse struct {
	Count       int                  `json:"count"`
	Federations []*models.Federation `json:"federations"`
}

// FederatedStudentsResponse partitions a federation's students into the full
// roster plus the two expiry views.
type FederatedStudentsResponse struct {
	TotalFederated  int               `json:"totalFederated"`
	ExpiredLicenses int               `json:"expiredLicenses"`
	ExpiringSoon    int               `json:"expiringSoon"`
	Students        []*models.Student `json:"students"`
	Alerts          LicenseAlerts     `json:"alerts"`
}

// LicenseAlerts lists the students whose license needs attention
type LicenseAlerts struct {
	Expired  []LicenseAlert `json:"expired"`
	Expiring []LicenseAlert `json:"expiring"`
}

// LicenseAlert is one student's license with its expiry date
type LicenseAlert struct {
	Name          string     `json:"name"`
	LicenseNumber string     `json:"licenseNumber"`
	ExpiryDate    *time.Time `json:"expiryDate"`
}
