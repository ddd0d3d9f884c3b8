package dto

import (
	"time"

	"github.com/dojanghq/dojang/internal/app/models"
)

// StudentSummary is the compact student representation used in lists and in
// the registration response.
type StudentSummary struct {
	ID          int64  `json:"id" example:"7"`
	FullName    string `json:"fullName" example:"Juan Pérez"`
	MartialArt  string `json:"martialArt" example:"taekwondo"`
	Category    string `json:"category" example:"adult"`
	CurrentBelt string `json:"currentBelt" example:"blanco"`
	Federated   bool   `json:"federated" example:"false"`
}

// NewStudentSummary projects a student model into its summary form
func NewStudentSummary(s *models.Student) StudentSummary {
	return StudentSummary{
		ID:          s.ID,
		FullName:    s.FullName,
		MartialArt:  string(s.MartialArt),
		Category:    string(s.Category),
		CurrentBelt: string(s.CurrentBelt),
		Federated:   s.FederationInfo.IsCurrentlyFederated,
	}
}

// UpdateMyProfileRequest carries the fields a student may change on their own
// profile. Everything else is admin-only.
type UpdateMyProfileRequest struct {
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
}

// HasUpdates reports whether at least one updatable field was provided
func (r *UpdateMyProfileRequest) HasUpdates() bool {
	return r.Phone != nil || r.Address != nil || r.EmergencyContact != nil
}

// UpdateStudentRequest carries the admin-editable student fields. Nil fields
// are left untouched.
type UpdateStudentRequest struct {
	FullName         *string `json:"fullName,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	BirthDate        *string `json:"birthDate,omitempty"` // YYYY-MM-DD
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	MartialArt       *string `json:"martialArt,omitempty"`
	Category         *string `json:"category,omitempty"`
	NextExamDate     *string `json:"nextExamDate,omitempty"` // YYYY-MM-DD, empty string clears
	Active           *bool   `json:"active,omitempty"`
}

// HasUpdates reports whether at least one field was provided
func (r *UpdateStudentRequest) HasUpdates() bool {
	return r.FullName != nil || r.Phone != nil || r.Address != nil ||
		r.BirthDate != nil || r.EmergencyContact != nil || r.MartialArt != nil ||
		r.Category != nil || r.NextExamDate != nil || r.Active != nil
}

// StudentSearchFilter narrows the student list; zero values mean "any".
// Only active students are searched.
type StudentSearchFilter struct {
	MartialArt  string `form:"martialArt"`
	Category    string `form:"category"`
	CurrentBelt string `form:"currentBelt"`
	Federated   *bool  `form:"federated"`
}

// StudentListResponse wraps a student list with its count
type StudentListResponse struct {
	Count    int               `json:"count"`
	Students []*models.Student `json:"students"`
}

// DeactivatedStudent is the confirmation payload for a soft-deactivation
type DeactivatedStudent struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Active        bool      `json:"active"`
	DeactivatedAt time.Time `json:"deactivatedAt"`
}
