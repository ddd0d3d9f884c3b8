package models

import (
	"time"
)

// Student defines the student profile model based on the 'students' table.
// Exactly one Student exists per User (user_id is unique).
type Student struct {
	ID               int64      `json:"id" db:"id"`
	UserID           int64      `json:"userId" db:"user_id"`
	FullName         string     `json:"fullName" db:"full_name"`
	Phone            string     `json:"phone" db:"phone"`
	Address          string     `json:"address" db:"address"`
	BirthDate        *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	EmergencyContact string     `json:"emergencyContact" db:"emergency_contact"`
	MartialArt       MartialArt `json:"martialArt" db:"martial_art"`
	Category         Category   `json:"category" db:"category"`
	CurrentBelt      BeltColor  `json:"currentBelt" db:"current_belt"`
	NextExamDate     *time.Time `json:"nextExamDate,omitempty" db:"next_exam_date"`
	PhotoURL         string     `json:"photoUrl" db:"photo_url"`
	RegisteredAt     time.Time  `json:"registeredAt" db:"registered_at"`
	Active           bool       `json:"active" db:"active"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`

	FederationInfo FederationInfo `json:"federationInfo"`

	User        *User              `json:"user,omitempty"`        // Relation, no db tag
	BeltHistory []BeltHistoryEntry `json:"beltHistory,omitempty"` // Relation, ordered append-only
}

// FederationInfo groups the license columns embedded in the 'students' table.
/// License numbers are unique across all students: the school runs a single
// license pool regardless of federation.
type FederationInfo struct {
	FederationID         *int64      `json:"federationId,omitempty" db:"federation_id"`
	FederationName       string      `json:"federationName" db:"federation_name"`
	LicenseNumber        string      `json:"licenseNumber" db:"license_number"`
	LicenseType          LicenseType `json:"licenseType" db:"license_type"`
	LicenseExpiry        *time.Time  `json:"licenseExpiry,omitempty" db:"license_expiry"`
	IsCurrentlyFederated bool        `json:"isCurrentlyFederated" db:"is_currently_federated"`
	FederationDate       *time.Time  `json:"federationDate,omitempty" db:"federation_date"`
}

// BeltHistoryEntry is one row of the append-only 'belt_history' table.
// Each entry records the belt the student held before a promotion, so the
// history answers "when did the student hold belt X".
type BeltHistoryEntry struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	Belt         BeltColor `json:"belt" db:"belt"`
	DateAchieved time.Time `json:"dateAchieved" db:"date_achieved"`
	Instructor   string    `json:"instructor" db:"instructor"`
	Notes        string    `json:"notes" db:"notes"`
}

// LicenseHistoryEntry is one row of the append-only 'license_history' table,
// archiving a license that was replaced by a newer federation enrollment.
type LicenseHistoryEntry struct {
	ID             int64       `json:"id" db:"id"`
	StudentID      int64       `json:"studentId" db:"student_id"`
	FederationName string      `json:"federationName" db:"federation_name"`
	LicenseNumber  string      `json:"licenseNumber" db:"license_number"`
	IssueDate      *time.Time  `json:"issueDate,omitempty" db:"issue_date"`
	ExpiryDate     *time.Time  `json:"expiryDate,omitempty" db:"expiry_date"`
	LicenseType    LicenseType `json:"licenseType" db:"license_type"`
	Notes          string      `json:"notes" db:"notes"`
}

// Achievement is one row of the 'achievements' table
type Achievement struct {
	ID          int64      `json:"id" db:"id"`
	StudentID   int64      `json:"studentId" db:"student_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	AchievedAt  *time.Time `json:"achievedAt,omitempty" db:"achieved_at"`
	Organizer   string     `json:"organizer" db:"organizer"`
	Location    string     `json:"location" db:"location"`
	Notes       string     `json:"notes" db:"notes"`
}
