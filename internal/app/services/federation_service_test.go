package services

import (
	"testing"
	"time"

	"github.com/dojanghq/dojang/internal/app/models"
)

func federatedStudent(name, license string, expiry *time.Time) *models.Student {
	return &models.Student{
		FullName: name,
		FederationInfo: models.FederationInfo{
			LicenseNumber:        license,
			LicenseExpiry:        expiry,
			IsCurrentlyFederated: true,
		},
	}
}

func TestPartitionLicenses(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	expired := now.AddDate(0, 0, -3)
	soon := now.AddDate(0, 0, 15)
	edge := now.Add(licenseExpiryWindow)
	far := now.AddDate(0, 6, 0)

	students := []*models.Student{
		federatedStudent("Ana", "LIC-001", &expired),
		federatedStudent("Berta", "LIC-002", &soon),
		federatedStudent("Carlos", "LIC-003", &edge),
		federatedStudent("Diego", "LIC-004", &far),
		federatedStudent("Elena", "LIC-005", nil),
		federatedStudent("Fran", "LIC-006", &now),
	}

	alerts := partitionLicenses(students, now)

	// Run out right now counts as expired, not expiring
	if len(alerts.Expired) != 2 || alerts.Expired[0].Name != "Ana" || alerts.Expired[1].Name != "Fran" {
		t.Fatalf("expired bucket = %+v, want Ana and Fran", alerts.Expired)
	}
	if len(alerts.Expiring) != 2 {
		t.Fatalf("expiring bucket has %d entries, want 2 (window edge included)", len(alerts.Expiring))
	}
	if alerts.Expiring[0].Name != "Berta" || alerts.Expiring[1].Name != "Carlos" {
		t.Errorf("expiring bucket = %+v", alerts.Expiring)
	}
	if alerts.Expired[0].LicenseNumber != "LIC-001" {
		t.Errorf("license number not carried: %+v", alerts.Expired[0])
	}
}

func TestPartitionLicensesEmpty(t *testing.T) {
	alerts := partitionLicenses(nil, time.Now())
	if alerts.Expired == nil || alerts.Expiring == nil {
		t.Fatal("buckets must serialize as empty arrays, not null")
	}
	if len(alerts.Expired) != 0 || len(alerts.Expiring) != 0 {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
}
