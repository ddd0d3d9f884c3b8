package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/dojanghq/dojang/internal/app/models"
)

func unpaidPayment(id int64, amount float64, due time.Time) *models.Payment {
	return &models.Payment{
		ID:      id,
		Amount:  amount,
		DueDate: due,
		Month:   due.Format("2006-01"),
		Student: &models.Student{FullName: fmt.Sprintf("Student %d", id), MartialArt: models.ArtTaekwondo},
	}
}

func TestBuildPaymentAlertsPartition(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	payments := []*models.Payment{
		unpaidPayment(1, 50, time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)),  // 5 days overdue
		unpaidPayment(2, 40, time.Date(2024, time.March, 12, 12, 0, 0, 0, time.UTC)), // due in 2 days
		unpaidPayment(3, 30, time.Date(2024, time.March, 17, 12, 0, 0, 0, time.UTC)), // exactly at the window edge
		unpaidPayment(4, 20, time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)), // beyond the window
	}
	paid := unpaidPayment(5, 99, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	paid.Paid = true
	payments = append(payments, paid)

	resp := buildPaymentAlerts(payments, now)

	if resp.Overdue.Count != 1 || resp.Overdue.TotalAmount != 50 {
		t.Fatalf("overdue bucket = %d/%.0f, want 1/50", resp.Overdue.Count, resp.Overdue.TotalAmount)
	}
	if resp.Overdue.Payments[0].DaysOverdue != 5 {
		t.Errorf("daysOverdue = %d, want 5", resp.Overdue.Payments[0].DaysOverdue)
	}

	if resp.Upcoming.Count != 2 || resp.Upcoming.TotalAmount != 70 {
		t.Fatalf("upcoming bucket = %d/%.0f, want 2/70", resp.Upcoming.Count, resp.Upcoming.TotalAmount)
	}
	if resp.Upcoming.Payments[0].DaysUntilDue != 2 {
		t.Errorf("daysUntilDue = %d, want 2", resp.Upcoming.Payments[0].DaysUntilDue)
	}

	if resp.Summary.TotalAlerts != 3 || resp.Summary.TotalAmount != 120 {
		t.Fatalf("summary = %d/%.0f, want 3/120", resp.Summary.TotalAlerts, resp.Summary.TotalAmount)
	}
}

func TestBuildPaymentAlertsCapsLists(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	payments := []*models.Payment{}
	for i := 0; i < maxOverdueAlerts+5; i++ {
		payments = append(payments, unpaidPayment(int64(i+1), 10, now.Add(-48*time.Hour)))
	}

	resp := buildPaymentAlerts(payments, now)

	// The list is capped but count and total cover everything
	if len(resp.Overdue.Payments) != maxOverdueAlerts {
		t.Fatalf("overdue list = %d entries, want %d", len(resp.Overdue.Payments), maxOverdueAlerts)
	}
	if resp.Overdue.Count != maxOverdueAlerts+5 {
		t.Fatalf("overdue count = %d, want %d", resp.Overdue.Count, maxOverdueAlerts+5)
	}
	if resp.Overdue.TotalAmount != float64((maxOverdueAlerts+5)*10) {
		t.Fatalf("overdue total = %.0f", resp.Overdue.TotalAmount)
	}
}

func TestBuildMonthlyReport(t *testing.T) {
	due := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	p1 := unpaidPayment(1, 50, due)
	p1.Paid = true
	p2 := unpaidPayment(2, 50, due)
	p3 := unpaidPayment(3, 45, due)
	p3.Student.MartialArt = models.ArtHapkido
	p3.Paid = true

	report := buildMonthlyReport("2024-03", []*models.Payment{p1, p2, p3}, 14)

	stats := report.Statistics
	if stats.TotalStudents != 14 || stats.TotalPayments != 3 || stats.Paid != 2 || stats.Pending != 1 {
		t.Fatalf("unexpected statistics: %+v", stats)
	}
	if stats.TotalCollected != 95 || stats.TotalPending != 50 || stats.ExpectedTotal != 145 {
		t.Fatalf("unexpected amounts: %+v", stats)
	}

	// Rate divides paid fees by the active roster, not by issued fees
	if stats.PaymentRate != "14.29%" {
		t.Fatalf("payment rate = %q, want 14.29%%", stats.PaymentRate)
	}

	tkd := report.ByMartialArt["taekwondo"]
	if tkd == nil || tkd.Total != 2 || tkd.Paid != 1 || tkd.Pending != 1 {
		t.Fatalf("unexpected taekwondo breakdown: %+v", tkd)
	}
	hap := report.ByMartialArt["hapkido"]
	if hap == nil || hap.Total != 1 || hap.AmountPaid != 45 {
		t.Fatalf("unexpected hapkido breakdown: %+v", hap)
	}

	if len(report.PaidPayments) != 2 || len(report.PendingPayments) != 1 {
		t.Fatalf("unexpected payment lists: %d paid, %d pending", len(report.PaidPayments), len(report.PendingPayments))
	}
}

func TestBuildMonthlyReportEmptyRoster(t *testing.T) {
	report := buildMonthlyReport("2024-03", nil, 0)
	if report.Statistics.PaymentRate != "0.00%" {
		t.Fatalf("payment rate = %q, want 0.00%%", report.Statistics.PaymentRate)
	}
}

func TestBuildPaymentTotals(t *testing.T) {
	due := time.Now()
	p1 := unpaidPayment(1, 50, due)
	p1.Paid = true
	p2 := unpaidPayment(2, 30, due)

	totals := buildPaymentTotals([]*models.Payment{p1, p2})
	if totals.Paid != 50 || totals.Pending != 30 || totals.Total != 80 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestBuildMyPaymentsSummary(t *testing.T) {
	due := time.Now()
	p1 := unpaidPayment(1, 50, due)
	p1.Paid = true
	p2 := unpaidPayment(2, 50, due)
	p3 := unpaidPayment(3, 50, due)

	summary := buildMyPaymentsSummary([]*models.Payment{p1, p2, p3}, 2024)
	if summary.CurrentYear != 2024 || summary.TotalPayments != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Paid != 1 || summary.Pending != 2 || summary.AmountPaid != 50 || summary.AmountPending != 100 {
		t.Fatalf("unexpected amounts: %+v", summary)
	}
}
