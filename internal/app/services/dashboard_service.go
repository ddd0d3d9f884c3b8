package services

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/repositories"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
	"github.com/dojanghq/dojang/internal/pkg/helpers"
)

// maxActiveAlerts caps each bucket of the active-alerts view
const maxActiveAlerts = 5

// DashboardService aggregates the landing-page views for both roles
type DashboardService struct {
	studentRepo *repositories.StudentRepository
	paymentRepo *repositories.PaymentRepository
	eventRepo   *repositories.EventRepository
	logger      zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	studentRepo *repositories.StudentRepository,
	paymentRepo *repositories.PaymentRepository,
	eventRepo *repositories.EventRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		studentRepo: studentRepo,
		paymentRepo: paymentRepo,
		eventRepo:   eventRepo,
		logger:      logger,
	}
}

// monthWindow returns the first instant of now's calendar month and now
// itself. Dashboard money figures cover this window, not a rolling 30 days.
func monthWindow(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first, now
}

// AdminStats returns the headline numbers for the admin landing page
func (s *DashboardService) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	now := time.Now()
	firstOfMonth, _ := monthWindow(now)

	activeStudents, err := s.studentRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	collected, err := s.paymentRepo.SumPaidBetween(ctx, firstOfMonth, now)
	if err != nil {
		return nil, err
	}

	monthEvents, err := s.eventRepo.CountBetween(ctx, firstOfMonth, now)
	if err != nil {
		return nil, err
	}

	overdue, err := s.paymentRepo.CountOverdue(ctx, now)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		Month:           helpers.CurrentPeriod(now),
		ActiveStudents:  activeStudents,
		MonthCollected:  collected,
		MonthEvents:     monthEvents,
		OverduePayments: overdue,
	}, nil
}

// buildDistribution turns per-art counts into shares of the roster
func buildDistribution(entries []dto.DistributionEntry, total int) *dto.MartialArtsDistributionResponse {
	resp := &dto.MartialArtsDistributionResponse{
		TotalStudents: total,
		Distribution:  []dto.ArtDistributionEntry{},
	}

	for _, e := range entries {
		percentage := 0.0
		if total > 0 {
			percentage = math.Round(float64(e.Count)/float64(total)*10000) / 100
		}
		resp.Distribution = append(resp.Distribution, dto.ArtDistributionEntry{
			MartialArt: e.Key,
			Count:      e.Count,
			Percentage: percentage,
		})
	}

	return resp
}

// MartialArtsDistribution breaks the active roster down by discipline. Both
// the buckets and the total come from one pass over the same snapshot.
func (s *DashboardService) MartialArtsDistribution(ctx context.Context) (*dto.MartialArtsDistributionResponse, error) {
	entries, err := s.studentRepo.CountGroupedBy(ctx, "martial_art")
	if err != nil {
		return nil, err
	}

	total := 0
	for _, e := range entries {
		total += e.Count
	}

	return buildDistribution(entries, total), nil
}

// PaymentsStatus summarizes the current month's fees plus everything overdue
func (s *DashboardService) PaymentsStatus(ctx context.Context) (*dto.PaymentsStatusResponse, error) {
	now := time.Now()
	period := helpers.CurrentPeriod(now)

	payments, err := s.paymentRepo.GetByMonth(ctx, period)
	if err != nil {
		return nil, err
	}

	resp := &dto.PaymentsStatusResponse{Month: period}
	for _, p := range payments {
		if p.Paid {
			resp.Paid.Count++
			resp.Paid.Total += p.Amount
		} else {
			resp.Pending.Count++
			resp.Pending.Total += p.Amount
		}
	}

	overdue, err := s.paymentRepo.GetUnpaidDueBefore(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, p := range overdue {
		resp.Overdue.Count++
		resp.Overdue.Total += p.Amount
	}

	return resp, nil
}

// ActiveAlerts lists the most pressing overdue fees and the week's events
func (s *DashboardService) ActiveAlerts(ctx context.Context) (*dto.ActiveAlertsResponse, error) {
	now := time.Now()

	overdue, err := s.paymentRepo.GetUnpaidDueBefore(ctx, now)
	if err != nil {
		return nil, err
	}

	alerts := []dto.PaymentAlert{}
	for _, p := range overdue {
		if len(alerts) >= maxActiveAlerts {
			break
		}
		alert := newPaymentAlert(p)
		alert.DaysOverdue = helpers.DaysOverdue(now, p.DueDate)
		alerts = append(alerts, alert)
	}

	events, err := s.eventRepo.GetBetween(ctx, now, now.Add(7*24*time.Hour), maxActiveAlerts, false)
	if err != nil {
		return nil, err
	}

	return &dto.ActiveAlertsResponse{
		OverduePayments: alerts,
		UpcomingEvents:  events,
		GeneratedAt:     now,
	}, nil
}

// RecentStudents lists the latest registrations
func (s *DashboardService) RecentStudents(ctx context.Context, limit int) (*dto.RecentStudentsResponse, error) {
	if limit <= 0 {
		limit = 5
	}

	students, err := s.studentRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.StudentSummary, 0, len(students))
	for _, student := range students {
		summaries = append(summaries, dto.NewStudentSummary(student))
	}

	return &dto.RecentStudentsResponse{
		Count:    len(summaries),
		Students: summaries,
	}, nil
}

// StudentDashboard aggregates one student's landing page: profile, grades,
// this year's fees and what's coming up. Admins may view any student, a
// student only their own.
func (s *DashboardService) StudentDashboard(ctx context.Context, studentID int64, callerUserID int64, isAdmin bool) (*dto.StudentDashboardResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && student.UserID != callerUserID {
		return nil, apperrors.ErrPermissionDenied
	}

	now := time.Now()
	year := now.Year()

	payments, err := s.paymentRepo.GetByStudent(ctx, student.ID, dto.PaymentFilter{Year: year})
	if err != nil {
		return nil, err
	}

	pending := []*models.Payment{}
	for _, p := range payments {
		if !p.Paid {
			pending = append(pending, p)
		}
	}

	history, err := s.studentRepo.GetBeltHistory(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.GetUpcoming(ctx, startOfDay(now), 5, student.MartialArt)
	if err != nil {
		return nil, err
	}

	resp := &dto.StudentDashboardResponse{
		Profile:         dto.NewStudentSummary(student),
		NextExamDate:    student.NextExamDate,
		BeltHistory:     history,
		Payments:        buildMyPaymentsSummary(payments, year),
		PendingPayments: pending,
		UpcomingEvents:  events,
	}

	if student.FederationInfo.IsCurrentlyFederated {
		expiry := student.FederationInfo.LicenseExpiry
		status := &dto.StudentLicenseStatus{
			FederationName: student.FederationInfo.FederationName,
			LicenseNumber:  student.FederationInfo.LicenseNumber,
			LicenseType:    string(student.FederationInfo.LicenseType),
			ExpiryDate:     expiry,
		}
		if expiry != nil {
			status.Expired = expiry.Before(now)
			status.ExpiringSoon = !status.Expired && !expiry.After(now.Add(licenseExpiryWindow))
		}
		resp.License = status
	}

	return resp, nil
}
