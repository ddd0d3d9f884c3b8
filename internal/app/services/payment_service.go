package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/repositories"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
	"github.com/dojanghq/dojang/internal/pkg/helpers"
)

const (
	// upcomingWindow is how far ahead an unpaid payment raises an alert
	upcomingWindow = 7 * 24 * time.Hour
	// Alert buckets are capped so the dashboard call stays bounded
	maxOverdueAlerts  = 20
	maxUpcomingAlerts = 10
)

// PaymentService handles monthly fees, alerts and reports
type PaymentService struct {
	paymentRepo *repositories.PaymentRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo *repositories.PaymentRepository, studentRepo *repositories.StudentRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create issues a monthly fee for a student. One fee per student and month;
// it starts unpaid with no payment date.
func (s *PaymentService) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	if !helpers.ValidPeriod(req.Month) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPeriod, "month must be YYYY-MM")
	}
	if req.Amount < 0 {
		return nil, apperrors.NewValidationError("amount must not be negative")
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("dueDate must be YYYY-MM-DD")
	}

	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	year := req.Year
	if year == 0 {
		year = helpers.PeriodYear(req.Month)
	}

	payment := &models.Payment{
		StudentID: student.ID,
		Month:     req.Month,
		Year:      year,
		Amount:    req.Amount,
		DueDate:   dueDate,
		Notes:     req.Notes,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	payment.Student = student
	s.logger.Info().Int64("paymentId", payment.ID).Int64("studentId", student.ID).
		Str("month", payment.Month).Msg("Payment created")

	return payment, nil
}

// MarkAsPaid settles a pending fee. The transition is one-way: settling an
// already-paid fee is a domain error and the original payment date stands.
func (s *PaymentService) MarkAsPaid(ctx context.Context, paymentID int64, req *dto.MarkPaidRequest) (*models.Payment, error) {
	method := models.PaymentCash
	if req.PaymentMethod != "" {
		method = models.PaymentMethod(req.PaymentMethod)
		if method != models.PaymentCash && method != models.PaymentCard {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidPaymentMethod, "paymentMethod must be cash or card")
		}
	}

	if err := s.paymentRepo.MarkPaid(ctx, paymentID, method, req.Notes, time.Now()); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("paymentId", paymentID).Str("method", string(method)).Msg("Payment settled")
	return s.paymentRepo.GetByID(ctx, paymentID)
}

// Delete removes a fee record entirely
func (s *PaymentService) Delete(ctx context.Context, paymentID int64) error {
	return s.paymentRepo.Delete(ctx, paymentID)
}

// newPaymentAlert projects an unpaid payment into its alert form
func newPaymentAlert(p *models.Payment) dto.PaymentAlert {
	alert := dto.PaymentAlert{
		ID:      p.ID,
		Month:   p.Month,
		Amount:  p.Amount,
		DueDate: p.DueDate,
	}
	if p.Student != nil {
		alert.Student = p.Student.FullName
	}
	return alert
}

// buildPaymentAlerts partitions unpaid payments around now: already overdue
// on one side, due within the upcoming window on the other. Both buckets are
// capped but the totals cover everything in the bucket.
func buildPaymentAlerts(payments []*models.Payment, now time.Time) *dto.PaymentAlertsResponse {
	resp := &dto.PaymentAlertsResponse{
		Overdue:  dto.AlertBucket{Payments: []dto.PaymentAlert{}},
		Upcoming: dto.AlertBucket{Payments: []dto.PaymentAlert{}},
	}

	for _, p := range payments {
		if p.Paid {
			continue
		}

		if p.DueDate.Before(now) {
			resp.Overdue.Count++
			resp.Overdue.TotalAmount += p.Amount
			if len(resp.Overdue.Payments) < maxOverdueAlerts {
				alert := newPaymentAlert(p)
				alert.DaysOverdue = helpers.DaysOverdue(now, p.DueDate)
				resp.Overdue.Payments = append(resp.Overdue.Payments, alert)
			}
			continue
		}

		if !p.DueDate.After(now.Add(upcomingWindow)) {
			resp.Upcoming.Count++
			resp.Upcoming.TotalAmount += p.Amount
			if len(resp.Upcoming.Payments) < maxUpcomingAlerts {
				alert := newPaymentAlert(p)
				alert.DaysUntilDue = helpers.DaysUntil(now, p.DueDate)
				resp.Upcoming.Payments = append(resp.Upcoming.Payments, alert)
			}
		}
	}

	resp.Summary = dto.PaymentAlertSummary{
		TotalAlerts: resp.Overdue.Count + resp.Upcoming.Count,
		TotalAmount: resp.Overdue.TotalAmount + resp.Upcoming.TotalAmount,
		LastUpdated: now,
	}

	return resp
}

// GetAlerts returns the overdue and soon-due fee buckets
func (s *PaymentService) GetAlerts(ctx context.Context) (*dto.PaymentAlertsResponse, error) {
	now := time.Now()
	payments, err := s.paymentRepo.GetUnpaidDueBefore(ctx, now.Add(upcomingWindow))
	if err != nil {
		return nil, err
	}

	return buildPaymentAlerts(payments, now), nil
}

// buildMonthlyReport aggregates one period's payments. The payment rate
// divides settled fees by the active roster, not by issued fees, so months
// where some students were never invoiced still read honestly.
func buildMonthlyReport(period string, payments []*models.Payment, totalActiveStudents int) *dto.MonthlyReportResponse {
	report := &dto.MonthlyReportResponse{
		Period:          period,
		ByMartialArt:    map[string]*dto.MartialArtBreakdown{},
		PaidPayments:    []*models.Payment{},
		PendingPayments: []*models.Payment{},
	}

	stats := &report.Statistics
	stats.TotalStudents = totalActiveStudents

	for _, p := range payments {
		stats.TotalPayments++

		art := ""
		if p.Student != nil {
			art = string(p.Student.MartialArt)
		}
		breakdown := report.ByMartialArt[art]
		if breakdown == nil {
			breakdown = &dto.MartialArtBreakdown{}
			report.ByMartialArt[art] = breakdown
		}
		breakdown.Total++

		stats.ExpectedTotal += p.Amount
		if p.Paid {
			stats.Paid++
			stats.TotalCollected += p.Amount
			breakdown.Paid++
			breakdown.AmountPaid += p.Amount
			report.PaidPayments = append(report.PaidPayments, p)
		} else {
			stats.Pending++
			stats.TotalPending += p.Amount
			breakdown.Pending++
			breakdown.AmountPending += p.Amount
			report.PendingPayments = append(report.PendingPayments, p)
		}
	}

	rate := 0.0
	if totalActiveStudents > 0 {
		rate = float64(stats.Paid) / float64(totalActiveStudents) * 100
	}
	stats.PaymentRate = fmt.Sprintf("%.2f%%", rate)

	return report
}

// GetMonthlyReport aggregates the fees of one YYYY-MM period
func (s *PaymentService) GetMonthlyReport(ctx context.Context, period string) (*dto.MonthlyReportResponse, error) {
	if !helpers.ValidPeriod(period) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPeriod, "period must be YYYY-MM")
	}

	payments, err := s.paymentRepo.GetByMonth(ctx, period)
	if err != nil {
		return nil, err
	}

	totalActiveStudents, err := s.studentRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return buildMonthlyReport(period, payments, totalActiveStudents), nil
}

// buildPaymentTotals sums a payment list by state
func buildPaymentTotals(payments []*models.Payment) dto.PaymentTotals {
	var totals dto.PaymentTotals
	for _, p := range payments {
		totals.Total += p.Amount
		if p.Paid {
			totals.Paid += p.Amount
		} else {
			totals.Pending += p.Amount
		}
	}
	return totals
}

// GetStudentPayments lists one student's fees with running totals. Students
// may only read their own, admins anyone's.
func (s *PaymentService) GetStudentPayments(ctx context.Context, studentID int64, callerUserID int64, isAdmin bool, filter dto.PaymentFilter) (*dto.StudentPaymentsResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && student.UserID != callerUserID {
		return nil, apperrors.ErrPermissionDenied
	}

	payments, err := s.paymentRepo.GetByStudent(ctx, studentID, filter)
	if err != nil {
		return nil, err
	}

	return &dto.StudentPaymentsResponse{
		Count:    len(payments),
		Totals:   buildPaymentTotals(payments),
		Payments: payments,
	}, nil
}

// buildMyPaymentsSummary summarizes the year's fees for the student view
func buildMyPaymentsSummary(payments []*models.Payment, year int) dto.MyPaymentsSummary {
	summary := dto.MyPaymentsSummary{CurrentYear: year}
	for _, p := range payments {
		summary.TotalPayments++
		if p.Paid {
			summary.Paid++
			summary.AmountPaid += p.Amount
		} else {
			summary.Pending++
			summary.AmountPending += p.Amount
		}
	}
	return summary
}

// GetMyPayments lists the calling student's fees for one year, defaulting to
// the current one.
func (s *PaymentService) GetMyPayments(ctx context.Context, userID int64, year int) (*dto.MyPaymentsResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if year <= 0 {
		year = time.Now().Year()
	}
	payments, err := s.paymentRepo.GetByStudent(ctx, student.ID, dto.PaymentFilter{Year: year})
	if err != nil {
		return nil, err
	}

	return &dto.MyPaymentsResponse{
		Student:  student.FullName,
		Summary:  buildMyPaymentsSummary(payments, year),
		Payments: payments,
	}, nil
}
