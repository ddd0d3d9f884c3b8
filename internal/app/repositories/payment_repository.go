package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
	"github.com/dojanghq/dojang/internal/pkg/logger"
)

var paymentColumns = []string{
	"p.id", "p.student_id", "p.month", "p.year", "p.amount", "p.paid",
	"p.payment_date", "p.due_date", "p.payment_method", "p.notes",
	"p.created_at", "p.updated_at",
	"s.full_name", "s.martial_art",
}

// PaymentRepository handles database operations for monthly fees
type PaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	p := &models.Payment{Student: &models.Student{}}
	err := row.Scan(
		&p.ID, &p.StudentID, &p.Month, &p.Year, &p.Amount, &p.Paid,
		&p.PaymentDate, &p.DueDate, &p.PaymentMethod, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Student.FullName, &p.Student.MartialArt,
	)
	if err != nil {
		return nil, err
	}
	p.Student.ID = p.StudentID
	return p, nil
}

func (r *PaymentRepository) selectPayments() squirrel.SelectBuilder {
	return r.sb.Select(paymentColumns...).
		From("payments p").
		Join("students s ON s.id = p.student_id")
}

// Create inserts a monthly fee and fills in its ID. At most one payment can
// exist per student and month.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	sql, args, err := r.sb.Insert("payments").
		Columns("student_id", "month", "year", "amount", "due_date", "notes").
		Values(payment.StudentID, payment.Month, payment.Year, payment.Amount,
			payment.DueDate, payment.Notes).
		Suffix("RETURNING id, paid, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create payment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&payment.ID, &payment.Paid, &payment.CreatedAt, &payment.UpdatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrPaymentExists
		}
		logger.Error().Err(err).Msg("Error executing create payment query")
		return fmt.Errorf("error creating payment: %w", err)
	}

	return nil
}

// GetByID retrieves a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	sql, args, err := r.selectPayments().Where(squirrel.Eq{"p.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get payment query: %w", err)
	}

	payment, err := scanPayment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		logger.Error().Err(err).Int64("paymentID", id).Msg("Error scanning payment row")
		return nil, fmt.Errorf("error getting payment: %w", err)
	}

	return payment, nil
}

// GetByStudent lists a student's payments matching the filter, newest first
func (r *PaymentRepository) GetByStudent(ctx context.Context, studentID int64, filter dto.PaymentFilter) ([]*models.Payment, error) {
	query := r.selectPayments().
		Where(squirrel.Eq{"p.student_id": studentID}).
		OrderBy("p.month DESC")

	if filter.Year != 0 {
		query = query.Where(squirrel.Eq{"p.year": filter.Year})
	}
	if filter.Month != "" {
		query = query.Where(squirrel.Eq{"p.month": filter.Month})
	}
	if filter.Paid != nil {
		query = query.Where(squirrel.Eq{"p.paid": *filter.Paid})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student payments query: %w", err)
	}

	return r.queryPayments(ctx, sql, args)
}

// GetByMonth lists every payment issued for a period, unpaid first
func (r *PaymentRepository) GetByMonth(ctx context.Context, month string) ([]*models.Payment, error) {
	sql, args, err := r.selectPayments().
		Where(squirrel.Eq{"p.month": month}).
		OrderBy("p.paid ASC", "s.full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build month payments query: %w", err)
	}

	return r.queryPayments(ctx, sql, args)
}

// GetUnpaidDueBefore lists unpaid payments whose due date is not after the
// cutoff, most overdue first.
func (r *PaymentRepository) GetUnpaidDueBefore(ctx context.Context, cutoff time.Time) ([]*models.Payment, error) {
	sql, args, err := r.selectPayments().
		Where(squirrel.Eq{"p.paid": false}).
		Where(squirrel.LtOrEq{"p.due_date": cutoff}).
		OrderBy("p.due_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build unpaid payments query: %w", err)
	}

	return r.queryPayments(ctx, sql, args)
}

func (r *PaymentRepository) queryPayments(ctx context.Context, sql string, args []interface{}) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing payments query")
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

// MarkPaid settles a pending payment. Settling twice is a conflict, the first
// payment record stays untouched.
func (r *PaymentRepository) MarkPaid(ctx context.Context, id int64, method models.PaymentMethod, notes string, paidAt time.Time) error {
	query := r.sb.Update("payments").
		SetMap(map[string]interface{}{
			"paid":           true,
			"payment_date":   paidAt,
			"payment_method": method,
			"updated_at":     squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": id, "paid": false})

	if notes != "" {
		query = query.Set("notes", notes)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark paid query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("paymentID", id).Msg("Error executing mark paid query")
		return fmt.Errorf("error marking payment as paid: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the payment does not exist or it was already settled
		var paid bool
		err := r.db.QueryRow(ctx, `SELECT paid FROM payments WHERE id = $1`, id).Scan(&paid)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrPaymentNotFound
		}
		if err != nil {
			return fmt.Errorf("error checking payment state: %w", err)
		}
		return apperrors.ErrPaymentAlreadyPaid
	}

	return nil
}

// Delete removes a payment record
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}

// SumPaidBetween sums the payments settled inside a window of payment dates
func (r *PaymentRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments
		 WHERE paid = TRUE AND payment_date >= $1 AND payment_date <= $2`,
		from, to).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("error summing paid payments: %w", err)
	}
	return sum, nil
}

// CountOverdue counts unpaid payments already past their due date
func (r *PaymentRepository) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM payments WHERE paid = FALSE AND due_date < $1`, now).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting overdue payments: %w", err)
	}
	return count, nil
}
