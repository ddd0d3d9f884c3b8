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

// studentColumns are the students columns in scan order, prefixed for joins
var studentColumns = []string{
	"s.id", "s.user_id", "s.full_name", "s.phone", "s.address", "s.birth_date",
	"s.emergency_contact", "s.martial_art", "s.category", "s.current_belt",
	"s.next_exam_date", "s.photo_url", "s.registered_at", "s.active",
	"s.federation_id", "s.license_number", "s.license_type", "s.license_expiry",
	"s.is_currently_federated", "s.federation_date",
	"s.created_at", "s.updated_at",
	"COALESCE(f.name, '') AS federation_name",
}

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.FullName, &s.Phone, &s.Address, &s.BirthDate,
		&s.EmergencyContact, &s.MartialArt, &s.Category, &s.CurrentBelt,
		&s.NextExamDate, &s.PhotoURL, &s.RegisteredAt, &s.Active,
		&s.FederationInfo.FederationID, &s.FederationInfo.LicenseNumber,
		&s.FederationInfo.LicenseType, &s.FederationInfo.LicenseExpiry,
		&s.FederationInfo.IsCurrentlyFederated, &s.FederationInfo.FederationDate,
		&s.CreatedAt, &s.UpdatedAt,
		&s.FederationInfo.FederationName,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	return r.sb.Select(studentColumns...).
		From("students s").
		LeftJoin("federations f ON f.id = s.federation_id")
}

// Create inserts a new student profile and fills in its ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "full_name", "phone", "address", "birth_date",
			"emergency_contact", "martial_art", "category", "current_belt", "photo_url").
		Values(student.UserID, student.FullName, student.Phone, student.Address,
			student.BirthDate, student.EmergencyContact, student.MartialArt,
			student.Category, student.CurrentBelt, student.PhotoURL).
		Suffix("RETURNING id, registered_at, active, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.RegisteredAt, &student.Active,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.NewConflictError("student profile already exists for this user")
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"s.id": id})
}

// GetByUserID retrieves the student profile linked to a user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"s.user_id": userID})
}

func (r *StudentRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Student, error) {
	sql, args, err := r.selectStudents().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// Search lists active students matching the filter, newest first
func (r *StudentRepository) Search(ctx context.Context, filter dto.StudentSearchFilter) ([]*models.Student, error) {
	query := r.selectStudents().
		Where(squirrel.Eq{"s.active": true}).
		OrderBy("s.registered_at DESC")

	if filter.MartialArt != "" {
		query = query.Where(squirrel.Eq{"s.martial_art": filter.MartialArt})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"s.category": filter.Category})
	}
	if filter.CurrentBelt != "" {
		query = query.Where(squirrel.Eq{"s.current_belt": filter.CurrentBelt})
	}
	if filter.Federated != nil {
		query = query.Where(squirrel.Eq{"s.is_currently_federated": *filter.Federated})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

// GetFederatedByFederation lists the active students currently holding a
// license from the given federation.
func (r *StudentRepository) GetFederatedByFederation(ctx context.Context, federationID int64) ([]*models.Student, error) {
	sql, args, err := r.selectStudents().
		Where(squirrel.Eq{
			"s.federation_id":          federationID,
			"s.is_currently_federated": true,
			"s.active":                 true,
		}).
		OrderBy("s.full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build federated students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// UpdateFields applies a partial update built by the service layer
func (r *StudentRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = squirrel.Expr("NOW()")

	sql, args, err := r.sb.Update("students").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrLicenseNumberExists
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Deactivate soft-deletes the student and disables the login account in one
// transaction. The profile and its history stay queryable.
func (r *StudentRepository) Deactivate(ctx context.Context, studentID, userID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin deactivate transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx,
		`UPDATE students SET active = FALSE, updated_at = NOW() WHERE id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deactivating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	_, err = tx.Exec(ctx,
		`UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error disabling user account: %w", err)
	}

	return tx.Commit(ctx)
}

// Promote records a belt promotion atomically: the belt held until now goes
// into the history, the new belt becomes current and any scheduled exam date
// is cleared.
func (r *StudentRepository) Promote(ctx context.Context, studentID int64, previousBelt, newBelt models.BeltColor, dateAchieved time.Time, instructor, notes string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin promote transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO belt_history (student_id, belt, date_achieved, instructor, notes)
		 VALUES ($1, $2, $3, $4, $5)`,
		studentID, previousBelt, dateAchieved, instructor, notes)
	if err != nil {
		return fmt.Errorf("error recording belt history: %w", err)
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE students
		 SET current_belt = $1, next_exam_date = NULL, updated_at = NOW()
		 WHERE id = $2`,
		newBelt, studentID)
	if err != nil {
		return fmt.Errorf("error updating current belt: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return tx.Commit(ctx)
}

// GetBeltHistory lists a student's belt history in the order it was written
func (r *StudentRepository) GetBeltHistory(ctx context.Context, studentID int64) ([]models.BeltHistoryEntry, error) {
	sql, args, err := r.sb.Select("id", "student_id", "belt", "date_achieved", "instructor", "notes").
		From("belt_history").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build belt history query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying belt history: %w", err)
	}
	defer rows.Close()

	entries := []models.BeltHistoryEntry{}
	for rows.Next() {
		var e models.BeltHistoryEntry
		if err := rows.Scan(&e.ID, &e.StudentID, &e.Belt, &e.DateAchieved, &e.Instructor, &e.Notes); err != nil {
			return nil, fmt.Errorf("error scanning belt history row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating belt history rows: %w", err)
	}

	return entries, nil
}

// Federate assigns a federation license atomically. A license the student
// already holds is archived to license_history before being overwritten.
func (r *StudentRepository) Federate(ctx context.Context, student *models.Student, federation *models.Federation, licenseNumber string, licenseType models.LicenseType, expiry time.Time, now time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin federate transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if student.FederationInfo.IsCurrentlyFederated && student.FederationInfo.LicenseNumber != "" {
		_, err = tx.Exec(ctx,
			`INSERT INTO license_history (student_id, federation_name, license_number, license_type, issue_date, expiry_date, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			student.ID,
			student.FederationInfo.FederationName,
			student.FederationInfo.LicenseNumber,
			student.FederationInfo.LicenseType,
			student.FederationInfo.FederationDate,
			student.FederationInfo.LicenseExpiry,
			"Replaced by "+federation.Name)
		if err != nil {
			return fmt.Errorf("error archiving previous license: %w", err)
		}
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE students
		 SET federation_id = $1, license_number = $2, license_type = $3,
		     license_expiry = $4, is_currently_federated = TRUE,
		     federation_date = $5, updated_at = NOW()
		 WHERE id = $6`,
		federation.ID, licenseNumber, licenseType, expiry, now, student.ID)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrLicenseNumberExists
		}
		return fmt.Errorf("error assigning license: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return tx.Commit(ctx)
}

// LicenseNumberExists checks whether a license number is held by any student
// other than the one given.
func (r *StudentRepository) LicenseNumberExists(ctx context.Context, licenseNumber string, excludeStudentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE license_number = $1 AND id != $2)`,
		licenseNumber, excludeStudentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking license number: %w", err)
	}
	return exists, nil
}

// GetLicenseHistory lists a student's archived licenses, oldest first
func (r *StudentRepository) GetLicenseHistory(ctx context.Context, studentID int64) ([]models.LicenseHistoryEntry, error) {
	sql, args, err := r.sb.Select("id", "student_id", "federation_name", "license_number",
		"license_type", "issue_date", "expiry_date", "notes").
		From("license_history").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build license history query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying license history: %w", err)
	}
	defer rows.Close()

	entries := []models.LicenseHistoryEntry{}
	for rows.Next() {
		var e models.LicenseHistoryEntry
		if err := rows.Scan(&e.ID, &e.StudentID, &e.FederationName, &e.LicenseNumber,
			&e.LicenseType, &e.IssueDate, &e.ExpiryDate, &e.Notes); err != nil {
			return nil, fmt.Errorf("error scanning license history row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating license history rows: %w", err)
	}

	return entries, nil
}

// AddAchievement records a competition or exam achievement
func (r *StudentRepository) AddAchievement(ctx context.Context, a *models.Achievement) error {
	sql, args, err := r.sb.Insert("achievements").
		Columns("student_id", "title", "description", "achieved_at", "organizer", "location", "notes").
		Values(a.StudentID, a.Title, a.Description, a.AchievedAt, a.Organizer, a.Location, a.Notes).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build add achievement query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("error adding achievement: %w", err)
	}
	return nil
}

// GetAchievements lists a student's achievements, newest first
func (r *StudentRepository) GetAchievements(ctx context.Context, studentID int64) ([]models.Achievement, error) {
	sql, args, err := r.sb.Select("id", "student_id", "title", "description",
		"achieved_at", "organizer", "location", "notes").
		From("achievements").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("achieved_at DESC NULLS LAST", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build achievements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying achievements: %w", err)
	}
	defer rows.Close()

	achievements := []models.Achievement{}
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Title, &a.Description,
			&a.AchievedAt, &a.Organizer, &a.Location, &a.Notes); err != nil {
			return nil, fmt.Errorf("error scanning achievement row: %w", err)
		}
		achievements = append(achievements, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievement rows: %w", err)
	}

	return achievements, nil
}

// CountActive counts active students
func (r *StudentRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active students: %w", err)
	}
	return count, nil
}

// CountFederated counts active students holding a current license
func (r *StudentRepository) CountFederated(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE active = TRUE AND is_currently_federated = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting federated students: %w", err)
	}
	return count, nil
}

// CountGroupedBy counts active students grouped by the given column. Only
// fixed column names are ever passed in.
func (r *StudentRepository) CountGroupedBy(ctx context.Context, column string) ([]dto.DistributionEntry, error) {
	sql, args, err := r.sb.Select(column, "COUNT(*)").
		From("students").
		Where(squirrel.Eq{"active": true}).
		GroupBy(column).
		OrderBy("COUNT(*) DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build distribution query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying distribution: %w", err)
	}
	defer rows.Close()

	entries := []dto.DistributionEntry{}
	for rows.Next() {
		var e dto.DistributionEntry
		if err := rows.Scan(&e.Key, &e.Count); err != nil {
			return nil, fmt.Errorf("error scanning distribution row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distribution rows: %w", err)
	}

	return entries, nil
}

// GetRecent lists the latest active registrations
func (r *StudentRepository) GetRecent(ctx context.Context, limit int) ([]*models.Student, error) {
	sql, args, err := r.selectStudents().
		Where(squirrel.Eq{"s.active": true}).
		OrderBy("s.registered_at DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build recent students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

// CountUpcomingExams counts active students with a scheduled exam within the
// window ending at until.
func (r *StudentRepository) CountUpcomingExams(ctx context.Context, now, until time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students
		 WHERE active = TRUE AND next_exam_date IS NOT NULL
		   AND next_exam_date >= $1 AND next_exam_date <= $2`,
		now, until).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting upcoming exams: %w", err)
	}
	return count, nil
}
