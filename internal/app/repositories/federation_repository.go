package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
	"github.com/dojanghq/dojang/internal/pkg/logger"
)

var federationColumns = []string{
	"id", "name", "acronym", "type", "country", "website",
	"contact_email", "contact_phone", "martial_arts", "founding_year",
	"active", "notes", "created_at", "updated_at",
}

// FederationRepository handles database operations for sporting federations
type FederationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFederationRepository creates a new FederationRepository
func NewFederationRepository(db *pgxpool.Pool) *FederationRepository {
	return &FederationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanFederation(row pgx.Row) (*models.Federation, error) {
	f := &models.Federation{}
	var arts []string
	err := row.Scan(
		&f.ID, &f.Name, &f.Acronym, &f.Type, &f.Country, &f.Website,
		&f.ContactEmail, &f.ContactPhone, &arts, &f.FoundingYear,
		&f.Active, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.MartialArts = make([]models.MartialArt, 0, len(arts))
	for _, a := range arts {
		f.MartialArts = append(f.MartialArts, models.MartialArt(a))
	}
	return f, nil
}

func martialArtsToStrings(arts []models.MartialArt) []string {
	out := make([]string, 0, len(arts))
	for _, a := range arts {
		out = append(out, string(a))
	}
	return out
}

// Create inserts a new federation and fills in its ID
func (r *FederationRepository) Create(ctx context.Context, federation *models.Federation) error {
	sql, args, err := r.sb.Insert("federations").
		Columns("name", "acronym", "type", "country", "website",
			"contact_email", "contact_phone", "martial_arts", "founding_year", "active", "notes").
		Values(federation.Name, federation.Acronym, federation.Type, federation.Country,
			federation.Website, federation.ContactEmail, federation.ContactPhone,
			martialArtsToStrings(federation.MartialArts), federation.FoundingYear,
			federation.Active, federation.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create federation query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&federation.ID, &federation.CreatedAt, &federation.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.NewConflictError("federation with this name already exists")
		}
		logger.Error().Err(err).Msg("Error executing create federation query")
		return fmt.Errorf("error creating federation: %w", err)
	}

	return nil
}

// GetByID retrieves a federation by ID
func (r *FederationRepository) GetByID(ctx context.Context, id int64) (*models.Federation, error) {
	sql, args, err := r.sb.Select(federationColumns...).
		From("federations").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get federation query: %w", err)
	}

	federation, err := scanFederation(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFederationNotFound
		}
		logger.Error().Err(err).Int64("federationID", id).Msg("Error scanning federation row")
		return nil, fmt.Errorf("error getting federation: %w", err)
	}

	return federation, nil
}

// GetByName retrieves a federation by its unique name
func (r *FederationRepository) GetByName(ctx context.Context, name string) (*models.Federation, error) {
	sql, args, err := r.sb.Select(federationColumns...).
		From("federations").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get federation by name query: %w", err)
	}

	federation, err := scanFederation(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFederationNotFound
		}
		return nil, fmt.Errorf("error getting federation by name: %w", err)
	}

	return federation, nil
}

// GetAll lists active federations matching the filter, alphabetically
func (r *FederationRepository) GetAll(ctx context.Context, filter dto.FederationFilter) ([]*models.Federation, error) {
	query := r.sb.Select(federationColumns...).
		From("federations").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC")

	if filter.MartialArt != "" {
		// A federation matches when it covers the discipline directly or
		// through "general" coverage
		query = query.Where(
			squirrel.Expr("(martial_arts @> ARRAY[?::text] OR martial_arts @> ARRAY['general'::text])", filter.MartialArt),
		)
	}
	if filter.Country != "" {
		query = query.Where(squirrel.Eq{"country": filter.Country})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list federations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list federations query")
		return nil, fmt.Errorf("error querying federations: %w", err)
	}
	defer rows.Close()

	federations := []*models.Federation{}
	for rows.Next() {
		federation, err := scanFederation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning federation row: %w", err)
		}
		federations = append(federations, federation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating federation rows: %w", err)
	}

	return federations, nil
}

// Update updates an existing federation
func (r *FederationRepository) Update(ctx context.Context, federation *models.Federation) error {
	sql, args, err := r.sb.Update("federations").
		SetMap(map[string]interface{}{
			"name":          federation.Name,
			"acronym":       federation.Acronym,
			"type":          federation.Type,
			"country":       federation.Country,
			"website":       federation.Website,
			"contact_email": federation.ContactEmail,
			"contact_phone": federation.ContactPhone,
			"martial_arts":  martialArtsToStrings(federation.MartialArts),
			"founding_year": federation.FoundingYear,
			"active":        federation.Active,
			"notes":         federation.Notes,
			"updated_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": federation.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update federation query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.NewConflictError("federation with this name already exists")
		}
		logger.Error().Err(err).Int64("federationID", federation.ID).Msg("Error executing update federation query")
		return fmt.Errorf("error updating federation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFederationNotFound
	}

	return nil
}

// Delete removes a federation. Fails while any student still references it.
func (r *FederationRepository) Delete(ctx context.Context, id int64) error {
	var hasStudents bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE federation_id = $1)`, id).Scan(&hasStudents)
	if err != nil {
		return fmt.Errorf("error checking federated students: %w", err)
	}

	if hasStudents {
		return apperrors.ErrFederationHasRelations
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM federations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting federation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFederationNotFound
	}

	return nil
}

// NameExists checks if a federation name is already taken
func (r *FederationRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM federations WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking federation existence: %w", err)
	}
	return exists, nil
}
