package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/pkg/apperrors"
)

// BeltRepository handles database operations for the belt ladder
type BeltRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBeltRepository creates a new BeltRepository
func NewBeltRepository(db *pgxpool.Pool) *BeltRepository {
	return &BeltRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll lists the belt ladder in grade order
func (r *BeltRepository) GetAll(ctx context.Context) ([]*models.Belt, error) {
	sql, args, err := r.sb.Select("id", "color", "display_order", "description",
		"minimum_days", "is_black_belt", "dan_level").
		From("belts").
		OrderBy("display_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list belts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying belts: %w", err)
	}
	defer rows.Close()

	belts := []*models.Belt{}
	for rows.Next() {
		belt := &models.Belt{}
		if err := rows.Scan(&belt.ID, &belt.Color, &belt.Order, &belt.Description,
			&belt.MinimumDays, &belt.IsBlackBelt, &belt.DanLevel); err != nil {
			return nil, fmt.Errorf("error scanning belt row: %w", err)
		}
		belts = append(belts, belt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating belt rows: %w", err)
	}

	return belts, nil
}

// GetByColor retrieves one rung of the ladder
func (r *BeltRepository) GetByColor(ctx context.Context, color models.BeltColor) (*models.Belt, error) {
	sql, args, err := r.sb.Select("id", "color", "display_order", "description",
		"minimum_days", "is_black_belt", "dan_level").
		From("belts").
		Where(squirrel.Eq{"color": color}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get belt query: %w", err)
	}

	belt := &models.Belt{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&belt.ID, &belt.Color, &belt.Order,
		&belt.Description, &belt.MinimumDays, &belt.IsBlackBelt, &belt.DanLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidBelt
		}
		return nil, fmt.Errorf("error getting belt: %w", err)
	}

	return belt, nil
}

// Upsert inserts a belt or updates its metadata, keyed by color. Used by the
// startup seed so re-running it never duplicates the ladder.
func (r *BeltRepository) Upsert(ctx context.Context, belt *models.Belt) error {
	sql, args, err := r.sb.Insert("belts").
		Columns("color", "display_order", "description", "minimum_days", "is_black_belt", "dan_level").
		Values(belt.Color, belt.Order, belt.Description, belt.MinimumDays, belt.IsBlackBelt, belt.DanLevel).
		Suffix(`ON CONFLICT (color) DO UPDATE
			SET display_order = EXCLUDED.display_order,
			    description = EXCLUDED.description,
			    minimum_days = EXCLUDED.minimum_days,
			    is_black_belt = EXCLUDED.is_black_belt,
			    dan_level = EXCLUDED.dan_level
			RETURNING id`).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build upsert belt query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&belt.ID)
	if err != nil {
		return fmt.Errorf("error upserting belt: %w", err)
	}
	return nil
}
