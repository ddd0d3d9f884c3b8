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

var eventColumns = []string{
	"e.id", "e.title", "e.description", "e.date", "e.type", "e.martial_art",
	"e.created_by", "e.location", "e.duration_minutes", "e.visible_to_students",
	"e.participant_limit", "e.cost", "e.created_at", "e.updated_at",
	"u.email AS creator_email",
}

// EventRepository handles database operations for school events
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Type, &e.MartialArt,
		&e.CreatedBy, &e.Location, &e.DurationMinutes, &e.VisibleToStudents,
		&e.ParticipantLimit, &e.Cost, &e.CreatedAt, &e.UpdatedAt,
		&e.CreatorEmail,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) selectEvents() squirrel.SelectBuilder {
	return r.sb.Select(eventColumns...).
		From("events e").
		Join("users u ON u.id = e.created_by")
}

// Create inserts a new event and fills in its ID
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "date", "type", "martial_art", "created_by",
			"location", "duration_minutes", "visible_to_students", "participant_limit", "cost").
		Values(event.Title, event.Description, event.Date, event.Type, event.MartialArt,
			event.CreatedBy, event.Location, event.DurationMinutes,
			event.VisibleToStudents, event.ParticipantLimit, event.Cost).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.selectEvents().Where(squirrel.Eq{"e.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error getting event: %w", err)
	}

	return event, nil
}

// List returns a page of events matching the filter plus the total match
// count, soonest first.
func (r *EventRepository) List(ctx context.Context, filter dto.EventFilter, offset uint64, limit int, studentView bool) ([]*models.Event, int64, error) {
	base := r.selectEvents()
	count := r.sb.Select("COUNT(*)").From("events e")

	apply := func(q squirrel.SelectBuilder) squirrel.SelectBuilder {
		if studentView {
			q = q.Where(squirrel.Eq{"e.visible_to_students": true})
		}
		if filter.Type != "" {
			q = q.Where(squirrel.Eq{"e.type": filter.Type})
		}
		if filter.MartialArt != "" {
			q = q.Where(squirrel.Or{
				squirrel.Eq{"e.martial_art": filter.MartialArt},
				squirrel.Eq{"e.martial_art": models.ArtAll},
			})
		}
		if filter.From != "" {
			q = q.Where(squirrel.GtOrEq{"e.date": filter.From})
		}
		if filter.To != "" {
			q = q.Where(squirrel.LtOrEq{"e.date": filter.To})
		}
		return q
	}

	base = apply(base).OrderBy("e.date ASC").Offset(offset).Limit(uint64(limit))
	count = apply(count)

	countSql, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count events query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	sql, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list events query: %w", err)
	}

	events, err := r.queryEvents(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// GetUpcoming lists the next visible events on or after the given day
func (r *EventRepository) GetUpcoming(ctx context.Context, from time.Time, limit int, martialArt models.MartialArt) ([]*models.Event, error) {
	query := r.selectEvents().
		Where(squirrel.Eq{"e.visible_to_students": true}).
		Where(squirrel.GtOrEq{"e.date": from}).
		OrderBy("e.date ASC").
		Limit(uint64(limit))

	if martialArt != "" {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"e.martial_art": martialArt},
			squirrel.Eq{"e.martial_art": models.ArtAll},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upcoming events query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// GetBetween lists events inside a date window, soonest first. A limit of 0
// means no cap.
func (r *EventRepository) GetBetween(ctx context.Context, from, to time.Time, limit int, visibleOnly bool) ([]*models.Event, error) {
	query := r.selectEvents().
		Where(squirrel.GtOrEq{"e.date": from}).
		Where(squirrel.LtOrEq{"e.date": to}).
		OrderBy("e.date ASC")

	if visibleOnly {
		query = query.Where(squirrel.Eq{"e.visible_to_students": true})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build events window query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// CountBetween counts events inside a date window
func (r *EventRepository) CountBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM events WHERE date >= $1 AND date <= $2`, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, sql string, args []interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing events query")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// UpdateFields applies a partial update built by the service layer
func (r *EventRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = squirrel.Expr("NOW()")

	sql, args, err := r.sb.Update("events").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event permanently
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
