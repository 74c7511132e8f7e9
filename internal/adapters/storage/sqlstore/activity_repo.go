package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"livestock-tracker/internal/domain/activity"

	"github.com/pkg/errors"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) Create(ctx context.Context, e activity.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_events (id, type, subject_id, summary, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`, e.ID, string(e.Type), e.SubjectID, e.Summary, formatTime(e.OccurredAt))
	return errors.Wrap(err, "insert activity event")
}

func (r *ActivityRepo) List(ctx context.Context, filter activity.ListFilter) ([]activity.Event, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, type, subject_id, summary, occurred_at
		FROM activity_events
		WHERE 1 = 1
	`)

	args := []any{}
	argN := 1

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	// q: LOWER en ambos lados porque LIKE distingue mayúsculas en Postgres.
	// q es texto literal: % y _ se escapan.
	if q := strings.TrimSpace(filter.Query); q != "" {
		sb.WriteString(fmt.Sprintf(` AND LOWER(summary) LIKE $%d ESCAPE '\'`, argN))
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(q))+"%")
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = activity.DefaultLimit
	}
	if limit > activity.MaxLimit {
		limit = activity.MaxLimit
	}

	sb.WriteString(" ORDER BY seq DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, errors.Wrap(err, "list activity events")
	}
	defer rows.Close()

	out := make([]activity.Event, 0)
	for rows.Next() {
		var e activity.Event
		var typ, occurredAt string
		if err := rows.Scan(&e.ID, &typ, &e.SubjectID, &e.Summary, &occurredAt); err != nil {
			return nil, errors.Wrap(err, "scan activity event")
		}
		e.Type = activity.EventType(typ)
		if e.OccurredAt, err = parseTime(occurredAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, errors.Wrap(rows.Err(), "list activity events")
}
