package sqlstore

import (
	"context"
	"database/sql"

	"livestock-tracker/internal/domain/alerts"

	"github.com/pkg/errors"
)

type AlertsRepo struct {
	db *sql.DB
}

func NewAlertsRepo(db *sql.DB) *AlertsRepo {
	return &AlertsRepo{db: db}
}

func (r *AlertsRepo) Append(ctx context.Context, a alerts.Alert) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alerts (id, animal_id, animal_name, type, message, time_label, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		a.ID,
		a.AnimalID,
		a.AnimalName,
		string(a.Type),
		a.Message,
		a.Timestamp,
		a.Read,
		formatTime(a.CreatedAt),
	)
	return errors.Wrap(err, "insert alert")
}

func (r *AlertsRepo) List(ctx context.Context) ([]alerts.Alert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, animal_name, type, message, time_label, is_read, created_at
		FROM alerts
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "list alerts")
	}
	defer rows.Close()

	out := make([]alerts.Alert, 0)
	for rows.Next() {
		var a alerts.Alert
		var typ, createdAt string
		if err := rows.Scan(&a.ID, &a.AnimalID, &a.AnimalName, &typ, &a.Message, &a.Timestamp, &a.Read, &createdAt); err != nil {
			return nil, errors.Wrap(err, "scan alert")
		}
		a.Type = alerts.Type(typ)
		if a.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, errors.Wrap(rows.Err(), "list alerts")
}

func (r *AlertsRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE alerts SET is_read = $1 WHERE id = $2`, true, id)
	if err != nil {
		return false, errors.Wrap(err, "mark alert read")
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *AlertsRepo) MarkAllRead(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE alerts SET is_read = $1 WHERE is_read = $2`, true, false)
	if err != nil {
		return 0, errors.Wrap(err, "mark all alerts read")
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
