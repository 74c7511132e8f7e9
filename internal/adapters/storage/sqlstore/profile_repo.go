package sqlstore

import (
	"context"
	"database/sql"

	"livestock-tracker/internal/domain/profile"

	"github.com/pkg/errors"
)

// ProfileRepo guarda una sola fila (id = 1) por tabla.
type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context) (profile.UserProfile, error) {
	var p profile.UserProfile
	err := r.db.QueryRowContext(ctx, `
		SELECT name, phone, email, farm_name, location
		FROM user_profile
		WHERE id = 1
	`).Scan(&p.Name, &p.Phone, &p.Email, &p.FarmName, &p.Location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.UserProfile{}, profile.ErrNotFound
		}
		return profile.UserProfile{}, errors.Wrap(err, "get profile")
	}
	return p, nil
}

func (r *ProfileRepo) Save(ctx context.Context, p profile.UserProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profile (id, name, phone, email, farm_name, location)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			phone = excluded.phone,
			email = excluded.email,
			farm_name = excluded.farm_name,
			location = excluded.location
	`, p.Name, p.Phone, p.Email, p.FarmName, p.Location)
	return errors.Wrap(err, "save profile")
}

func (r *ProfileRepo) GetPreferences(ctx context.Context) (profile.NotificationPreferences, error) {
	var p profile.NotificationPreferences
	err := r.db.QueryRowContext(ctx, `
		SELECT boundary_alerts, battery_alerts, movement_alerts, daily_summary
		FROM notification_preferences
		WHERE id = 1
	`).Scan(&p.BoundaryAlerts, &p.BatteryAlerts, &p.MovementAlerts, &p.DailySummary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.NotificationPreferences{}, profile.ErrNotFound
		}
		return profile.NotificationPreferences{}, errors.Wrap(err, "get notification preferences")
	}
	return p, nil
}

func (r *ProfileRepo) SavePreferences(ctx context.Context, p profile.NotificationPreferences) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notification_preferences (id, boundary_alerts, battery_alerts, movement_alerts, daily_summary)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			boundary_alerts = excluded.boundary_alerts,
			battery_alerts = excluded.battery_alerts,
			movement_alerts = excluded.movement_alerts,
			daily_summary = excluded.daily_summary
	`, p.BoundaryAlerts, p.BatteryAlerts, p.MovementAlerts, p.DailySummary)
	return errors.Wrap(err, "save notification preferences")
}
