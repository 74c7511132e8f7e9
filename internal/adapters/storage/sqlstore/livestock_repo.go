package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"livestock-tracker/internal/domain/livestock"

	"github.com/pkg/errors"
)

type LivestockRepo struct {
	db *sql.DB
}

func NewLivestockRepo(db *sql.DB) *LivestockRepo {
	return &LivestockRepo{db: db}
}

const livestockColumns = `id, name, type, age, tag_id, status, last_seen, latitude, longitude, created_at`

func (r *LivestockRepo) Append(ctx context.Context, a livestock.Animal) error {
	var lat, lng sql.NullFloat64
	if a.Position != nil {
		lat = sql.NullFloat64{Float64: a.Position.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: a.Position.Longitude, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO livestock (`+livestockColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		a.ID,
		a.Name,
		string(a.Type),
		a.Age,
		a.TagID,
		string(a.Status),
		a.LastSeen,
		lat,
		lng,
		formatTime(a.CreatedAt),
	)
	return errors.Wrap(err, "insert animal")
}

func (r *LivestockRepo) List(ctx context.Context) ([]livestock.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+livestockColumns+` FROM livestock ORDER BY seq ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "list animals")
	}
	defer rows.Close()

	out := make([]livestock.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, errors.Wrap(rows.Err(), "list animals")
}

func (r *LivestockRepo) GetByID(ctx context.Context, id string) (livestock.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return livestock.Animal{}, livestock.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+livestockColumns+` FROM livestock WHERE id = $1`, id)
	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return livestock.Animal{}, livestock.ErrNotFound
		}
		return livestock.Animal{}, err
	}
	return a, nil
}

func (r *LivestockRepo) UpdateStatus(ctx context.Context, id string, status livestock.Status, lastSeen string) (livestock.Animal, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE livestock
		SET status = $1, last_seen = $2
		WHERE id = $3
	`, string(status), lastSeen, id)
	if err != nil {
		return livestock.Animal{}, errors.Wrap(err, "update animal status")
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return livestock.Animal{}, livestock.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s rowScanner) (livestock.Animal, error) {
	var a livestock.Animal
	var typ, status, createdAt string
	var lat, lng sql.NullFloat64

	if err := s.Scan(
		&a.ID,
		&a.Name,
		&typ,
		&a.Age,
		&a.TagID,
		&status,
		&a.LastSeen,
		&lat,
		&lng,
		&createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return livestock.Animal{}, err
		}
		return livestock.Animal{}, errors.Wrap(err, "scan animal")
	}

	a.Type = livestock.Type(typ)
	a.Status = livestock.Status(status)
	if lat.Valid && lng.Valid {
		a.Position = &livestock.Position{Latitude: lat.Float64, Longitude: lng.Float64}
	}

	t, err := parseTime(createdAt)
	if err != nil {
		return livestock.Animal{}, err
	}
	a.CreatedAt = t
	return a, nil
}
