package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"guardiant/internal/domain"
	"guardiant/pkg/e"
)

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

const incidentColumns = `id, user_id, ts, latitude, longitude, state, city, notes, rights_summary, recording_url, duration_sec, status`

func (p *IncidentRepo) Create(ctx context.Context, incident *domain.Incident) error {
	const op = "postgres.Incident.Create"

	const query = `
		INSERT INTO incidents (id, user_id, ts, latitude, longitude, state, city, notes, rights_summary, recording_url, duration_sec, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := p.pool.Exec(ctx, query,
		incident.IncidentID,
		incident.UserID,
		incident.Timestamp,
		incident.Location.Latitude,
		incident.Location.Longitude,
		incident.Location.State,
		incident.Location.City,
		incident.Notes,
		incident.RightsInfoSummary,
		incident.RecordingURL,
		incident.Duration,
		incident.Status,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// Update writes every column except ts: the creation timestamp never moves.
func (p *IncidentRepo) Update(ctx context.Context, incident *domain.Incident) error {
	const op = "postgres.Incident.Update"

	const query = `
		UPDATE incidents
		SET latitude = $2, longitude = $3, state = $4, city = $5,
			notes = $6, rights_summary = $7, recording_url = $8,
			duration_sec = $9, status = $10
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		incident.IncidentID,
		incident.Location.Latitude,
		incident.Location.Longitude,
		incident.Location.State,
		incident.Location.City,
		incident.Notes,
		incident.RightsInfoSummary,
		incident.RecordingURL,
		incident.Duration,
		incident.Status,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", incident.IncidentID))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *IncidentRepo) Get(ctx context.Context, id string) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	inc, err := scanIncident(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return inc, nil
}

func (p *IncidentRepo) List(ctx context.Context, userID string, limit, offset int) ([]*domain.Incident, int64, error) {
	const op = "postgres.Incident.List"

	countQuery := `SELECT COUNT(*) FROM incidents`
	listQuery := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY ts DESC, seq ASC LIMIT $1 OFFSET $2`
	args := []any{limit, offset}
	var countArgs []any

	if userID != "" {
		countQuery = `SELECT COUNT(*) FROM incidents WHERE user_id = $1`
		listQuery = `SELECT ` + incidentColumns + ` FROM incidents WHERE user_id = $1 ORDER BY ts DESC, seq ASC LIMIT $2 OFFSET $3`
		args = []any{userID, limit, offset}
		countArgs = []any{userID}
	}

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	incidents := make([]*domain.Incident, 0)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return incidents, total, nil
}

func (p *IncidentRepo) Counts(ctx context.Context) (total, shared int64, err error) {
	const op = "postgres.Incident.Counts"

	const query = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'shared')
		FROM incidents
	`

	if err := p.pool.QueryRow(ctx, query).Scan(&total, &shared); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, 0, e.WrapError(ctx, op, err)
	}
	return total, shared, nil
}

func scanIncident(row pgx.Row) (*domain.Incident, error) {
	var inc domain.Incident
	err := row.Scan(
		&inc.IncidentID,
		&inc.UserID,
		&inc.Timestamp,
		&inc.Location.Latitude,
		&inc.Location.Longitude,
		&inc.Location.State,
		&inc.Location.City,
		&inc.Notes,
		&inc.RightsInfoSummary,
		&inc.RecordingURL,
		&inc.Duration,
		&inc.Status,
	)
	if err != nil {
		return nil, err
	}
	return &inc, nil
}
