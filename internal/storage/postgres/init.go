package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"guardiant/internal/config"
	"guardiant/pkg/e"
)

// Postgres is the durable incident store variant. It conforms to the same
// four-operation contract as the in-memory store; only the backing structure
// differs.
type Postgres struct {
	Pool      *pgxpool.Pool
	Incidents *IncidentRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping postgres", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}

	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.ensureSchema", err)
	}
	logger.Info("connected to postgres")

	return &Postgres{
		Pool:      pool,
		Incidents: NewIncidentRepo(pool, logger),
	}, nil
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS incidents (
			id             text PRIMARY KEY,
			user_id        text NOT NULL,
			ts             timestamptz NOT NULL,
			latitude       double precision NOT NULL,
			longitude      double precision NOT NULL,
			state          text NOT NULL,
			city           text NOT NULL DEFAULT '',
			notes          text NOT NULL DEFAULT '',
			rights_summary text NOT NULL DEFAULT '',
			recording_url  text NOT NULL DEFAULT '',
			duration_sec   integer NOT NULL DEFAULT 0,
			status         text NOT NULL,
			seq            bigint GENERATED ALWAYS AS IDENTITY
		);
		CREATE INDEX IF NOT EXISTS incidents_user_ts_idx ON incidents (user_id, ts DESC);
	`)
	return err
}
