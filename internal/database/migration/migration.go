package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// The analytics pipeline owns these tables in production; the steps only
// bootstrap an empty database for local development.
var steps = []migrationStep{
	{
		Name: "create_table_warehouse",
		SQL: `CREATE TABLE IF NOT EXISTS public.warehouse (
  warehouse_id        TEXT PRIMARY KEY,
  warehouse_name      TEXT NOT NULL,
  warehouse_capacity  INTEGER,
  warehouse_longitude NUMERIC(10, 7),
  warehouse_latitude  NUMERIC(10, 7),
  warehouse_location  TEXT
);`,
	},
	{
		Name: "create_table_wh_emp_role",
		SQL: `CREATE TABLE IF NOT EXISTS public.wh_emp_role (
  role_id   TEXT PRIMARY KEY,
  role_name TEXT NOT NULL
);`,
	},
	{
		Name: "create_table_wh_emp_data",
		SQL: `CREATE TABLE IF NOT EXISTS public.wh_emp_data (
  emp_id       TEXT PRIMARY KEY,
  warehouse_id TEXT NOT NULL REFERENCES public.warehouse (warehouse_id),
  emp_name     TEXT NOT NULL,
  emp_number   TEXT,
  role_id      TEXT REFERENCES public.wh_emp_role (role_id),
  emp_facecrop TEXT
);`,
	},
	{
		Name: "create_table_cameras",
		SQL: `CREATE TABLE IF NOT EXISTS public.cameras (
  cam_id           TEXT NOT NULL,
  warehouse_id     TEXT NOT NULL REFERENCES public.warehouse (warehouse_id),
  cam_direction    TEXT,
  camera_status    TEXT,
  stream_arn       TEXT,
  hls_url          TEXT,
  camera_longitude NUMERIC(10, 7),
  camera_latitude  NUMERIC(10, 7),
  services         TEXT,
  PRIMARY KEY (warehouse_id, cam_id)
);`,
	},
	{
		Name: "create_table_wh_drivers",
		SQL: `CREATE TABLE IF NOT EXISTS public.wh_drivers (
  driver_id    TEXT PRIMARY KEY,
  driver_name  TEXT,
  driver_phone TEXT,
  driver_crop  TEXT
);`,
	},
	{
		Name: "create_table_wh_vehicles",
		SQL: `CREATE TABLE IF NOT EXISTS public.wh_vehicles (
  id             SERIAL PRIMARY KEY,
  warehouse_id   TEXT NOT NULL REFERENCES public.warehouse (warehouse_id),
  number_plate   TEXT NOT NULL,
  bags_capacity  INTEGER,
  vehicle_access TEXT,
  driver_id      TEXT REFERENCES public.wh_drivers (driver_id),
  created_at     TIMESTAMP DEFAULT now()
);`,
	},
	{
		Name: "create_table_wh_chunks",
		SQL: `CREATE TABLE IF NOT EXISTS public.wh_chunks (
  chunk_id        TEXT PRIMARY KEY,
  warehouse_id    TEXT NOT NULL,
  cam_id          TEXT NOT NULL,
  chunk_blob_url  TEXT,
  transcripts_url TEXT,
  date            DATE,
  time            TIMESTAMP
);`,
	},
	{
		Name: "create_table_wh_emp_logs",
		SQL: `CREATE TABLE IF NOT EXISTS public.wh_emp_logs (
  id            SERIAL PRIMARY KEY,
  warehouse_id  TEXT NOT NULL,
  emp_id        TEXT,
  date          DATE,
  time          TIMESTAMP,
  cam_id        TEXT,
  crop_blob_url TEXT,
  chunk_id      TEXT,
  emp_access    TEXT
);`,
	},
	{
		Name: "create_table_wh_gunny_logs",
		SQL: `CREATE TABLE IF NOT EXISTS public.wh_gunny_logs (
  id           SERIAL PRIMARY KEY,
  warehouse_id TEXT NOT NULL,
  cam_id       TEXT,
  count        INTEGER,
  date         DATE,
  chunk_id     TEXT,
  created_at   TIMESTAMP DEFAULT now(),
  action       TEXT
);`,
	},
	{
		Name: "create_table_wh_vehicle_logs",
		SQL: `CREATE TABLE IF NOT EXISTS public.wh_vehicle_logs (
  id             SERIAL PRIMARY KEY,
  warehouse_id   TEXT NOT NULL,
  cam_id         TEXT,
  date           DATE,
  chunk_id       TEXT,
  number_plate   TEXT,
  vehicle_access TEXT,
  created_at     TIMESTAMP DEFAULT now()
);`,
	},
	{
		Name: "create_index_activity_lookup",
		SQL: `CREATE INDEX IF NOT EXISTS idx_wh_emp_logs_lookup ON public.wh_emp_logs (warehouse_id, cam_id, date);
CREATE INDEX IF NOT EXISTS idx_wh_gunny_logs_lookup ON public.wh_gunny_logs (warehouse_id, cam_id, date);
CREATE INDEX IF NOT EXISTS idx_wh_vehicle_logs_lookup ON public.wh_vehicle_logs (warehouse_id, cam_id, date);
CREATE INDEX IF NOT EXISTS idx_wh_chunks_lookup ON public.wh_chunks (warehouse_id, cam_id, date);`,
	},
}

// EnsureMigrated checks if the 'warehouse' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	query := "SELECT to_regclass('public.warehouse') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
