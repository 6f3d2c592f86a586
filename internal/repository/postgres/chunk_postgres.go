package postgres

import (
	"context"
	"database/sql"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
)

// ChunkPostgres is a PostgreSQL implementation of repository.ChunkRepository.
type ChunkPostgres struct {
	db *sql.DB
}

// NewChunkPostgres creates a new ChunkPostgres repository.
func NewChunkPostgres(db *sql.DB) *ChunkPostgres {
	return &ChunkPostgres{db: db}
}

var _ repository.ChunkRepository = (*ChunkPostgres)(nil)

const chunkSelect = `
	SELECT
		chunk_id,
		warehouse_id,
		cam_id,
		chunk_blob_url,
		transcripts_url,
		date,
		time
	FROM public.wh_chunks`

func scanChunk(s interface{ Scan(...any) error }) (model.Chunk, error) {
	var (
		c                   model.Chunk
		blobURL, transcript sql.NullString
		date, ts            sql.NullTime
	)
	if err := s.Scan(&c.ID, &c.WarehouseID, &c.CamID, &blobURL, &transcript, &date, &ts); err != nil {
		return c, err
	}
	c.ChunkBlobURL = strPtr(blobURL)
	c.TranscriptsURL = strPtr(transcript)
	c.Date = datePtr(date)
	c.Time = dateTimePtr(ts)
	return c, nil
}

// ListByDate returns a camera's chunks for one day ordered by time.
func (r *ChunkPostgres) ListByDate(ctx context.Context, f repository.ActivityFilter) ([]model.Chunk, error) {
	q := chunkSelect + `
		WHERE warehouse_id = $1 AND cam_id = $2 AND date = $3
		ORDER BY time`
	rows, err := r.db.QueryContext(ctx, q, f.WarehouseID, f.CamID, f.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Chunk, 0)
	for rows.Next() {
		c, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Find fetches a single chunk of a camera.
func (r *ChunkPostgres) Find(ctx context.Context, warehouseID, camID, chunkID string) (*model.Chunk, error) {
	q := chunkSelect + `
		WHERE warehouse_id = $1 AND cam_id = $2 AND chunk_id = $3`
	c, err := scanChunk(r.db.QueryRowContext(ctx, q, warehouseID, camID, chunkID))
	if err != nil {
		return nil, err
	}
	return &c, nil
}
