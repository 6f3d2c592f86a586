package service

import (
	"context"
	"fmt"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
)

// ChunkListResult lists the video chunks of a camera for a day.
type ChunkListResult struct {
	Status      string        `json:"status"`
	Message     string        `json:"message,omitempty"`
	WarehouseID string        `json:"warehouse_id"`
	CamID       string        `json:"cam_id"`
	Date        string        `json:"date"`
	TotalChunks int           `json:"total_chunks"`
	Chunks      []model.Chunk `json:"chunks"`
}

// ChunkService lists recorded video chunks.
type ChunkService interface {
	List(ctx context.Context, warehouseID, camID, date string) (*ChunkListResult, error)
}

type chunkService struct {
	repo repository.ChunkRepository
}

// NewChunkService constructs a new ChunkService.
func NewChunkService(repo repository.ChunkRepository) ChunkService {
	return &chunkService{repo: repo}
}

func (s *chunkService) List(ctx context.Context, warehouseID, camID, date string) (*ChunkListResult, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	chunks, err := s.repo.ListByDate(ctx, repository.ActivityFilter{WarehouseID: warehouseID, CamID: camID, Date: day})
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}
	res := &ChunkListResult{
		Status:      StatusSuccess,
		WarehouseID: warehouseID,
		CamID:       camID,
		Date:        date,
		TotalChunks: len(chunks),
		Chunks:      orEmpty(chunks),
	}
	if len(chunks) == 0 {
		res.Message = "No chunks found for the given criteria"
	}
	return res, nil
}
