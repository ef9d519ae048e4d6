package storage

import (
	"cotb/internal/domain"
)

// Storage persists and loads flow-run results (e.g. for the failures viewer).
type Storage interface {
	Save(output *domain.FlowResultOutput) error
	Load() (*domain.FlowResultOutput, error)
}
