package storage

import (
	"time"

	"gtr/internal/config"
	"gtr/internal/domain"
)

// Storage persists and loads run results (e.g. for the failures viewer)
type Storage interface {
	Save(summary *domain.Summary, duration time.Duration, benchmark bool, typeFilter string) error
	Load() (*domain.RunOutput, error)
}

// JSONStorage stores results in a JSON file under the configured results path
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results JSON path
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
