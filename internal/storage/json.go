package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cotb/internal/config"
	"cotb/internal/domain"
)

// JSONStorage stores flow results in a JSON file under the configured
// output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output
// JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Save writes the flow-result record to the configured JSON output file.
func (s *JSONStorage) Save(output *domain.FlowResultOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal flow results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write flow results: %w", err)
	}
	return nil
}

// Load reads the last flow-result record from the configured JSON output
// file.
func (s *JSONStorage) Load() (*domain.FlowResultOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flow results file: %w", err)
	}
	var output domain.FlowResultOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse flow results: %w", err)
	}
	return &output, nil
}
