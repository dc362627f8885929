package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"insureAdvisor/domain"
)

// Writer persists the last served recommendation result as a read-only
// JSON file for inspection. Purely optional; the core keeps no state.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Save(result *domain.RecommendationResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result artifact: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result artifact: %w", err)
	}

	return nil
}
