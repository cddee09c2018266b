package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"doi-hand/models"
)

// DOIStore hält das PMC→DOI-Mapping aus dem Dataset-Verzeichnis im Speicher.
// Request-Handler lesen nur; geschrieben wird ausschließlich beim Laden bzw.
// beim optionalen Cron-Reload, das die Map unter dem Lock austauscht.
type DOIStore struct {
	dir    string
	logger *zap.Logger

	mu      sync.RWMutex
	records map[string]string
}

// NewDOIStore erstellt einen neuen, noch ungeladenen Store.
func NewDOIStore(dir string, logger *zap.Logger) *DOIStore {
	return &DOIStore{dir: dir, logger: logger}
}

// Load liest alle JSON-Records aus dem Verzeichnis und ersetzt das Mapping.
// Einzelne defekte Dateien werden geloggt und übersprungen; ein fehlendes
// Verzeichnis ist ein Fehler.
func (s *DOIStore) Load() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("reading dataset directory %s: %w", s.dir, err)
	}

	records := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("Skipping unreadable dataset record", zap.String("file", path), zap.Error(err))
			continue
		}
		var rec models.PMCRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			s.logger.Warn("Skipping malformed dataset record", zap.String("file", path), zap.Error(err))
			continue
		}
		if rec.PMC == "" || rec.DOI == "" {
			s.logger.Warn("Skipping incomplete dataset record", zap.String("file", path))
			continue
		}
		records[NormalizePMCID(rec.PMC)] = rec.DOI
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.logger.Info("DOI dataset loaded", zap.String("dir", s.dir), zap.Int("records", len(records)))
	return nil
}

// Lookup schlägt eine kanonische PMC-ID nach. Ein Miss ist kein Fehler.
func (s *DOIStore) Lookup(pmcID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doi, ok := s.records[pmcID]
	return doi, ok
}

// Len gibt die Anzahl der geladenen Records zurück.
func (s *DOIStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
