package dal

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"orgsub-backend/models"
	"orgsub-backend/utils/logger"
)

// datasetDocument is the on-disk layout: one JSON document holding both
// collections. The revision token is tracked by the store, not persisted,
// so the document stays byte-compatible with the bulk export format.
type datasetDocument struct {
	Organizations []*models.Organization        `json:"organizations"`
	Requests      []*models.SubscriptionRequest `json:"requests"`
}

// FileStore persists the dataset as a single JSON document on local disk.
// Writes go to a temp file in the same directory followed by a rename, so
// a reader never observes a half-written document.
type FileStore struct {
	path     string
	logger   logger.Logger
	mu       sync.Mutex
	revision int64
}

// NewFileStore creates a file-backed dataset store
func NewFileStore(cfg *models.Config, log logger.Logger) *FileStore {
	return &FileStore{
		path:   cfg.DataFile,
		logger: log,
	}
}

// Load reads the current dataset. A missing file is the normal first-run
// case and yields an empty dataset, not an error.
func (s *FileStore) Load(ctx context.Context) (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debugf("Data file %s not found, starting with empty dataset", s.path)
			ds := models.NewDataset()
			ds.Revision = s.revision
			return ds, nil
		}
		s.logger.Errorf("Failed to read data file %s: %v", s.path, err)
		return nil, models.NewStorageError("failed to read data file", err)
	}

	var doc datasetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Errorf("Failed to parse data file %s: %v", s.path, err)
		return nil, models.NewStorageError("failed to parse data file", err)
	}

	ds := &models.Dataset{
		Organizations: doc.Organizations,
		Requests:      doc.Requests,
		Revision:      s.revision,
	}
	if ds.Organizations == nil {
		ds.Organizations = []*models.Organization{}
	}
	if ds.Requests == nil {
		ds.Requests = []*models.SubscriptionRequest{}
	}
	return ds, nil
}

// Save commits the dataset. The write is all-or-nothing: a failure at any
// point leaves the previous document in place.
func (s *FileStore) Save(ctx context.Context, dataset *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dataset.Revision != s.revision {
		return models.NewConflictError("dataset was modified by a concurrent write, reload and retry")
	}

	doc := datasetDocument{
		Organizations: dataset.Organizations,
		Requests:      dataset.Requests,
	}
	if doc.Organizations == nil {
		doc.Organizations = []*models.Organization{}
	}
	if doc.Requests == nil {
		doc.Requests = []*models.SubscriptionRequest{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return models.NewStorageError("failed to marshal dataset", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.NewStorageError("failed to create data directory", err)
	}

	tmp, err := os.CreateTemp(dir, "dataset-*.json.tmp")
	if err != nil {
		return models.NewStorageError("failed to create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return models.NewStorageError("failed to write dataset", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return models.NewStorageError("failed to close temp file", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return models.NewStorageError("failed to commit dataset", err)
	}

	s.revision++
	dataset.Revision = s.revision
	s.logger.Debugf("Dataset saved to %s (revision %d)", s.path, s.revision)
	return nil
}
