package repository

import (
	"context"
	"encoding/json"
	"sync"

	"orgsub-backend/models"
	"orgsub-backend/utils/logger"
)

// memStore is an in-memory DatasetStoreInterface for tests. It deep-copies
// datasets through a JSON round-trip so callers cannot mutate committed
// state without going through Save, and it enforces the same revision
// check as the real stores.
type memStore struct {
	mu       sync.Mutex
	data     *models.Dataset
	revision int64
	failSave error
}

func newMemStore() *memStore {
	return &memStore{data: models.NewDataset()}
}

func (m *memStore) Load(ctx context.Context) (*models.Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := copyDataset(m.data)
	cp.Revision = m.revision
	return cp, nil
}

func (m *memStore) Save(ctx context.Context, dataset *models.Dataset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSave != nil {
		return m.failSave
	}
	if dataset.Revision != m.revision {
		return models.NewConflictError("dataset was modified by a concurrent write, reload and retry")
	}

	m.data = copyDataset(dataset)
	m.revision++
	dataset.Revision = m.revision
	return nil
}

// committed returns the store's committed state, deep-copied.
func (m *memStore) committed() *models.Dataset {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyDataset(m.data)
}

func copyDataset(ds *models.Dataset) *models.Dataset {
	raw, err := json.Marshal(ds)
	if err != nil {
		panic(err)
	}
	cp := models.NewDataset()
	if err := json.Unmarshal(raw, cp); err != nil {
		panic(err)
	}
	if cp.Organizations == nil {
		cp.Organizations = []*models.Organization{}
	}
	if cp.Requests == nil {
		cp.Requests = []*models.SubscriptionRequest{}
	}
	return cp
}

func testConfig() *models.Config {
	return &models.Config{AppEnv: "test"}
}

func testLogger() logger.Logger {
	return logger.NewLogger("error", "text")
}
