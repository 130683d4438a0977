package dal

import (
	"context"

	"orgsub-backend/models"
)

// DatasetStoreInterface defines the contract for dataset persistence.
// Load returns the last successfully committed snapshot (both collections
// together, never an interleaving), bootstrapping an empty dataset when no
// backing data exists yet. Save commits the whole snapshot atomically and
// fails with a ConflictError when the dataset's revision no longer matches
// the stored one, in which case the caller reloads and retries.
type DatasetStoreInterface interface {
	Load(ctx context.Context) (*models.Dataset, error)
	Save(ctx context.Context, dataset *models.Dataset) error
}
