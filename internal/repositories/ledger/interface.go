package ledger

import (
	"context"

	"github.com/dxtdz/sicbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dxtdz/sicbot/internal/repositories/ledger Repository

// Repository defines the interface for ledger document persistence
type Repository interface {
	// Load retrieves the whole ledger document; a missing or unreadable
	// backing store yields an empty ledger, never an error
	Load(ctx context.Context, input *LoadInput) (*models.Ledger, error)

	// Save overwrites the persisted ledger document
	Save(ctx context.Context, input *SaveInput) error
}
