package guard

import (
	"context"

	"github.com/dxtdz/sicbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dxtdz/sicbot/internal/repositories/guard Repository

// Repository defines the interface for link-guard configuration persistence
type Repository interface {
	// Load retrieves the guard configuration; a missing or unreadable
	// backing store yields the default configuration, never an error
	Load(ctx context.Context, input *LoadInput) (*models.GuardConfig, error)

	// Save overwrites the persisted guard configuration
	Save(ctx context.Context, input *SaveInput) error
}
