package guard

import "github.com/dxtdz/sicbot/internal/models"

// LoadInput contains parameters for loading the guard configuration
type LoadInput struct{}

// SaveInput contains parameters for saving the guard configuration
type SaveInput struct {
	Config *models.GuardConfig
}
