package ledger

import "github.com/dxtdz/sicbot/internal/models"

// LoadInput contains parameters for loading the ledger document
type LoadInput struct{}

// SaveInput contains parameters for saving the ledger document
type SaveInput struct {
	Ledger *models.Ledger
}
