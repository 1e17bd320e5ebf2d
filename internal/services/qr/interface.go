package qr

import (
	"context"
)

// Service defines the interface for QR code generation
type Service interface {
	// Generate encodes the content as a PNG QR code
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}
