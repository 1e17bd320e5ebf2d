package guard

import (
	"context"
	"errors"

	"github.com/dxtdz/sicbot/internal/models"
	"github.com/dxtdz/sicbot/internal/storage/jsonfile"
	"github.com/sirupsen/logrus"
)

// FileConfig holds configuration for the file-backed guard repository
type FileConfig struct {
	// Path to the JSON backing file
	Path string
}

// fileRepository implements the Repository interface on a JSON file
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed guard repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// Load reads the guard configuration from disk, falling back to the
// default configuration when missing or unreadable.
func (r *fileRepository) Load(_ context.Context, _ *LoadInput) (*models.GuardConfig, error) {
	cfg := models.DefaultGuardConfig()

	err := jsonfile.Read(r.path, cfg)
	if err != nil {
		if errors.Is(err, jsonfile.ErrNotExist) {
			logrus.WithField("path", r.path).Info("no guard config yet, using defaults")
		} else {
			logrus.WithField("path", r.path).WithError(err).Error("failed to read guard config, using defaults")
		}
		return models.DefaultGuardConfig(), nil
	}

	if cfg.AllowedDomains == nil {
		cfg.AllowedDomains = []string{}
	}
	if cfg.AllowedUsers == nil {
		cfg.AllowedUsers = []string{}
	}

	return cfg, nil
}

// Save overwrites the guard configuration on disk
func (r *fileRepository) Save(_ context.Context, input *SaveInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	return jsonfile.Write(r.path, input.Config)
}
