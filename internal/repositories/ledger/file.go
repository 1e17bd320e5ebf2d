package ledger

import (
	"context"
	"errors"

	"github.com/dxtdz/sicbot/internal/models"
	"github.com/dxtdz/sicbot/internal/storage/jsonfile"
	"github.com/sirupsen/logrus"
)

// FileConfig holds configuration for the file-backed ledger repository
type FileConfig struct {
	// Path to the JSON backing file
	Path string
}

// fileRepository implements the Repository interface on a JSON file
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed ledger repository
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

// Load reads the ledger document from disk. A missing file is the normal
// first-run condition and a parse failure must not take the bot down, so
// both degrade to an empty ledger with a log line.
func (r *fileRepository) Load(_ context.Context, _ *LoadInput) (*models.Ledger, error) {
	doc := models.NewLedger()

	err := jsonfile.Read(r.path, doc)
	if err != nil {
		if errors.Is(err, jsonfile.ErrNotExist) {
			logrus.WithField("path", r.path).Info("no ledger file yet, starting empty")
		} else {
			logrus.WithField("path", r.path).WithError(err).Error("failed to read ledger file, starting empty")
		}
		return models.NewLedger(), nil
	}

	doc.Normalize()
	return doc, nil
}

// Save overwrites the ledger document on disk
func (r *fileRepository) Save(_ context.Context, input *SaveInput) error {
	if input == nil || input.Ledger == nil {
		return errors.New("input and ledger cannot be nil")
	}

	return jsonfile.Write(r.path, input.Ledger)
}
