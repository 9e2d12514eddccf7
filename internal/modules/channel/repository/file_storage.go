package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kentcanonigo/slack-search-generator/internal/modules/channel/domain"
	"github.com/kentcanonigo/slack-search-generator/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository on a single JSON file holding an
// array of channel names
type FileStorage struct {
	path string
}

// NewFileStorage creates a new file-based channel repository
func NewFileStorage(path string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, oops.With("path", path, "context", "failed to create storage directory").Wrap(err)
	}

	return &FileStorage{path: path}, nil
}

// Path returns the backing file location
func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) Load() ([]domain.Channel, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Channel{}, nil
		}
		return nil, oops.With("path", s.path, "context", "failed to read channels").Wrap(err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Channel{}, nil
	}

	var entries []*string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, s.corrupt(err.Error())
	}
	// null decodes into a nil slice without error
	if entries == nil {
		return nil, s.corrupt("not a JSON array")
	}
	if lo.Contains(entries, nil) {
		return nil, s.corrupt("null channel name")
	}

	names := lo.Map(entries, func(name *string, _ int) string {
		return *name
	})
	if lo.ContainsBy(names, func(name string) bool { return domain.NormalizeName(name) == "" }) {
		return nil, s.corrupt("empty channel name")
	}
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return nil, oops.With("duplicates", dups).Wrap(s.corrupt("duplicate channel names"))
	}

	return lo.Map(names, func(name string, _ int) domain.Channel {
		return domain.Channel{Name: name}
	}), nil
}

func (s *FileStorage) corrupt(reason string) error {
	return oops.
		With("path", s.path).
		Wrap(fmt.Errorf("%w: %s", errors.ErrStorageRead, reason))
}

// Save replaces the file contents. The list is written to a temp file in
// the same directory and renamed over the original.
func (s *FileStorage) Save(channels []domain.Channel) (err error) {
	data, err := json.MarshalIndent(domain.Names(channels), "", "  ")
	if err != nil {
		return oops.With("path", s.path, "context", "failed to marshal channels").Wrap(err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return oops.With("path", s.path, "context", "failed to create temp file").Wrap(err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return oops.With("path", tmpPath, "context", "failed to write channels").Wrap(err)
	}
	if err = tmp.Sync(); err != nil {
		return oops.With("path", tmpPath, "context", "failed to sync channels").Wrap(err)
	}
	if err = tmp.Close(); err != nil {
		return oops.With("path", tmpPath, "context", "failed to close temp file").Wrap(err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return oops.With("path", tmpPath, "context", "failed to set permissions").Wrap(err)
	}
	if err = os.Rename(tmpPath, s.path); err != nil {
		return oops.With("path", s.path, "context", "failed to replace channels file").Wrap(err)
	}

	return nil
}
