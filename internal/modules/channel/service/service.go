package service

import (
	"log/slog"
	"slices"

	"github.com/kentcanonigo/slack-search-generator/internal/modules/channel/domain"
	"github.com/kentcanonigo/slack-search-generator/internal/modules/channel/repository"
	"github.com/kentcanonigo/slack-search-generator/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service handles channel list business logic. Every call reloads the
// list from the repository so edits made outside the process are seen.
type Service struct {
	repo repository.Repository
}

// New creates a new channel service
func New(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// Load returns the saved channels in insertion order
func (s *Service) Load() ([]domain.Channel, error) {
	return s.repo.Load()
}

// Names returns the saved channel names, alphabetised when sorted is set
func (s *Service) Names(sorted bool) ([]string, error) {
	channels, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	names := domain.Names(channels)
	if sorted {
		slices.Sort(names)
	}
	return names, nil
}

// Add appends a channel to the end of the list
func (s *Service) Add(name string) error {
	name = domain.NormalizeName(name)
	if name == "" {
		return oops.In("channel").Wrap(errors.ErrInvalidName)
	}

	channels, err := s.repo.Load()
	if err != nil {
		return err
	}

	if indexOf(channels, name) >= 0 {
		return oops.In("channel").With("name", name).Wrap(errors.ErrDuplicateChannel)
	}

	channels = append(channels, domain.Channel{Name: name})
	if err := s.repo.Save(channels); err != nil {
		return oops.With("name", name, "context", "failed to save channels").Wrap(err)
	}

	slog.Info("Channel added", "name", name)
	return nil
}

// Rename replaces a channel name in place
func (s *Service) Rename(oldName, newName string) error {
	oldName = domain.NormalizeName(oldName)
	newName = domain.NormalizeName(newName)
	if newName == "" {
		return oops.In("channel").With("old_name", oldName).Wrap(errors.ErrInvalidName)
	}

	channels, err := s.repo.Load()
	if err != nil {
		return err
	}

	idx := indexOf(channels, oldName)
	if idx < 0 {
		return oops.In("channel").With("name", oldName).Wrap(errors.ErrChannelNotFound)
	}
	if other := indexOf(channels, newName); other >= 0 && other != idx {
		return oops.In("channel").With("name", newName).Wrap(errors.ErrDuplicateChannel)
	}

	channels[idx].Name = newName
	if err := s.repo.Save(channels); err != nil {
		return oops.With("old_name", oldName, "new_name", newName, "context", "failed to save channels").Wrap(err)
	}

	slog.Info("Channel renamed", "old_name", oldName, "new_name", newName)
	return nil
}

// Delete removes a channel from the list
func (s *Service) Delete(name string) error {
	name = domain.NormalizeName(name)

	channels, err := s.repo.Load()
	if err != nil {
		return err
	}

	idx := indexOf(channels, name)
	if idx < 0 {
		return oops.In("channel").With("name", name).Wrap(errors.ErrChannelNotFound)
	}

	channels = slices.Delete(channels, idx, idx+1)
	if err := s.repo.Save(channels); err != nil {
		return oops.With("name", name, "context", "failed to save channels").Wrap(err)
	}

	slog.Info("Channel deleted", "name", name)
	return nil
}

// Names are compared exactly; "General" and "general" are distinct channels.
func indexOf(channels []domain.Channel, name string) int {
	_, idx, found := lo.FindIndexOf(channels, func(ch domain.Channel) bool {
		return ch.Name == name
	})
	if !found {
		return -1
	}
	return idx
}
