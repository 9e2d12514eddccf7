package repository

import (
	"github.com/kentcanonigo/slack-search-generator/internal/modules/channel/domain"
)

// Repository defines the interface for channel list persistence.
// The whole list is read and written at once.
type Repository interface {
	Load() ([]domain.Channel, error)
	Save(channels []domain.Channel) error
}
