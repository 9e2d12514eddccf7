package service

import (
	"log/slog"
	"time"

	"github.com/kentcanonigo/slack-search-generator/internal/modules/query/domain"
)

// Service renders queries from raw form input
type Service struct {
	now func() time.Time
}

// New creates a new query service
func New() *Service {
	return &Service{now: time.Now}
}

// SetClock overrides the clock used to resolve today and yesterday
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Render parses the form input and builds the query string
func (s *Service) Render(raw domain.RawSelection) (string, error) {
	sel, err := domain.ParseSelection(raw, s.now())
	if err != nil {
		return "", err
	}

	query := Build(sel)
	slog.Debug("Query rendered", "query", query)
	return query, nil
}
