package services

import (
	"fmt"

	"github.com/vsinha/churrasco/pkg/domain/entities"
	"github.com/vsinha/churrasco/pkg/domain/repositories"
	"github.com/vsinha/churrasco/pkg/infrastructure/events"
)

// preferencesStream is the event stream preference changes are recorded on
const preferencesStream = "preferences"

// PreferencesService loads and updates the theme preference
type PreferencesService struct {
	repo  repositories.PreferencesRepository
	store events.EventStore
}

// NewPreferencesService creates a preferences service; store may be nil
func NewPreferencesService(repo repositories.PreferencesRepository, store events.EventStore) *PreferencesService {
	return &PreferencesService{repo: repo, store: store}
}

// Load returns the saved preferences
func (s *PreferencesService) Load() (entities.Preferences, error) {
	prefs, err := s.repo.LoadPreferences()
	if err != nil {
		return entities.DefaultPreferences(), fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}

// SetTheme saves theme, skipping the write when it is already set
func (s *PreferencesService) SetTheme(theme entities.Theme) (entities.Preferences, error) {
	previous, err := s.Load()
	if err != nil {
		return previous, err
	}
	if previous.Theme == theme {
		return previous, nil
	}

	current := previous
	current.Theme = theme
	if err := s.repo.SavePreferences(current); err != nil {
		return previous, fmt.Errorf("failed to save preferences: %w", err)
	}

	if s.store != nil {
		if err := s.store.AppendEvent(preferencesStream,
			events.NewPreferencesChangedEvent(preferencesStream, previous, current)); err != nil {
			return current, fmt.Errorf("failed to record preferences change: %w", err)
		}
	}
	return current, nil
}

// ToggleTheme flips between dark and light
func (s *PreferencesService) ToggleTheme() (entities.Preferences, error) {
	prefs, err := s.Load()
	if err != nil {
		return prefs, err
	}
	return s.SetTheme(prefs.Theme.Toggled())
}
