package memory

import (
	"github.com/vsinha/churrasco/pkg/domain/entities"
	"github.com/vsinha/churrasco/pkg/domain/repositories"
)

// PreferencesRepository keeps preferences for the lifetime of the process only
type PreferencesRepository struct {
	prefs entities.Preferences
	saves int
}

// NewPreferencesRepository starts from the default preferences
func NewPreferencesRepository() *PreferencesRepository {
	return &PreferencesRepository{prefs: entities.DefaultPreferences()}
}

// Verify interface compliance
var _ repositories.PreferencesRepository = (*PreferencesRepository)(nil)

// LoadPreferences returns the stored preferences
func (r *PreferencesRepository) LoadPreferences() (entities.Preferences, error) {
	return r.prefs, nil
}

// SavePreferences replaces the stored preferences
func (r *PreferencesRepository) SavePreferences(prefs entities.Preferences) error {
	r.prefs = prefs
	r.saves++
	return nil
}

// Saves returns how many times preferences were saved
func (r *PreferencesRepository) Saves() int {
	return r.saves
}
