package repositories

import "github.com/vsinha/churrasco/pkg/domain/entities"

// PreferencesRepository loads and saves user preferences at process boundaries
type PreferencesRepository interface {
	LoadPreferences() (entities.Preferences, error)
	SavePreferences(prefs entities.Preferences) error
}
