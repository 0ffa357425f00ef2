package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/vsinha/churrasco/pkg/domain/entities"
	"github.com/vsinha/churrasco/pkg/domain/repositories"
)

// ThemeKey is the dotenv key holding the colour scheme
const ThemeKey = "CHURRAS_THEME"

// PreferencesRepository persists preferences in a dotenv file. Unknown keys
// already in the file are kept on save.
type PreferencesRepository struct {
	path string
}

// NewPreferencesRepository stores preferences at path
func NewPreferencesRepository(path string) *PreferencesRepository {
	return &PreferencesRepository{path: path}
}

// Verify interface compliance
var _ repositories.PreferencesRepository = (*PreferencesRepository)(nil)

// Path returns the backing file
func (r *PreferencesRepository) Path() string {
	return r.path
}

// LoadPreferences reads the file, falling back to defaults when it does not exist yet
func (r *PreferencesRepository) LoadPreferences() (entities.Preferences, error) {
	prefs := entities.DefaultPreferences()

	values, err := r.read()
	if err != nil {
		return prefs, err
	}

	if raw, ok := values[ThemeKey]; ok && raw != "" {
		theme, err := entities.ParseTheme(raw)
		if err != nil {
			return prefs, fmt.Errorf("invalid %s in %s: %w", ThemeKey, r.path, err)
		}
		prefs.Theme = theme
	}

	return prefs, nil
}

// SavePreferences writes prefs to the file, creating its directory if needed
func (r *PreferencesRepository) SavePreferences(prefs entities.Preferences) error {
	values, err := r.read()
	if err != nil {
		return err
	}
	values[ThemeKey] = string(prefs.Theme)

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create preferences directory: %w", err)
		}
	}

	if err := godotenv.Write(values, r.path); err != nil {
		return fmt.Errorf("failed to write preferences file %s: %w", r.path, err)
	}
	return nil
}

func (r *PreferencesRepository) read() (map[string]string, error) {
	values, err := godotenv.Read(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file %s: %w", r.path, err)
	}
	return values, nil
}
