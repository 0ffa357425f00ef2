package events

import (
	"github.com/vsinha/churrasco/pkg/domain/entities"
)

const (
	ConfigurationChangedEvent = "configuration.changed"
	ResultRecomputedEvent     = "result.recomputed"
	PreferencesChangedEvent   = "preferences.changed"
)

type ConfigurationChanged struct {
	Previous entities.Configuration `json:"previous"`
	Current  entities.Configuration `json:"current"`
	Patch    entities.Patch         `json:"-"`
}

type ResultRecomputed struct {
	Configuration entities.Configuration `json:"configuration"`
	Result        entities.Result        `json:"result"`
}

type PreferencesChanged struct {
	Previous entities.Preferences `json:"previous"`
	Current  entities.Preferences `json:"current"`
}

func NewConfigurationChangedEvent(sessionID string, previous, current entities.Configuration, patch entities.Patch) Event {
	return NewEvent(ConfigurationChangedEvent, sessionID, ConfigurationChanged{
		Previous: previous,
		Current:  current,
		Patch:    patch,
	})
}

func NewResultRecomputedEvent(sessionID string, config entities.Configuration, result entities.Result) Event {
	return NewEvent(ResultRecomputedEvent, sessionID, ResultRecomputed{
		Configuration: config,
		Result:        result,
	})
}

func NewPreferencesChangedEvent(streamID string, previous, current entities.Preferences) Event {
	return NewEvent(PreferencesChangedEvent, streamID, PreferencesChanged{
		Previous: previous,
		Current:  current,
	})
}
