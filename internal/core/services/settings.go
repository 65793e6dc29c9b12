package services

import (
	"fmt"

	"github.com/custodia-labs/centred-cli/internal/core/domain"
	"github.com/custodia-labs/centred-cli/internal/core/ports/driven"
	"github.com/custodia-labs/centred-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyFormatWidth = "format.width"
	keyFormatFill  = "format.fill"
)

// SettingsService manages the persisted formatting defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves the current format settings, falling back to defaults for
// anything unset or invalid.
func (s *SettingsService) Get() (domain.FormatSettings, error) {
	defaults := domain.DefaultFormatSettings()

	settings := domain.FormatSettings{
		Width: defaults.Width,
		Fill:  defaults.Fill,
	}
	if width := s.configStore.GetInt(keyFormatWidth); width > 0 {
		settings.Width = width
	}
	if fill := s.configStore.GetString(keyFormatFill); fill != "" {
		settings.Fill = fill
	}

	if err := settings.Validate(); err != nil {
		// Stored values are unusable; serve defaults rather than fail.
		return defaults, nil
	}
	return settings, nil
}

// Save validates and persists format settings.
func (s *SettingsService) Save(settings domain.FormatSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(keyFormatWidth, settings.Width); err != nil {
		return fmt.Errorf("saving width: %w", err)
	}
	if err := s.configStore.Set(keyFormatFill, settings.Fill); err != nil {
		return fmt.Errorf("saving fill: %w", err)
	}
	return nil
}

// SetWidth updates the default field width.
func (s *SettingsService) SetWidth(width int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Width = width
	return s.Save(settings)
}

// SetFill updates the default fill character.
func (s *SettingsService) SetFill(fill string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Fill = fill
	return s.Save(settings)
}

// GetDefaults returns the out-of-the-box settings.
func (s *SettingsService) GetDefaults() domain.FormatSettings {
	return domain.DefaultFormatSettings()
}
