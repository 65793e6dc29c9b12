package driving

import "github.com/custodia-labs/centred-cli/internal/core/domain"

// SettingsService manages the persisted formatting defaults.
type SettingsService interface {
	// Get retrieves the current format settings, falling back to
	// defaults for anything unset.
	Get() (domain.FormatSettings, error)

	// Save validates and persists format settings.
	Save(settings domain.FormatSettings) error

	// SetWidth updates the default field width.
	SetWidth(width int) error

	// SetFill updates the default fill character.
	SetFill(fill string) error

	// GetDefaults returns the out-of-the-box settings.
	GetDefaults() domain.FormatSettings
}
