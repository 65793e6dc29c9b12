package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsShowCmd_Defaults(t *testing.T) {
	setupServices(t)

	out, err := executeCommand(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Width: 0")
	assert.Contains(t, out, `Fill:  " "`)
}

func TestSettingsSetCmd_Width(t *testing.T) {
	store := setupServices(t)

	out, err := executeCommand(t, "", "settings", "set", "width", "12")

	require.NoError(t, err)
	assert.Contains(t, out, "Default width set to 12")
	assert.Equal(t, 12, store.GetInt("format.width"))
}

func TestSettingsSetCmd_Fill(t *testing.T) {
	store := setupServices(t)

	out, err := executeCommand(t, "", "settings", "set", "fill", "=")

	require.NoError(t, err)
	assert.Contains(t, out, `Default fill set to "="`)
	assert.Equal(t, "=", store.GetString("format.fill"))
}

func TestSettingsSetCmd_RejectsNonIntegerWidth(t *testing.T) {
	setupServices(t)

	_, err := executeCommand(t, "", "settings", "set", "width", "wide")

	assert.Error(t, err)
}

func TestSettingsSetCmd_RejectsNegativeWidth(t *testing.T) {
	setupServices(t)

	_, err := executeCommand(t, "", "settings", "set", "width", "-3")

	assert.Error(t, err)
}

func TestSettingsSetCmd_UnknownKey(t *testing.T) {
	setupServices(t)

	_, err := executeCommand(t, "", "settings", "set", "colour", "red")

	assert.Error(t, err)
}

func TestSettingsCmd_NilServiceFails(t *testing.T) {
	SetServices(nil, nil)
	defer setupServices(t)

	_, err := executeCommand(t, "", "settings", "show")

	assert.Error(t, err)
}
