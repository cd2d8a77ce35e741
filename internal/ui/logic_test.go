package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-clockface/internal/config"
)

// TestValidators checks the localized validation used by the settings window.
// By being in package 'ui', we can test the private validators directly.
func TestValidators(t *testing.T) {
	app, _, _ := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	radiusTests := []struct {
		in      string
		wantErr string
	}{
		{"140", ""},
		{"20", ""},
		{"99.5", ""},
		{"", "Radius is required"},
		{"abc", "Radius must be a number"},
		{"5", "Radius must be between 20 and 1000"},
		{"5000", "Radius must be between 20 and 1000"},
	}
	for _, tt := range radiusTests {
		t.Run("radius_"+tt.in, func(t *testing.T) {
			err := app.validateRadius(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}

	portTests := []struct {
		in      string
		wantErr string
	}{
		{"18181", ""},
		{"1", ""},
		{"65535", ""},
		{"", "Port is required"},
		{"x1", "Port must be a number"},
		{"0", "Port must be between 1 and 65535"},
		{"70000", "Port must be between 1 and 65535"},
	}
	for _, tt := range portTests {
		t.Run("port_"+tt.in, func(t *testing.T) {
			err := app.validatePort(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

// TestSettingsWidgets_Prefill verifies the inputs reflect stored preferences.
func TestSettingsWidgets_Prefill(t *testing.T) {
	app, _, _ := setupTestApp(t)
	app.Preferences.SetFloat(config.PrefRadius, 180.5)
	app.Preferences.SetString(config.PrefServerPort, "9000")
	app.Preferences.SetBool(config.PrefServerEnabled, false)
	app.Preferences.SetString(config.PrefLanguage, "fr")

	sw := app.buildSettingsWidgets()

	assert.Equal(t, "180.5", sw.radiusEntry.Text)
	assert.True(t, sw.radiusEntry.AllowDecimal)
	assert.Equal(t, "9000", sw.portEntry.Text)
	assert.False(t, sw.portEntry.AllowDecimal)
	assert.False(t, sw.serverCheck.Checked)
	assert.Equal(t, "fr", sw.langSelect.Selected)
}

func TestSettingsWidgets_Defaults(t *testing.T) {
	app, _, _ := setupTestApp(t)

	sw := app.buildSettingsWidgets()

	assert.Equal(t, "140", sw.radiusEntry.Text)
	assert.Equal(t, config.DefaultPort, sw.portEntry.Text)
	assert.True(t, sw.serverCheck.Checked)
	assert.Equal(t, config.DefaultLanguage, sw.langSelect.Selected)
}
