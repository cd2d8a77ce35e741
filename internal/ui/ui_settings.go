package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-clockface/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect  *widget.Select
	radiusEntry *NumericalEntry
	serverCheck *widget.Check
	portEntry   *NumericalEntry
}

// ShowSettingsWindow displays the configuration dialog.
func (app *ClockApp) ShowSettingsWindow() {
	if app.Window != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompUISet)
		app.Window.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.Window = w

	sw := app.buildSettingsWidgets()

	// --- Face Section ---
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	itemRadius := widget.NewFormItem(app.GetMsg(config.TKeyLblRadius), sw.radiusEntry)
	itemRadius.HintText = app.GetMsg(config.TKeyHelpRadius)

	faceCard := widget.NewCard(app.GetMsg(config.TKeyLblFace), "", widget.NewForm(itemLang, itemRadius))

	// --- Server Section ---
	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.portEntry)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	serverCard := widget.NewCard(app.GetMsg(config.TKeyLblServer), "",
		container.NewVBox(sw.serverCheck, widget.NewForm(itemPort)))

	// --- Actions ---
	saveAction := func() {
		for _, e := range []*NumericalEntry{sw.radiusEntry, sw.portEntry} {
			if err := e.Validate(); err != nil {
				dialog.ShowError(err, w)
				return
			}
		}
		app.saveSettings(sw)
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		faceCard,
		serverCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.Window = nil })
	w.Show()
}

// buildSettingsWidgets creates the inputs pre-filled from preferences.
func (app *ClockApp) buildSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.radiusEntry = NewDecimalEntry()
	sw.radiusEntry.SetText(strconv.FormatFloat(
		app.Preferences.FloatWithFallback(config.PrefRadius, config.DefaultRadius), 'f', -1, 64))
	sw.radiusEntry.Validator = app.validateRadius

	sw.serverCheck = widget.NewCheck(app.GetMsg(config.TKeyLblServerOn), nil)
	sw.serverCheck.SetChecked(app.Preferences.BoolWithFallback(config.PrefServerEnabled, config.DefaultServerEnabled))

	sw.portEntry = NewNumericalEntry()
	sw.portEntry.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	sw.portEntry.Validator = app.validatePort

	return sw
}

// validateRadius returns a localized error for an unusable radius.
func (app *ClockApp) validateRadius(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrRadiusReq))
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrRadiusNum))
	}
	if config.ValidateRadius(r) != nil {
		return errors.New(app.GetMsg(config.TKeyErrRadiusRange))
	}
	return nil
}

// validatePort returns a localized error for an unusable port.
func (app *ClockApp) validatePort(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrPortReq))
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrPortNum))
	}
	if port < config.MinPort || port > config.MaxPort {
		return errors.New(app.GetMsg(config.TKeyErrPortRange))
	}
	return nil
}

// saveSettings persists validated values and applies them to the running face.
// Server changes take effect at the next start.
func (app *ClockApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgPrefsSaved, config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)

	if r, err := strconv.ParseFloat(sw.radiusEntry.Text, 64); err == nil {
		app.Preferences.SetFloat(config.PrefRadius, r)
	}

	app.Preferences.SetBool(config.PrefServerEnabled, sw.serverCheck.Checked)
	app.Preferences.SetString(config.PrefServerPort, sw.portEntry.Text)

	app.UpdateLocalizer()
	app.RefreshTrayMenu()
	app.rebuildFace()
	app.restartBackground()
}
