package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clockface/internal/config"
	"github.com/tartampluch/go-clockface/internal/engine"
	"github.com/tartampluch/go-clockface/internal/server"
)

// ClockApp encapsulates the UI state, preferences, and the running clock face.
type ClockApp struct {
	App         fyne.App
	Window      fyne.Window // Settings window, nil when closed
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server    *server.SnapshotServer // Optional; nil disables snapshots
	Clock     engine.Clock           // Injected clock for testability
	Scheduler engine.Scheduler       // Injected so tests can tick by hand

	// Center is the face center in scene units, seeded from the config file.
	Center engine.Point

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayShowItem     *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string

	clockWindow fyne.Window
	face        *clockFace
	background  *backgroundFace
	trayLabel   string
}

// NewClockApp constructs the application and wires dependencies.
// Ticks are dispatched onto the Fyne goroutine with fyne.Do so that every
// scene mutation happens on a single goroutine.
func NewClockApp(a fyne.App, ctx context.Context, srv *server.SnapshotServer) *ClockApp {
	a.SetIcon(theme.HistoryIcon())

	return &ClockApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Clock:              engine.RealClock{},
		Scheduler:          engine.NewTickerScheduler(ctx, fyne.Do),
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the application services and the main UI loop.
func (app *ClockApp) Run() {
	app.SetupI18n()

	if app.Server != nil {
		go app.serve()
	}

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayUnsupported, config.LogKeyComponent, config.CompUI)
	}

	app.startBackground()
	app.ShowClockWindow()
	app.App.Run()
}

// serve runs the snapshot server until the application context ends.
func (app *ClockApp) serve() {
	if err := app.Server.Start(app.Ctx); err != nil {
		slog.Error(config.ErrServerStartup,
			config.LogKeyError, err,
			config.LogKeyComponent, config.CompUI)

		app.App.SendNotification(fyne.NewNotification(
			config.TitleStartupError,
			fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
	}
}

// setupTrayMenu constructs the system tray menu.
func (app *ClockApp) setupTrayMenu() {
	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, func() {
		app.ShowClockWindow()
	})

	app.TrayShowItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuShowClock), func() {
		app.ShowClockWindow()
	})

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayShowItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
	app.updateTrayStatus(app.Clock.Now())
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *ClockApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayShowItem.Label = app.GetMsg(config.TKeyMenuShowClock)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.trayLabel = "" // force the status label to be rebuilt in the new language
	app.updateTrayStatus(app.Clock.Now())
}

// updateTrayStatus shows the current time in the tray status item.
// The menu is only refreshed when the displayed minute changes.
func (app *ClockApp) updateTrayStatus(now time.Time) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	hhmm := now.Local().Format(config.TrayTimeFormat)
	label := app.Localize(config.TKeyTrayStatus, map[string]interface{}{"Time": hhmm})
	if label == config.TKeyTrayStatus {
		label = config.FallbackTrayLabel + " " + hhmm
	}

	if label == app.trayLabel {
		return
	}
	app.trayLabel = label
	app.TrayStatusItem.Label = label
	app.Menu.Refresh()
}
