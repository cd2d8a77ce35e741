package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2/theme"
	"github.com/tartampluch/go-clockface/internal/config"
	"github.com/tartampluch/go-clockface/internal/engine"
)

// clockFace is the on-screen face. It lives as long as the clock window.
type clockFace struct {
	scene    *FyneScene
	renderer *engine.ClockRenderer
	task     engine.Task
}

// stop cancels the redraw task. The scene is dropped with the face.
func (f *clockFace) stop() {
	if f.task != nil {
		f.task.Stop()
		f.task = nil
	}
}

// backgroundFace draws into memory for as long as the application runs. It
// keeps the tray time and the served snapshot current while no window is open.
type backgroundFace struct {
	renderer *engine.ClockRenderer
	task     engine.Task
}

// ShowClockWindow displays the clock face. If the window is already open, it
// requests focus.
func (app *ClockApp) ShowClockWindow() {
	if app.clockWindow != nil {
		app.clockWindow.RequestFocus()
		return
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinClock))
	app.clockWindow = w

	app.startFace()

	w.SetFixedSize(true)
	w.SetOnClosed(func() {
		app.stopFace()
		app.clockWindow = nil
	})
	w.Show()
}

// faceConfig reads the face geometry from preferences.
func (app *ClockApp) faceConfig() engine.FaceConfig {
	radius := app.Preferences.FloatWithFallback(config.PrefRadius, config.DefaultRadius)
	if err := config.ValidateRadius(radius); err != nil {
		slog.Warn(err.Error(),
			config.LogKeyComponent, config.CompUI,
			config.LogKeyRadius, radius)
		radius = config.DefaultRadius
	}
	return engine.FaceConfig{Center: app.Center, Radius: radius}
}

// startFace builds a face from the current preferences, puts it in the clock
// window and starts its redraw task.
func (app *ClockApp) startFace() {
	cfg := app.faceConfig()

	face := &clockFace{
		scene: NewFyneScene(cfg, theme.Color(theme.ColorNameForeground)),
	}
	face.renderer = engine.NewClockRenderer(face.scene, cfg)
	face.renderer.Clock = app.Clock
	face.renderer.OnRedraw = func(time.Time) {
		face.scene.Refresh()
	}

	if app.clockWindow != nil {
		app.clockWindow.SetContent(face.scene.Container)
		app.clockWindow.Resize(face.scene.Size())
	}

	face.task = face.renderer.Start(app.Scheduler)
	app.face = face

	slog.Info(config.MsgFaceBuilt,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyRadius, cfg.Radius)
}

// stopFace stops the redraw tasks of the current face, if any.
func (app *ClockApp) stopFace() {
	if app.face == nil {
		return
	}
	app.face.stop()
	app.face = nil
	slog.Info(config.MsgFaceStopped, config.LogKeyComponent, config.CompUI)
}

// startBackground starts the in-memory renderer that drives the tray time and
// publishes snapshots. Its task ends with the application context.
func (app *ClockApp) startBackground() {
	if app.background != nil {
		return
	}
	cfg := app.faceConfig()

	mem := engine.NewMemoryScene()
	bg := &backgroundFace{renderer: engine.NewClockRenderer(mem, cfg)}
	bg.renderer.Clock = app.Clock
	bg.renderer.OnRedraw = func(now time.Time) {
		app.updateTrayStatus(now)
		if app.Server != nil {
			app.Server.Update(engine.EncodeSVG(mem.Shapes(), cfg), now)
		}
	}

	bg.task = bg.renderer.Start(app.Scheduler)
	app.background = bg
}

// restartBackground applies changed preferences to the running background face.
func (app *ClockApp) restartBackground() {
	if app.background == nil {
		return
	}
	app.background.task.Stop()
	app.background = nil
	app.startBackground()
}

// rebuildFace applies changed preferences to an open clock window.
func (app *ClockApp) rebuildFace() {
	if app.clockWindow == nil {
		return
	}
	app.stopFace()
	app.clockWindow.SetTitle(app.GetMsg(config.TKeyWinClock))
	app.startFace()
}
