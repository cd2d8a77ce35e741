package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-clockface/internal/config"
)

// FaceConfig positions a clock face in scene units.
type FaceConfig struct {
	Center Point
	Radius float64
}

// DefaultFaceConfig returns a face centered on the origin with the default radius.
func DefaultFaceConfig() FaceConfig {
	return FaceConfig{Radius: config.DefaultRadius}
}

// ClockRenderer owns the drawing state of one clock face and orchestrates its
// redraw cycle. Tick marks are drawn once, hands are replaced on every tick.
type ClockRenderer struct {
	Clock Clock // Injected for testability; defaults to RealClock.

	// OnRedraw, when set, runs after every hand redraw with the instant drawn.
	OnRedraw func(now time.Time)

	scene Scene
	cfg   FaceConfig
	task  Task
	log   *slog.Logger
}

// NewClockRenderer stores the scene and configuration. Nothing is drawn yet.
func NewClockRenderer(scene Scene, cfg FaceConfig) *ClockRenderer {
	return &ClockRenderer{
		Clock: RealClock{},
		scene: scene,
		cfg:   cfg,
		log: slog.With(
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyRadius, cfg.Radius,
		),
	}
}

// Config returns the face configuration.
func (r *ClockRenderer) Config() FaceConfig {
	return r.cfg
}

// Running reports whether Start has been called.
func (r *ClockRenderer) Running() bool {
	return r.task != nil
}

// Start draws the tick marks and the current hands, then schedules a hand
// redraw every second. The returned task belongs to the caller, who must stop
// it when the scene is torn down. Calling Start again returns the same task.
func (r *ClockRenderer) Start(sched Scheduler) Task {
	if r.task != nil {
		r.log.Warn(config.MsgAlreadyRunning)
		return r.task
	}

	r.DrawTickMarks()
	r.RedrawHands(r.Clock.Now())

	r.task = sched.ScheduleRepeating(config.RedrawInterval, func() {
		r.RedrawHands(r.Clock.Now())
	})

	r.log.Info(config.MsgRendererStart, config.LogKeyInterval, config.RedrawInterval)
	return r.task
}

// DrawTickMarks adds the twelve hour dots around the edge of the face.
func (r *ClockRenderer) DrawTickMarks() {
	for i := 1; i <= config.TickCount; i++ {
		angle := DegreesToRadians(config.TickStepDegs * float64(i))
		r.scene.AddShape(Dot{
			At:     r.cfg.Center.Add(CircleEdgePoint(r.cfg.Radius, angle)),
			Radius: config.TickDotSize,
		})
	}
	r.log.Debug(config.MsgTicksDrawn, config.LogKeyCount, config.TickCount)
}

// RedrawHands replaces the three hands with ones showing now.
func (r *ClockRenderer) RedrawHands(now time.Time) {
	r.clearHands()

	t := CurrentClockTime(now)
	for _, h := range Hands {
		// Dial angles grow counter-clockwise; negating them makes the hands
		// turn clockwise.
		tip := CircleEdgePoint(r.cfg.Radius*h.LengthRatio(), -t.Angle(h))
		r.scene.AddShape(HandLine{
			Hand:  h,
			From:  r.cfg.Center,
			To:    r.cfg.Center.Add(tip),
			Width: h.Width(),
		})
	}

	r.log.Debug(config.MsgHandsRedrawn,
		config.LogKeyHour, t.Hour,
		config.LogKeyMinute, t.Minute,
		config.LogKeySecond, t.Second,
	)

	if r.OnRedraw != nil {
		r.OnRedraw(now)
	}
}

// clearHands removes the previously drawn hands. On the first redraw there is
// nothing to remove.
func (r *ClockRenderer) clearHands() {
	for _, h := range Hands {
		if s, ok := r.scene.FindShapeByTag(h); ok {
			r.scene.RemoveShape(s)
		}
	}
}
