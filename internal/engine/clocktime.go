package engine

import (
	"time"

	"github.com/tartampluch/go-clockface/internal/config"
)

// ClockTime is the reading of a 12-hour dial at one instant.
// Each unit carries the fraction of the next smaller unit so that hands move
// continuously instead of jumping when the smaller unit wraps.
type ClockTime struct {
	Hour   float64 // [0, 12)
	Minute float64 // [0, 60)
	Second float64 // whole seconds, [0, 60)
}

// CurrentClockTime decomposes now in the local time zone.
func CurrentClockTime(now time.Time) ClockTime {
	h, m, s := now.Local().Clock()

	second := float64(s)
	minute := float64(m) + second/config.SecondsPerMinute
	hour := float64(h%config.HoursPerDial) + minute/config.MinutesPerHour

	return ClockTime{
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// Angle returns the dial angle of the given hand for this reading.
// An unknown hand sits at 12 o'clock.
func (t ClockTime) Angle(h Hand) float64 {
	switch h {
	case HandSecond:
		return SecondsToAngle(t.Second)
	case HandMinute:
		return MinutesToAngle(t.Minute)
	case HandHour:
		return HoursToAngle(t.Hour)
	default:
		return AngleOffset
	}
}
