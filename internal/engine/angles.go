package engine

import (
	"math"

	"github.com/tartampluch/go-clockface/internal/config"
)

// AngleOffset rotates the zero angle from 3 o'clock (trigonometric convention)
// to 12 o'clock (dial convention).
const AngleOffset = -math.Pi / 2

// Point is a position in scene units. The y axis points up.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(d float64) float64 {
	return 2 * math.Pi * d / 360
}

// SecondsToAngle returns the dial angle of s seconds.
func SecondsToAngle(s float64) float64 {
	return DegreesToRadians(config.DegreesPerSecond*s) + AngleOffset
}

// MinutesToAngle returns the dial angle of m minutes.
func MinutesToAngle(m float64) float64 {
	return DegreesToRadians(config.DegreesPerMinute*m) + AngleOffset
}

// HoursToAngle returns the dial angle of h hours on a 12-hour face.
func HoursToAngle(h float64) float64 {
	return DegreesToRadians(config.DegreesPerHour*h) + AngleOffset
}

// CircleEdgePoint returns the point at distance radius from the origin in
// direction angle. Every hand and tick position derives from it.
func CircleEdgePoint(radius, angle float64) Point {
	return Point{
		X: radius * math.Cos(angle),
		Y: radius * math.Sin(angle),
	}
}
