package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/tartampluch/go-clockface/internal/config"
	"github.com/tartampluch/go-clockface/internal/engine"
)

// FyneScene implements engine.Scene on top of a Fyne container without layout.
// Shapes are positioned in absolute canvas pixels: the face center is placed
// in the middle of the container and the y axis is flipped.
//
// Like every Fyne object, it must only be touched from the Fyne goroutine.
type FyneScene struct {
	Container *fyne.Container

	face    engine.FaceConfig
	stroke  color.Color
	objects map[engine.Shape]fyne.CanvasObject
	tagged  map[engine.Hand]engine.Shape
}

// NewFyneScene creates an empty scene framing the given face.
func NewFyneScene(face engine.FaceConfig, stroke color.Color) *FyneScene {
	s := &FyneScene{
		Container: container.NewWithoutLayout(),
		face:      face,
		stroke:    stroke,
		objects:   make(map[engine.Shape]fyne.CanvasObject),
		tagged:    make(map[engine.Hand]engine.Shape),
	}
	s.Container.Resize(s.Size())
	return s
}

// Size returns the canvas size needed to show the whole face plus margin.
func (s *FyneScene) Size() fyne.Size {
	side := float32(2 * (s.face.Radius + config.FaceMargin))
	return fyne.NewSize(side, side)
}

// toCanvas converts a y-up scene point into a y-down canvas position.
func (s *FyneScene) toCanvas(p engine.Point) fyne.Position {
	half := s.face.Radius + config.FaceMargin
	return fyne.NewPos(
		float32(p.X-s.face.Center.X+half),
		float32(half-(p.Y-s.face.Center.Y)),
	)
}

func (s *FyneScene) AddShape(shape engine.Shape) {
	var obj fyne.CanvasObject

	switch v := shape.(type) {
	case engine.Dot:
		dot := canvas.NewCircle(s.stroke)
		r := float32(v.Radius)
		pos := s.toCanvas(v.At)
		dot.Resize(fyne.NewSize(2*r, 2*r))
		dot.Move(fyne.NewPos(pos.X-r, pos.Y-r))
		obj = dot

	case engine.HandLine:
		line := canvas.NewLine(s.stroke)
		line.StrokeWidth = float32(v.Width)
		line.Position1 = s.toCanvas(v.From)
		line.Position2 = s.toCanvas(v.To)
		obj = line
		s.tagged[v.Hand] = shape

	default:
		return
	}

	s.objects[shape] = obj
	s.Container.Add(obj)
}

func (s *FyneScene) FindShapeByTag(h engine.Hand) (engine.Shape, bool) {
	shape, ok := s.tagged[h]
	return shape, ok
}

func (s *FyneScene) RemoveShape(shape engine.Shape) {
	obj, ok := s.objects[shape]
	if !ok {
		return
	}
	s.Container.Remove(obj)
	delete(s.objects, shape)

	if line, isLine := shape.(engine.HandLine); isLine && s.tagged[line.Hand] == shape {
		delete(s.tagged, line.Hand)
	}
}

// Refresh repaints the container after a batch of changes.
func (s *FyneScene) Refresh() {
	s.Container.Refresh()
}
