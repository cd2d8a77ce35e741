package engine

import "slices"

// MemoryScene is a Scene that only records shapes. It backs the SVG snapshot
// and lets the renderer be exercised without a window.
type MemoryScene struct {
	shapes []Shape
}

// NewMemoryScene creates an empty scene.
func NewMemoryScene() *MemoryScene {
	return &MemoryScene{}
}

func (m *MemoryScene) AddShape(s Shape) {
	m.shapes = append(m.shapes, s)
}

func (m *MemoryScene) FindShapeByTag(h Hand) (Shape, bool) {
	for _, s := range m.shapes {
		if line, ok := s.(HandLine); ok && line.Hand == h {
			return line, true
		}
	}
	return nil, false
}

func (m *MemoryScene) RemoveShape(s Shape) {
	if i := slices.Index(m.shapes, s); i >= 0 {
		m.shapes = slices.Delete(m.shapes, i, i+1)
	}
}

// Shapes returns a copy of the shapes in insertion order.
func (m *MemoryScene) Shapes() []Shape {
	return slices.Clone(m.shapes)
}
