package engine

import (
	"bytes"
	"fmt"

	"github.com/tartampluch/go-clockface/internal/config"
)

// EncodeSVG renders shapes as a standalone SVG document framing the face
// described by cfg. Scene coordinates are y-up; SVG is y-down, so the y axis
// is flipped around the face center.
func EncodeSVG(shapes []Shape, cfg FaceConfig) []byte {
	half := cfg.Radius + config.FaceMargin
	size := 2 * half

	toSVG := func(p Point) (float64, float64) {
		return p.X - cfg.Center.X + half, half - (p.Y - cfg.Center.Y)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		size, size, size, size)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", config.SVGBackground)

	for _, s := range shapes {
		switch v := s.(type) {
		case Dot:
			x, y := toSVG(v.At)
			fmt.Fprintf(&buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
				x, y, v.Radius, config.SVGStroke)
		case HandLine:
			x1, y1 := toSVG(v.From)
			x2, y2 := toSVG(v.To)
			fmt.Fprintf(&buf, `<line id="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" stroke-linecap="%s"/>`+"\n",
				v.Hand, x1, y1, x2, y2, config.SVGStroke, v.Width, config.SVGLineCap)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
