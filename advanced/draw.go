package advanced

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/partition/dbg"
)

// Padding around the shape so edges on the bounding box stay visible
const drawPadding = 20

// Render a partition to a PNG file. Each part gets its own color and is
// labeled with its readable debug name. Holes are drawn as outlines so gaps in
// the partition stand out.
func DrawPartition(points []Point, parts, holes PolygonList, scale float64, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, list := range []PolygonList{parts, holes} {
		for _, poly := range list {
			for _, p := range poly.Points(points) {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i := range parts {
		// Spread hues with the golden angle so neighbors rarely match
		color := colorful.Hsv(math.Mod(float64(i)*137.508, 360), 0.55, 0.85)
		tracePolygon(c, points, parts[i])
		c.SetRGBA(color.R, color.G, color.B, 0.8)
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}
	for _, hole := range holes {
		tracePolygon(c, points, hole)
		c.SetRGB(1, 0.3, 0.3)
		c.Stroke()
	}

	// Labels are drawn in device space so the text isn't mirrored
	for i := range parts {
		var cx, cy float64
		for _, p := range parts[i].Points(points) {
			cx += p.X
			cy += p.Y
		}
		cx /= float64(len(parts[i]))
		cy /= float64(len(parts[i]))
		x, y := c.TransformPoint(cx, cy)
		c.Push()
		c.Identity()
		c.SetRGB(0, 0, 0)
		c.DrawStringAnchored(dbg.Name(&parts[i]), x, y, 0.5, 0.5)
		c.Pop()
	}

	return c.SavePNG(path)
}

func tracePolygon(c *gg.Context, points []Point, poly Polygon) {
	for i, p := range poly.Points(points) {
		if i == 0 {
			c.MoveTo(p.X, p.Y)
		} else {
			c.LineTo(p.X, p.Y)
		}
	}
	c.ClosePath()
}

// Print a PNG inline in the terminal (iTerm only).
func CatPNG(path string, w io.Writer) error {
	return imgcat.CatFile(path, w)
}
