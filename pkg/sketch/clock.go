package sketch

import (
	"math"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/renderer"
)

// HourMarks returns the twelve hour positions of a unit clock face lying in the xz plane,
// starting at twelve o'clock (0, 0, 1)
func HourMarks() []core.Tuple {
	twelve := core.NewPoint(0, 0, 1)
	marks := make([]core.Tuple, 12)
	for hour := range marks {
		marks[hour] = core.RotationY(float64(hour) * math.Pi / 6).MultiplyTuple(twelve)
	}
	return marks
}

// DrawClock plots the twelve hour marks centered on the canvas with a radius of 3/8 of its width
func DrawClock(canvas *renderer.Canvas, color core.Tuple) {
	radius := 3.0 / 8.0 * float64(canvas.Width())
	centerX := float64(canvas.Width()) / 2
	centerY := float64(canvas.Height()) / 2

	for _, mark := range HourMarks() {
		x := int(math.Round(mark.X*radius + centerX))
		y := int(math.Round(mark.Z*radius + centerY))
		if canvas.InBounds(x, y) {
			canvas.WritePixel(x, y, color)
		}
	}
}
