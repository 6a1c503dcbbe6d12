package svg

import (
	"fmt"
	"math"
)

func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }

// donutSlice builds the SVG path for one ring segment. Angles are in
// degrees; 0° points right and slices are laid out clockwise starting
// at -90° (the top).
func donutSlice(cx, cy, innerR, outerR, startAngle, sliceAngle float64) string {
	endAngle := startAngle + sliceAngle

	startRad := startAngle * math.Pi / 180
	endRad := endAngle * math.Pi / 180

	outerStartX := cx + outerR*math.Cos(startRad)
	outerStartY := cy + outerR*math.Sin(startRad)
	outerEndX := cx + outerR*math.Cos(endRad)
	outerEndY := cy + outerR*math.Sin(endRad)

	innerStartX := cx + innerR*math.Cos(startRad)
	innerStartY := cy + innerR*math.Sin(startRad)
	innerEndX := cx + innerR*math.Cos(endRad)
	innerEndY := cy + innerR*math.Sin(endRad)

	largeArc := 0
	if sliceAngle > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
		outerStartX, outerStartY,
		outerR, outerR, largeArc, outerEndX, outerEndY,
		innerEndX, innerEndY,
		innerR, innerR, largeArc, innerStartX, innerStartY)
}
