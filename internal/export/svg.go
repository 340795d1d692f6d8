// Package export renders boundary-layer profiles as standalone SVG line
// charts, for the profile pairs the terminal plots cannot show against a
// non-uniform abscissa (notably velocity vs wall distance).
package export

import (
	"fmt"
	"strings"
)

// Curve is one profile polyline: co-indexed abscissa and ordinate arrays.
type Curve struct {
	X     []float64
	Y     []float64
	Label string
	Color string
}

// ProfileSVG renders the curves into a single SVG chart of the given
// pixel size. Curves shorter than two points are skipped.
func ProfileSVG(curves []Curve, width, height int) string {
	minX, maxX, minY, maxY, ok := bounds(curves)
	if !ok {
		return ""
	}

	// Pad the data box so lines stay off the frame.
	rangeX := pad(&minX, &maxX)
	rangeY := pad(&minY, &maxY)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	for i, c := range curves {
		if len(c.X) < 2 || len(c.X) != len(c.Y) {
			continue
		}
		color := c.Color
		if color == "" {
			color = "#000000"
		}

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for j := range c.X {
			px := (c.X[j] - minX) / rangeX * float64(width)
			py := float64(height) - (c.Y[j]-minY)/rangeY*float64(height)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")

		if c.Label != "" {
			sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" font-family="monospace" font-size="12" fill="%s">%s</text>
`, 16+16*i, color, c.Label))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func bounds(curves []Curve) (minX, maxX, minY, maxY float64, ok bool) {
	for _, c := range curves {
		if len(c.X) < 2 || len(c.X) != len(c.Y) {
			continue
		}
		for j := range c.X {
			if !ok {
				minX, maxX = c.X[j], c.X[j]
				minY, maxY = c.Y[j], c.Y[j]
				ok = true
				continue
			}
			minX = min(minX, c.X[j])
			maxX = max(maxX, c.X[j])
			minY = min(minY, c.Y[j])
			maxY = max(maxY, c.Y[j])
		}
	}
	return minX, maxX, minY, maxY, ok
}

func pad(lo, hi *float64) float64 {
	r := *hi - *lo
	if r == 0 {
		r = 1
	}
	*lo -= r * 0.1
	*hi += r * 0.1
	return *hi - *lo
}
