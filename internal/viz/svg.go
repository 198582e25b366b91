package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/dualgrad/internal/analysis"
)

// ErrorCurveSVG renders the log10 value-error curve of a convergence
// trace as a standalone SVG polyline.
func ErrorCurveSVG(points []analysis.ConvergencePoint, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	errs := make([]float64, len(points))
	for i, p := range points {
		errs[i] = p.ValueErr
	}
	ys := Log10Errors(errs)

	minY, maxY := ys[0], ys[0]
	for _, y := range ys {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	stepX := float64(width) / float64(len(ys)-1)
	for i, y := range ys {
		px := float64(i) * stepX
		py := float64(height) - (y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
