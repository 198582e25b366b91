package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dualgrad/internal/analysis"
	"github.com/san-kum/dualgrad/internal/diff"
	"github.com/san-kum/dualgrad/internal/scalar"
)

// errFloor caps log plots from below; float64 cannot resolve errors
// under about 1e-17 and asciigraph dislikes -Inf.
const errFloor = 1e-17

// Log10Errors maps error magnitudes to log10 for plotting, clamping
// zeros and denormals to the floor.
func Log10Errors(errs []float64) []float64 {
	out := make([]float64, len(errs))
	for i, e := range errs {
		if e < errFloor {
			e = errFloor
		}
		out[i] = math.Log10(e)
	}
	return out
}

// ConvergencePlot renders the per-step value error as a log10 terminal
// graph.
func ConvergencePlot(points []analysis.ConvergencePoint, width, height int) string {
	if len(points) == 0 {
		return ""
	}
	errs := make([]float64, len(points))
	for i, p := range points {
		errs[i] = p.ValueErr
	}
	return asciigraph.Plot(Log10Errors(errs),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("log10 |error| vs iteration"),
	)
}

// PrecisionPlot renders the error floor reached at each mantissa width.
func PrecisionPlot(points []analysis.PrecisionPoint, width, height int) string {
	if len(points) == 0 {
		return ""
	}
	errs := make([]float64, len(points))
	for i, p := range points {
		errs[i] = p.AbsError
	}
	return asciigraph.Plot(Log10Errors(errs),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("log10 |error| vs precision level"),
	)
}

// ResultPanel renders a boxed (value, derivative) pair for one method.
func ResultPanel(name string, r diff.Result) string {
	status := StatusOK.Render("ok")
	if !scalar.IsFinite(r.Value) || !scalar.IsFinite(r.Derivative) {
		status = StatusDiverged.Render("diverged")
	}

	var sb strings.Builder
	sb.WriteString(Title.Render(name) + "  " + status + "\n")
	sb.WriteString(fmt.Sprintf("%s %s\n",
		Label.Render("value     "), Value.Render(fmt.Sprintf("%.12f", r.Value))))
	sb.WriteString(fmt.Sprintf("%s %s",
		Label.Render("derivative"), Value.Render(fmt.Sprintf("%.12f", r.Derivative))))

	return Panel.Render(sb.String())
}
