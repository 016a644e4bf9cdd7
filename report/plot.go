package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/wfpath/samplepath"
)

const (
	chartWidth  = "100%"
	chartHeight = "500px"
	lineWidth   = 2
)

// Plot writes an HTML page with the frequency trajectory and the observed
// frequencies at their trajectory points.
func Plot(w io.Writer, sp *samplepath.SamplePath, title string) error {
	times := sp.Times()
	freqs := sp.Frequencies()

	labels := make([]string, len(times))
	traj := make([]opts.LineData, len(times))
	for k := range times {
		labels[k] = strconv.FormatFloat(times[k], 'g', 6, 64)
		traj[k] = opts.LineData{Value: freqs[k]}
	}

	// observed frequencies, blank except at indexed points
	observed := make([]opts.LineData, len(times))
	for k := range observed {
		observed[k] = opts.LineData{Value: "-"}
	}
	for i, o := range sp.Observations() {
		if k := sp.SampleIndex(i); k >= 0 {
			observed[k] = opts.LineData{Value: o.Frequency(), Symbol: "circle", SymbolSize: 8}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "frequency", Min: 0, Max: 1}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	line.SetXAxis(labels)
	line.AddSeries("trajectory", traj,
		charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
	line.AddSeries("observed", observed,
		charts.WithLineChartOpts(opts.LineChart{ConnectNulls: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Width: 0}),
	)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("Plot: %w", err)
	}

	return nil
}
