package report

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/wfpath/measure"
	"github.com/katalvlaran/wfpath/metrics"
	"github.com/katalvlaran/wfpath/samplepath"
)

var (
	impossible = color.New(color.FgRed, color.Bold)
	warning    = color.New(color.FgYellow)
)

// Summary renders one row per observation: its time, counts, observed and
// trajectory frequency, trajectory index and log-likelihood. Impossible
// observations (−∞) are highlighted.
func Summary(w io.Writer, sp *samplepath.SamplePath) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"#", "Time", "Count", "Size", "Observed", "Index", "Path", "Log-lik"})

	for i, o := range sp.Observations() {
		k := sp.SampleIndex(i)
		index, pathFreq := "-", "-"
		if k >= 0 {
			index = humanize.Comma(int64(k))
			pathFreq = fmt.Sprintf("%.4f", measure.Frequency(sp.Value(k)))
		}
		tbl.AppendRow(table.Row{
			i, fmt.Sprintf("%.6g", o.Time), o.Count, o.Size,
			fmt.Sprintf("%.4f", o.Frequency()), index, pathFreq,
			formatLogLik(sp.LogLikelihood(i)),
		})
	}
	tbl.AppendFooter(table.Row{
		"", "", "", "", "", humanize.Comma(int64(sp.Len())) + " points",
		fmt.Sprintf("age %.6g", sp.AlleleAge()),
		formatLogLik(sp.TotalLogLikelihood()),
	})
	tbl.Render()
}

// Counters renders gathered metric samples as a two-column table.
func Counters(w io.Writer, samples []metrics.Sample) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"Counter", "Value"})
	for _, s := range samples {
		tbl.AppendRow(table.Row{s.Name, humanize.Commaf(s.Value)})
	}
	tbl.Render()
}

// Warn prints a highlighted advisory line.
func Warn(w io.Writer, msg string) {
	warning.Fprintln(w, msg)
}

func formatLogLik(ll float64) string {
	if math.IsInf(ll, -1) {
		return impossible.Sprint("-Inf")
	}

	return fmt.Sprintf("%.4f", ll)
}
