package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Dump formats understood by Write.
const (
	FormatTSV   = "tsv"
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// WriteTSV writes a "trajectory\ttime" header and one row per point.
func WriteTSV(w io.Writer, times, values []float64) error {
	if len(times) != len(values) {
		return fmt.Errorf("WriteTSV: %w", ErrDimensionMismatch)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("trajectory\ttime\n")
	for k := range times {
		bw.WriteString(formatFloat(values[k]))
		bw.WriteByte('\t')
		bw.WriteString(formatFloat(times[k]))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WritePlain writes two space-separated lines: "trajectory v…" and "time t…".
func WritePlain(w io.Writer, times, values []float64) error {
	if len(times) != len(values) {
		return fmt.Errorf("WritePlain: %w", ErrDimensionMismatch)
	}
	bw := bufio.NewWriter(w)
	writeRow(bw, "trajectory", values)
	writeRow(bw, "time", times)

	return bw.Flush()
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// WriteYAML writes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}

// Write dispatches on format. TSV and plain dump times and values; JSON and
// YAML encode snapshot.
func Write(w io.Writer, format string, times, values []float64, snapshot any) error {
	switch format {
	case FormatTSV:
		return WriteTSV(w, times, values)
	case FormatPlain:
		return WritePlain(w, times, values)
	case FormatJSON:
		return WriteJSON(w, snapshot)
	case FormatYAML:
		return WriteYAML(w, snapshot)
	default:
		return fmt.Errorf("Write(%q): %w", format, ErrUnknownFormat)
	}
}

func writeRow(bw *bufio.Writer, label string, xs []float64) {
	bw.WriteString(label)
	for _, x := range xs {
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(x))
	}
	bw.WriteByte('\n')
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
