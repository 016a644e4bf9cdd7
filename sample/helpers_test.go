package sample_test

import (
	"os"

	"github.com/katalvlaran/wfpath/sample"
)

func counts(obs []sample.Observation) []int {
	out := make([]int, len(obs))
	for i, o := range obs {
		out[i] = o.Count
	}

	return out
}

func times(obs []sample.Observation) []float64 {
	out := make([]float64, len(obs))
	for i, o := range obs {
		out[i] = o.Time
	}

	return out
}

func writeFile(name, content string) error {
	return os.WriteFile(name, []byte(content), 0o600)
}
