package popsize

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Parse reads "startTime size" rows. Start times are divided by timeFactor
// and sizes by sizeFactor, which converts years and individuals into
// diffusion units and relative sizes. Rows may come in any order.
func Parse(r io.Reader, timeFactor, sizeFactor float64) (*History, error) {
	if !(timeFactor > 0) || !(sizeFactor > 0) {
		return nil, fmt.Errorf("Parse: factors %v, %v: %w", timeFactor, sizeFactor, ErrInvalidEpoch)
	}

	var epochs []Epoch
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("Parse: line %d: want 2 fields, got %d: %w", line, len(fields), ErrMalformed)
		}
		start, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("Parse: line %d: %w: %w", line, ErrMalformed, err)
		}
		size, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("Parse: line %d: %w: %w", line, ErrMalformed, err)
		}
		epochs = append(epochs, Epoch{Start: start / timeFactor, Size: size / sizeFactor})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	sort.SliceStable(epochs, func(i, j int) bool { return epochs[i].Start < epochs[j].Start })

	return New(epochs)
}

// ParseFile opens name and calls Parse.
func ParseFile(name string, timeFactor, sizeFactor float64) (*History, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("ParseFile: %w", err)
	}
	defer f.Close()

	return Parse(f, timeFactor, sizeFactor)
}
