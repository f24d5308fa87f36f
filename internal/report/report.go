// Package report emits CSV summaries of decode-capacity experiments and
// computes summary statistics (mean, standard deviation, min, max) over
// a batch of measurements. It is kept separate from the ibf package
// because it only consumes a Filter's results for reporting purposes; it
// has no part in encoding, subtracting, or decoding.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
)

// Trial is one row of a decode-capacity sweep: a set size, the number
// of reconciliation attempts that decoded successfully, and the
// per-attempt wall-clock duration in milliseconds. This mirrors the
// ExperimentResult/size,totalCorrect,t0,t1,... shape of the original
// benchmark's CSV output.
type Trial struct {
	Size         int
	TotalCorrect int
	DurationsMs  []float64
}

// CSVWriter emits a sequence of Trials as CSV, one header row followed by
// one row per trial: "size,total_correct,t0,t1,...".
type CSVWriter struct {
	w          *csv.Writer
	wroteHeads bool
	iterations int
}

// NewCSVWriter returns a CSVWriter that will write iterations timing
// columns per row.
func NewCSVWriter(w io.Writer, iterations int) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w), iterations: iterations}
}

// Write appends one Trial as a CSV row, writing the header first if this
// is the first call.
func (c *CSVWriter) Write(t Trial) error {
	if !c.wroteHeads {
		header := []string{"size", "total_correct"}
		for i := 0; i < c.iterations; i++ {
			header = append(header, fmt.Sprintf("t%d", i))
		}
		if err := c.w.Write(header); err != nil {
			return err
		}
		c.wroteHeads = true
	}

	row := []string{fmt.Sprintf("%d", t.Size), fmt.Sprintf("%d", t.TotalCorrect)}
	for _, d := range t.DurationsMs {
		row = append(row, fmt.Sprintf("%f", d))
	}
	if err := c.w.Write(row); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

// Stats holds the mean, population standard deviation, minimum, and
// maximum of a sample of observations.
type Stats struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Summarize computes the mean, population standard deviation, minimum,
// and maximum of values.
func Summarize(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	sum := 0.0
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(values))

	if len(values) == 1 {
		return Stats{Mean: mean, Std: 0, Min: min, Max: max}
	}

	ssd := 0.0
	for _, v := range values {
		ssd += math.Pow(v-mean, 2)
	}
	std := math.Sqrt(ssd / float64(len(values)))

	return Stats{Mean: mean, Std: std, Min: min, Max: max}
}
