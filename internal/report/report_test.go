package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeMeanStdMinMax(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 2.0, s.Std, 1e-6)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, Summarize(nil))
}

func TestCSVWriterHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf, 2)

	require.NoError(t, w.Write(Trial{Size: 10, TotalCorrect: 2, DurationsMs: []float64{1.5, 2.5}}))
	require.NoError(t, w.Write(Trial{Size: 20, TotalCorrect: 1, DurationsMs: []float64{3.0, 4.0}}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "size,total_correct,t0,t1", lines[0])
	assert.Contains(t, lines[1], "10,2,")
}
