package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T) (*ChartSink, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	var buf bytes.Buffer
	sink := NewChartSink(dir, 140, NewConsole(&buf), nil)
	return sink, &buf, dir
}

func TestSaveBarWritesFile(t *testing.T) {
	sink, buf, dir := newTestSink(t)

	err := sink.SaveBar("Admissions by Department", "Admissions",
		[]string{"ER", "ICU", "Surgery"}, []float64{3, 2, 1},
		FileAdmissionsByDepartment)
	require.NoError(t, err)

	path := filepath.Join(dir, FileAdmissionsByDepartment)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[saved] "+abs)
}

func TestSaveScatterWritesFile(t *testing.T) {
	sink, buf, dir := newTestSink(t)

	err := sink.SaveScatter("Length of Stay vs Cost", "Length_of_Stay", "Cost",
		[]float64{1, 2, 3, 4}, []float64{100, 200, 300, 400},
		FileLengthOfStayVsCost)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, FileLengthOfStayVsCost))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[saved]")
}

func TestSaveLineWritesFile(t *testing.T) {
	sink, _, dir := newTestSink(t)

	err := sink.SaveLine("Monthly Admissions Trend", "Admissions",
		[]string{"2024-01", "2024-02"}, []float64{3, 1},
		FileMonthlyAdmissions)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, FileMonthlyAdmissions))
	require.NoError(t, err)
}

func TestSaveBarOverwritesExisting(t *testing.T) {
	sink, _, dir := newTestSink(t)

	path := filepath.Join(dir, FileAvgCostByDepartment)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	err := sink.SaveBar("Average Cost per Department", "Average Cost",
		[]string{"ICU", "ER"}, []float64{500, 200},
		FileAvgCostByDepartment)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("stale"), data)
	// PNG signature
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestSaveBarCreatesMissingDirectory(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "reports", "figs")
	var buf bytes.Buffer
	sink := NewChartSink(dir, 140, NewConsole(&buf), nil)

	err := sink.SaveBar("Readmission Rate (Yes) by Department", "Yes %",
		[]string{"ER"}, []float64{33.3}, FileReadmissionYesByDept)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, FileReadmissionYesByDept))
	require.NoError(t, err)
}
