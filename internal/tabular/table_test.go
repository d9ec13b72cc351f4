package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankworks/topsis/internal/topsis"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeTempCSV(t, "Model,Price,Speed\nA,250,16\nB,200,32\n")

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Model", "Price", "Speed"}, table.Header)
	assert.Equal(t, 2, table.NumCriteria())
	assert.Equal(t, []string{"A", "B"}, table.Labels())

	matrix, err := table.DecisionMatrix()
	require.NoError(t, err)
	rows, cols := matrix.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 250.0, matrix.At(0, 0))
	assert.Equal(t, 32.0, matrix.At(1, 1))
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_InsufficientColumns(t *testing.T) {
	path := writeTempCSV(t, "Model,Price\nA,250\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientColumns)
}

func TestDecisionMatrix_NonNumericData(t *testing.T) {
	path := writeTempCSV(t, "Model,Price,Speed\nA,250,fast\n")

	table, err := Load(path)
	require.NoError(t, err)

	_, err = table.DecisionMatrix()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonNumericData)
	assert.Contains(t, err.Error(), `"fast"`)
}

func TestAppendResults(t *testing.T) {
	table := &Table{
		Header: []string{"Model", "Price", "Speed"},
		Rows:   [][]string{{"A", "250", "16"}, {"B", "200", "32"}},
	}

	out, err := table.AppendResults([]topsis.Result{
		{Score: 0.25, Rank: 2},
		{Score: 0.75, Rank: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Model", "Price", "Speed", "Topsis Score", "Rank"}, out.Header)
	assert.Equal(t, []string{"A", "250", "16", "0.25", "2"}, out.Rows[0])
	assert.Equal(t, []string{"B", "200", "32", "0.75", "1"}, out.Rows[1])

	// The input table is untouched.
	assert.Equal(t, []string{"Model", "Price", "Speed"}, table.Header)
	assert.Len(t, table.Rows[0], 3)
}

func TestAppendResults_LengthMismatch(t *testing.T) {
	table := &Table{
		Header: []string{"Model", "Price", "Speed"},
		Rows:   [][]string{{"A", "250", "16"}},
	}

	_, err := table.AppendResults(nil)
	require.Error(t, err)
}

func TestWrite_RoundTripCSV(t *testing.T) {
	table := &Table{
		Header: []string{"Model", "Price", "Speed"},
		Rows:   [][]string{{"A", "250", "16"}, {"B", "200", "32"}},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(path, table))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, table.Header, loaded.Header)
	assert.Equal(t, table.Rows, loaded.Rows)
}

func TestWrite_RoundTripXLSX(t *testing.T) {
	table := &Table{
		Header: []string{"Model", "Price", "Speed"},
		Rows:   [][]string{{"A", "250", "16"}, {"B", "200", "32"}},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Write(path, table))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, table.Header, loaded.Header)
	assert.Equal(t, table.Rows, loaded.Rows)
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	table := &Table{Header: []string{"a", "b", "c"}}

	err := Write(filepath.Join(t.TempDir(), "out.parquet"), table)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
