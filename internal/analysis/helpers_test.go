package analysis

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"edacli/internal/dataset"
)

// loadFixture writes the CSV content to a temp file and loads it
func loadFixture(t *testing.T, content string) *dataset.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	table, err := dataset.Load(context.Background(), path)
	require.NoError(t, err)
	return table
}
