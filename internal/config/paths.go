package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultConfigFile is the optional YAML config file looked up in the
	// working directory.
	DefaultConfigFile = "eda-report.yml"

	defaultFiguresDir = "reports/figs"
	defaultChartDPI   = 140
)

// Paths contains the resolved filesystem locations used by a report run.
// This is the single source of truth for output paths.
type Paths struct {
	FiguresDir string
	LogsDir    string
}

// NewPaths builds the run paths from configuration. Relative directories
// resolve against the current working directory.
func NewPaths(cfg *Config) *Paths {
	return &Paths{
		FiguresDir: cfg.Figures.Dir,
		LogsDir:    filepath.Dir(cfg.Logging.FilePath),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.FiguresDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// FigurePath returns the path for a chart image inside the figures directory
func (p *Paths) FigurePath(filename string) string {
	return filepath.Join(p.FiguresDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
