// Package output owns the artifact directory and writes one newline-delimited
// insert stream per table.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eduardoconde-bit/spotify-database/internal/config"
	"go.uber.org/fx"
)

// Module provides the artifact writer for the configured output directory.
var Module = fx.Module("output",
	fx.Provide(func(cfg config.Config) (*Writer, error) {
		return New(cfg.OutputDir, cfg.CreateOutputDir)
	}),
)

// ErrDirUnavailable reports an output directory that is missing and must not
// be created, or otherwise unusable.
var ErrDirUnavailable = errors.New("output directory unavailable")

type Writer struct {
	dir string
}

// New verifies dir exists, creating it when create is set.
func New(dir string, create bool) (*Writer, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrDirUnavailable)
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", ErrDirUnavailable, dir)
		}
	case os.IsNotExist(err):
		if !create {
			return nil, fmt.Errorf("%w: %s does not exist", ErrDirUnavailable, dir)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDirUnavailable, err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrDirUnavailable, err)
	}

	return &Writer{dir: dir}, nil
}

func (w *Writer) Dir() string { return w.dir }

// WriteArtifact writes all lines for one table in a single pass, replacing
// any file from a previous run. It returns the path and size written.
func (w *Writer) WriteArtifact(table string, lines []string) (string, int64, error) {
	path := filepath.Join(w.dir, "insert_"+table+".txt")

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", 0, fmt.Errorf("write %s: %w", path, err)
	}
	return path, int64(buf.Len()), nil
}
