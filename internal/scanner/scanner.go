package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/cardprint/pkg/logger"
)

var ExportExtensions = []string{".txt", ".tsv"}

type ExportFile struct {
	AbsolutePath string
	RelativePath string
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		logger: logger,
	}
}

// FindExports walks dir and returns every set export below it, in walk order.
func (s *DirectoryScanner) FindExports(ctx context.Context, dir string) ([]ExportFile, error) {
	var exports []ExportFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Trace("Scanning directory: %s", path)
			return nil
		}

		if !IsExportFile(path) {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}

		s.logger.Debug("Found export (%d): %s", len(exports)+1, relPath)
		exports = append(exports, ExportFile{
			AbsolutePath: absPath,
			RelativePath: relPath,
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(exports) == 0 {
		return nil, fmt.Errorf("no export files found in %s or its subdirectories", dir)
	}

	return exports, nil
}

func IsExportFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range ExportExtensions {
		if ext == want {
			return true
		}
	}
	return false
}
