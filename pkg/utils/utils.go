package utils

import (
	"os"
	"path/filepath"
	"strings"
)

func GetDefaultOutputDir() string {
	tmpDir, err := os.MkdirTemp("", "cardprint-output-*")
	if err != nil {
		// If we can't create a temp directory, fall back to local directory
		return "cardprint-output"
	}
	return tmpDir
}

// OutputPathFor maps an export file to the PDF written for it, keeping the
// export's sub-directory structure below outputDir.
func OutputPathFor(outputDir, relativePath string) string {
	base := strings.TrimSuffix(relativePath, filepath.Ext(relativePath))
	return filepath.Join(outputDir, base+".pdf")
}
