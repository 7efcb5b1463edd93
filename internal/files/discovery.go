package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// metadataCandidates are tried in order when no explicit metadata path is
// configured.
var metadataCandidates = []string{"metadata.csv", "metadata.xlsx"}

// Discovery resolves pipeline input paths under the configured dataset
// root.
type Discovery struct {
	dataDir        string
	measurementDir string
}

// NewDiscovery creates a Discovery rooted at the dataset directory.
// measurementDir holds the per-measurement files named by the metadata
// filename column.
func NewDiscovery(dataDir, measurementDir string) *Discovery {
	return &Discovery{dataDir: dataDir, measurementDir: measurementDir}
}

// MetadataPath returns the metadata table location. An explicit path wins
// when set; otherwise the known candidate names are probed under the data
// root. Failing to locate the table is fatal for the pipeline.
func (d *Discovery) MetadataPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range metadataCandidates {
		path := filepath.Join(d.dataDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("no metadata table (%s) found under %s",
		strings.Join(metadataCandidates, ", "), d.dataDir)
}

// MeasurementPath resolves a metadata filename field against the
// measurement directory. Absolute names and parent traversal are
// rejected; the filename column is data, not a trusted path.
func (d *Discovery) MeasurementPath(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || filepath.IsAbs(name) {
		return "", false
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.Join(d.measurementDir, clean), true
}
