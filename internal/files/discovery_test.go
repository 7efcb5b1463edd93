package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataPathExplicitWins(t *testing.T) {
	d := NewDiscovery("cleaned_dataset", "cleaned_dataset/data")

	path, err := d.MetadataPath("/tmp/custom.csv")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.csv", path)
}

func TestMetadataPathDiscovery(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "metadata.csv")
	require.NoError(t, os.WriteFile(want, []byte("battery_id\n"), 0o644))

	d := NewDiscovery(dir, filepath.Join(dir, "data"))
	path, err := d.MetadataPath("")
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestMetadataPathMissing(t *testing.T) {
	d := NewDiscovery(t.TempDir(), "data")

	_, err := d.MetadataPath("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no metadata table")
}

func TestMeasurementPath(t *testing.T) {
	d := NewDiscovery("cleaned_dataset", filepath.Join("cleaned_dataset", "data"))

	path, ok := d.MeasurementPath("B0005_1.csv")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("cleaned_dataset", "data", "B0005_1.csv"), path)

	// Subdirectories in the filename column are allowed.
	path, ok = d.MeasurementPath("B0005/impedance_12.csv")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("cleaned_dataset", "data", "B0005", "impedance_12.csv"), path)
}

func TestMeasurementPathRejectsEscapes(t *testing.T) {
	d := NewDiscovery("cleaned_dataset", filepath.Join("cleaned_dataset", "data"))

	for _, name := range []string{"", "   ", "/etc/passwd", "../metadata.csv", "a/../../secret.csv"} {
		_, ok := d.MeasurementPath(name)
		assert.False(t, ok, name)
	}
}
