package gsregress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleManifest() *Manifest {
	m := NewManifest()
	m.Add(TestFile{Path: "b/tiger.eps", Name: "tiger.eps", Extension: ExtEPS, Size: 10})
	m.Add(TestFile{Path: "a/golfer.ps", Name: "golfer.ps", Extension: ExtPS, Size: 20})
	m.Add(TestFile{Path: "c/report.pdf", Name: "report.pdf", Extension: ExtPDF, Size: 30})
	m.Add(TestFile{Path: "a/escher.ps", Name: "escher.ps", Extension: ExtPS, Size: 40})

	return m
}

func TestManifest_Files(t *testing.T) {
	m := sampleManifest()

	assert.Equal(t, 4, m.Len())

	var paths []string
	for _, file := range m.Files() {
		paths = append(paths, file.Path)
	}
	assert.Equal(t, []string{"a/escher.ps", "a/golfer.ps", "b/tiger.eps", "c/report.pdf"}, paths)

	file, ok := m.Get("b/tiger.eps")
	assert.True(t, ok)
	assert.Equal(t, int64(10), file.Size)

	_, ok = m.Get("missing.ai")
	assert.False(t, ok)
}

func TestManifest_ByExtension(t *testing.T) {
	m := sampleManifest()

	ps := m.ByExtension(ExtPS)
	require.Len(t, ps, 2)
	assert.Equal(t, "a/escher.ps", ps[0].Path)
	assert.Equal(t, "a/golfer.ps", ps[1].Path)

	assert.Empty(t, m.ByExtension(ExtAI))
}

func TestManifest_SaveAndLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "manifest.gob")

	m := sampleManifest()
	require.NoError(t, m.Save(filename))

	loaded, err := LoadManifest(filename)
	require.NoError(t, err)
	assert.Equal(t, m.Files(), loaded.Files())
}

func TestManifest_SaveEmptyFilename(t *testing.T) {
	assert.NoError(t, sampleManifest().Save(""))
}

func TestLoadManifest_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadManifest(filepath.Join(dir, "missing.gob"))
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.gob")
	require.NoError(t, os.WriteFile(garbage, []byte("not a gob"), 0644))
	_, err = LoadManifest(garbage)
	assert.Error(t, err)
}

func TestManifest_SaveWriteError(t *testing.T) {
	// Writes to /dev/full always fail with ENOSPC.
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	err := sampleManifest().Save("/dev/full")
	assert.Error(t, err)
}

func TestManifest_SaveOverwrites(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "manifest.gob")

	require.NoError(t, sampleManifest().Save(filename))

	small := NewManifest()
	small.Add(TestFile{Path: "a/golfer.ps", Name: "golfer.ps", Extension: ExtPS})
	require.NoError(t, small.Save(filename))

	loaded, err := LoadManifest(filename)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}
