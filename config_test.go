package gsregress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SaveAndLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.json")

	config := &Config{
		Roots:       []string{"examples", "tests/ps"},
		Recursive:   true,
		SkipHidden:  true,
		ExcludeDirs: []string{"vendor"},
		Manifest:    "manifest.gob",
		Debug:       true,
	}
	require.NoError(t, SaveConfig(filename, config))

	loaded, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read config file")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{roots"), 0644))
	_, err = LoadConfig(broken)
	assert.ErrorContains(t, err, "failed to unmarshal config data")
}
