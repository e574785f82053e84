package gsregress

import (
	"encoding/gob"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
)

// Manifest is the set of collected regression inputs, keyed by path.
//
// It is safe for concurrent use and can be saved to and loaded from a gob file,
// so a later run can reuse the listing.
type Manifest struct {
	Entries SyncMap[string, TestFile] // Collected files keyed by path.
}

// NewManifest creates an empty Manifest.
func NewManifest() *Manifest {
	return &Manifest{}
}

// Add adds or replaces the file under its path.
func (m *Manifest) Add(file TestFile) {
	m.Entries.Set(file.Path, file)
}

// Get returns the file stored under path.
func (m *Manifest) Get(path string) (TestFile, bool) {
	return m.Entries.Get(path)
}

// Len returns the number of files in the manifest.
func (m *Manifest) Len() int {
	return m.Entries.Len()
}

// Files returns every file in the manifest, sorted by path.
func (m *Manifest) Files() []TestFile {
	return m.filter(func(TestFile) bool { return true })
}

// ByExtension returns the files with the given extension, sorted by path.
//
// Args:
//   - ext: The extension to filter on.
//
// Returns:
//   - []TestFile: The matching files.
func (m *Manifest) ByExtension(ext Extension) []TestFile {
	return m.filter(func(file TestFile) bool { return file.Extension == ext })
}

func (m *Manifest) filter(keep func(TestFile) bool) (files []TestFile) {
	m.Entries.Range(func(_ string, file TestFile) bool {
		if keep(file) {
			files = append(files, file)
		}
		return true
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return
}

// Save writes the manifest to the file. An empty filename disables saving.
func (m *Manifest) Save(filename string) (err error) {
	if filename == "" {
		return nil
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, MANIFEST_FILE_MODE)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close manifest file: %w", closeErr)
		}
	}()

	err = gob.NewEncoder(file).Encode(&m.Entries)
	if err != nil {
		log.Error().Str("Name", filename).Err(err).Msg("Manifest encode error.")
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	return nil
}

// LoadManifest reads a manifest previously written by Manifest.Save.
//
// Args:
//   - filename: The name of the manifest file.
//
// Returns:
//   - *Manifest: The loaded manifest.
//   - error: An error if the file cannot be opened or decoded.
func LoadManifest(filename string) (*Manifest, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest file: %w", err)
	}
	defer file.Close()

	m := NewManifest()

	err = gob.NewDecoder(file).Decode(&m.Entries)
	if err != nil {
		log.Error().Str("Name", filename).Err(err).Msg("Manifest decode error.")
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	return m, nil
}
