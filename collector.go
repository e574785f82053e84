package gsregress

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/n0h4rt/gsregress/utils"
	"github.com/rs/zerolog/log"
)

// TestFile is a regression input picked up by the Collector.
type TestFile struct {
	Path      string    // Path of the file, rooted at the collected directory.
	Name      string    // Base name of the file.
	Extension Extension // The accepted extension the name ends with.
	Size      int64     // Size in bytes at collection time.
}

// Collector lists the regression inputs found under one or more directories.
type Collector struct {
	roots       []string
	manifest    string
	recursive   bool
	skipHidden  bool
	excludeDirs []string
	isDebug     bool
}

// NewCollector creates a new Collector.
//
// The config may be nil. Options are applied after the config, so they can only enable
// behavior on top of it.
//
// Args:
//   - config: The configuration to start from.
//   - options: Additional options for the collector.
//
// Returns:
//   - *Collector: A pointer to the created Collector.
func NewCollector(config *Config, options ...Option) *Collector {
	c := &Collector{}

	if config != nil {
		c.roots = append(c.roots, config.Roots...)
		c.manifest = config.Manifest
		c.recursive = config.Recursive
		c.skipHidden = config.SkipHidden
		c.excludeDirs = append(c.excludeDirs, config.ExcludeDirs...)
		c.isDebug = config.Debug
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Collect lists the files under root whose name passes CheckExtension.
//
// Regular files are returned, sorted by path. A root that is a symlink is resolved first,
// but the returned paths stay under root as given. Symlinked entries are followed only
// when they point at a regular file; symlinked directories are not entered. Rejected names
// that look like a typo of an accepted extension are reported with a warning.
//
// Args:
//   - ctx: The context, checked between directory entries.
//   - root: The directory to list.
//
// Returns:
//   - []TestFile: The accepted files.
//   - error: ErrRootNotFound, ErrNotADirectory, the context error, or a walk error.
func (c *Collector) Collect(ctx context.Context, root string) (files []TestFile, err error) {
	if !utils.FileExists(root) {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	log.Debug().Str("Name", root).Str("Resolved", resolved).Msg("Collecting")

	err = filepath.WalkDir(resolved, func(walked string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}

		if walked == resolved {
			return nil
		}

		rel, err := filepath.Rel(resolved, walked)
		if err != nil {
			return err
		}
		path := filepath.Join(root, rel)
		name := d.Name()

		if d.IsDir() {
			if !c.recursive || utils.Contains(c.excludeDirs, name) || (c.skipHidden && utils.IsHidden(name)) {
				return filepath.SkipDir
			}
			return nil
		}

		if c.skipHidden && utils.IsHidden(name) {
			return nil
		}

		var fileInfo fs.FileInfo
		switch {
		case d.Type().IsRegular():
			if fileInfo, err = d.Info(); err != nil {
				return err
			}
		case d.Type()&fs.ModeSymlink != 0:
			target, statErr := os.Stat(walked)
			if statErr != nil || !target.Mode().IsRegular() {
				if c.isDebug {
					log.Debug().Str("Name", path).Msg("Skipped symlink, target is not a regular file")
				}
				return nil
			}
			fileInfo = target
		default:
			return nil
		}

		ext, ok := MatchExtension(name)
		if !ok {
			if suggestion, found := SuggestExtension(name); found {
				log.Warn().Str("Name", path).Str("Suggestion", string(suggestion)).Msg("Skipped, extension looks misspelled")
			}
			return nil
		}

		files = append(files, TestFile{Path: path, Name: name, Extension: ext, Size: fileInfo.Size()})

		if c.isDebug {
			log.Debug().Str("Name", path).Str("Kind", ext.Kind()).Msg("Collected")
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	log.Debug().Str("Name", root).Int("Count", len(files)).Msg("Collected")

	return files, nil
}

// CollectAll collects every root concurrently into a single Manifest.
//
// Roots that fail do not stop the others; their errors are joined.
//
// Args:
//   - ctx: The context shared by all walks.
//   - roots: The directories to list.
//
// Returns:
//   - *Manifest: The files collected from the roots that succeeded.
//   - error: The joined errors of the roots that failed, or nil.
func (c *Collector) CollectAll(ctx context.Context, roots ...string) (*Manifest, error) {
	manifest := NewManifest()
	errs := make([]error, len(roots))

	var wg sync.WaitGroup
	for i, root := range roots {
		wg.Add(1)
		go func(i int, root string) {
			defer wg.Done()

			files, err := c.Collect(ctx, root)
			if err != nil {
				log.Error().Str("Name", root).Err(err).Msg("Collect failed")
				errs[i] = err
				return
			}

			for _, file := range files {
				manifest.Add(file)
			}
		}(i, root)
	}
	wg.Wait()

	return manifest, errors.Join(errs...)
}

// CollectConfigured collects the roots of the Config the collector was created with and
// saves the result to the configured manifest file, if any.
//
// The manifest is saved even when some roots failed, so it always reflects the roots
// that could be listed.
//
// Args:
//   - ctx: The context shared by all walks.
//
// Returns:
//   - *Manifest: The collected files.
//   - error: The joined collect and save errors, or nil.
func (c *Collector) CollectConfigured(ctx context.Context) (*Manifest, error) {
	manifest, err := c.CollectAll(ctx, c.roots...)

	if saveErr := manifest.Save(c.manifest); saveErr != nil {
		log.Error().Str("Name", c.manifest).Err(saveErr).Msg("Manifest save failed")
		err = errors.Join(err, saveErr)
	}

	return manifest, err
}
