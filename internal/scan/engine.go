// Package scan implements the two-pass directory scan that feeds the
// catalog: a collect pass that walks the tree and gathers every
// allow-listed file, then a metadata pass that builds one FileRecord
// per file and reports progress after each.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gadget/internal/config"
	"gadget/internal/host"
	"gadget/internal/log"
	"gadget/pkg/types"
)

// Entry is one collected (directory, filename) pair, in walk order.
type Entry struct {
	Dir  string
	Name string
}

// ProgressFunc receives one progress report after each file of the
// metadata pass.
type ProgressFunc func(types.Progress)

// Engine runs scans according to the configured allow-list. Geometry
// probing goes through the host opener and is only attempted for .shp
// files when enabled.
type Engine struct {
	cfg    *config.Config
	opener host.Opener
}

// New creates an engine with default configuration and the default
// vector opener.
func New() *Engine {
	return NewWithConfig(config.New())
}

// NewWithConfig creates an engine with the given configuration.
func NewWithConfig(cfg *config.Config) *Engine {
	return &Engine{
		cfg:    cfg,
		opener: host.NewVectorOpener(),
	}
}

// SetConfig replaces the engine configuration.
func (e *Engine) SetConfig(cfg *config.Config) {
	e.cfg = cfg
}

// SetOpener replaces the host opener used for geometry probing.
func (e *Engine) SetOpener(opener host.Opener) {
	e.opener = opener
}

// Collect walks the tree under root and returns every file whose name
// ends with one of the allow-listed suffixes, in walk order. The full
// list is produced before any metadata work so progress totals are
// exact. Unreadable entries are skipped, never fatal.
func (e *Engine) Collect(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "scan", Path: root, Err: fs.ErrInvalid}
	}

	var entries []Entry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.LogWithFields(log.F("path", path), log.F("error", err)).
				Debugf("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if matchesSuffix(d.Name(), e.cfg.Scan.Extensions) {
			entries = append(entries, Entry{Dir: filepath.Dir(path), Name: d.Name()})
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return entries, nil
}

// Run performs the metadata pass over previously collected entries, in
// collection order, calling progress after each file.
func (e *Engine) Run(entries []Entry, progress ProgressFunc) []types.FileRecord {
	total := len(entries)
	records := make([]types.FileRecord, 0, total)

	probe := e.cfg.Scan.GeometryTypes && e.opener != nil

	for i, entry := range entries {
		path := filepath.Join(entry.Dir, entry.Name)

		rec := types.FileRecord{
			Name:      entry.Name,
			Path:      path,
			Dir:       entry.Dir,
			Extension: filepath.Ext(entry.Name),
		}

		if info, err := os.Stat(path); err == nil {
			rec.ModDate = info.ModTime().Format("2006-01-02")
			rec.Size = info.Size()
		}

		// The probe is best-effort: any failure leaves the label empty.
		if probe && rec.Extension == ".shp" {
			if layer, err := e.opener.Open(path, entry.Name); err == nil {
				rec.GeometryType = layer.GeometryType
			}
		}

		records = append(records, rec)

		if progress != nil {
			progress(types.NewProgress(i+1, total))
		}
	}

	return records
}

// Scan collects and runs in one call.
func (e *Engine) Scan(root string, progress ProgressFunc) ([]types.FileRecord, error) {
	entries, err := e.Collect(root)
	if err != nil {
		return nil, err
	}
	log.LogWithFields(log.F("root", root), log.F("files", len(entries))).
		Debugf("collect pass finished")
	return e.Run(entries, progress), nil
}

// matchesSuffix is a case-sensitive suffix test against the allow-list.
// Entries without a leading dot (the stock list contains a bare "dbf")
// match mid-word too, e.g. "mydbf".
func matchesSuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
