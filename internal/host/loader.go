package host

import (
	"gadget/internal/log"
	"gadget/pkg/types"
)

// Loader batch-loads catalog records as project layers.
type Loader struct {
	opener  Opener
	project *Project
}

// NewLoader creates a loader that opens files through opener and
// registers them with project.
func NewLoader(opener Opener, project *Project) *Loader {
	return &Loader{opener: opener, project: project}
}

// Project returns the registry this loader fills.
func (l *Loader) Project() *Project {
	return l.project
}

// Load opens every record and registers the resulting layers with the
// project, using each file's basename as the layer name. A failing
// record is reported and skipped; it never aborts the batch. Load
// returns the number of layers registered and the paths that failed.
func (l *Loader) Load(records []types.FileRecord) (int, []string) {
	loaded := 0
	var failed []string

	for _, rec := range records {
		layer, err := l.opener.Open(rec.Path, rec.Basename())
		if err != nil {
			log.LogWithFields(log.F("path", rec.Path), log.F("error", err)).
				Errorf("Layer %s failed to load", rec.Path)
			failed = append(failed, rec.Path)
			continue
		}
		l.project.AddLayer(layer)
		loaded++
	}

	return loaded, failed
}
