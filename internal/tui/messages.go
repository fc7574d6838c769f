package tui

import "gadget/pkg/types"

// scanProgressMsg carries one progress report from the metadata pass.
type scanProgressMsg types.Progress

// scanResultMsg carries the finished catalog records, or the walk
// error.
type scanResultMsg struct {
	records []types.FileRecord
	err     error
}

// loadResultMsg carries the outcome of a load-selected batch.
type loadResultMsg struct {
	loaded int
	failed []string
}

// refreshMsg signals that the watched tree changed and the catalog
// should be rescanned.
type refreshMsg struct{}
