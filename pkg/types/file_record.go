package types

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// FileRecord is an immutable metadata snapshot of one cataloged file.
// Records are built once during a scan and never updated afterwards; a
// new scan replaces the whole collection.
type FileRecord struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	ModDate      string `json:"mod_date"` // calendar date, YYYY-MM-DD
	Dir          string `json:"dir"`
	GeometryType string `json:"geometry_type,omitempty"`
	Extension    string `json:"ext"`
	Size         int64  `json:"size"`
}

// Basename returns the file name without its directory, which is also
// the display label used when the file is loaded as a layer.
func (r FileRecord) Basename() string {
	return filepath.Base(r.Path)
}

// ToJSON converts the record to a JSON string
func (r FileRecord) ToJSON() string {
	jsonBytes, _ := json.Marshal(r)
	return string(jsonBytes)
}

// String returns a human-readable representation
func (r FileRecord) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File: %s\n", r.Path))
	sb.WriteString(fmt.Sprintf("Modified: %s\n", r.ModDate))
	sb.WriteString(fmt.Sprintf("Extension: %s\n", r.Extension))
	if r.GeometryType != "" {
		sb.WriteString(fmt.Sprintf("Geometry: %s\n", r.GeometryType))
	}
	return sb.String()
}
