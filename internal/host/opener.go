// Package host is the boundary to the hosting GIS application. The
// rest of the program only talks to the Opener interface and the
// Project registry, so the catalog logic never depends on a concrete
// data-access backend.
package host

// Layer is a handle to a vector layer opened from a file.
type Layer struct {
	Name         string
	Path         string
	GeometryType string
}

// Opener is the host vector-data-access capability: it opens a file by
// path and yields a usable layer handle, or an error when the source is
// missing or not a readable vector dataset.
type Opener interface {
	Open(path, name string) (*Layer, error)
}
