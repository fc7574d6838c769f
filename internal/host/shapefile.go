package host

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	serr "gadget/internal/errors"
)

// Shapefile main-file header layout: 100 bytes, file code 9994 as a
// big-endian int32 at offset 0, shape type as a little-endian int32 at
// offset 32.
const (
	shpHeaderSize      = 100
	shpFileCode        = 9994
	shpShapeTypeOffset = 32
)

// shapeTypeNames maps shapefile shape-type codes to the human-readable
// geometry labels shown in the catalog.
var shapeTypeNames = map[int32]string{
	0:  "NoGeometry",
	1:  "Point",
	3:  "LineString",
	5:  "Polygon",
	8:  "MultiPoint",
	11: "PointZ",
	13: "LineStringZ",
	15: "PolygonZ",
	18: "MultiPointZ",
	21: "PointM",
	23: "LineStringM",
	25: "PolygonM",
	28: "MultiPointM",
	31: "MultiPatch",
}

// VectorOpener opens the allow-listed vector formats. Shapefiles get a
// real header probe and a geometry-type label; every other format is
// opened as a generic layer with an empty label, since only the name
// and readability matter to the catalog.
type VectorOpener struct{}

// NewVectorOpener creates the default opener.
func NewVectorOpener() *VectorOpener {
	return &VectorOpener{}
}

// Open opens the file at path as a vector layer named name.
func (o *VectorOpener) Open(path, name string) (*Layer, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("failed to stat file", path, serr.FileNotFound, err)
		}
		return nil, serr.NewFileError("failed to stat file", path, serr.FileAccessDenied, err)
	}

	if name == "" {
		name = filepath.Base(path)
	}

	if strings.EqualFold(filepath.Ext(path), ".shp") {
		geometry, err := readShapeType(path)
		if err != nil {
			return nil, err
		}
		return &Layer{Name: name, Path: path, GeometryType: geometry}, nil
	}

	// Generic open: confirm the file is readable, nothing more.
	f, err := os.Open(path)
	if err != nil {
		return nil, serr.NewLayerError("failed to open layer", path, serr.LayerOpenFailed, err)
	}
	f.Close()

	return &Layer{Name: name, Path: path}, nil
}

// readShapeType decodes the geometry-type label from a shapefile
// header. Unknown but well-formed shape codes yield "Unknown" so a
// valid file is distinguishable from a failed open.
func readShapeType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", serr.NewLayerError("failed to open layer", path, serr.LayerOpenFailed, err)
	}
	defer f.Close()

	header := make([]byte, shpHeaderSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return "", serr.NewLayerError("truncated shapefile header", path, serr.LayerInvalid, err)
	}

	if code := int32(binary.BigEndian.Uint32(header[0:4])); code != shpFileCode {
		return "", serr.NewLayerError("not a shapefile", path, serr.LayerInvalid, nil)
	}

	shapeType := int32(binary.LittleEndian.Uint32(header[shpShapeTypeOffset : shpShapeTypeOffset+4]))
	if label, ok := shapeTypeNames[shapeType]; ok {
		return label, nil
	}
	return "Unknown", nil
}
