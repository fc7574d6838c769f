package host

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gadget/pkg/testutils"
	"gadget/pkg/types"
)

func TestLoadBatchContinuesPastFailure(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteShapefileHeader(t, filepath.Join(dir, "first.shp"), 1)
	testutils.WriteShapefileHeader(t, filepath.Join(dir, "third.shp"), 5)

	records := []types.FileRecord{
		{Name: "first.shp", Path: filepath.Join(dir, "first.shp")},
		{Name: "second.shp", Path: filepath.Join(dir, "second.shp")}, // does not exist
		{Name: "third.shp", Path: filepath.Join(dir, "third.shp")},
	}

	project := NewProject()
	loader := NewLoader(NewVectorOpener(), project)

	loaded, failed := loader.Load(records)

	assert.Equal(t, 2, loaded)
	require.Len(t, failed, 1)
	assert.Equal(t, filepath.Join(dir, "second.shp"), failed[0])

	layers := project.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, "first.shp", layers[0].Name)
	assert.Equal(t, "third.shp", layers[1].Name)
	assert.Equal(t, "Point", layers[0].GeometryType)
	assert.Equal(t, "Polygon", layers[1].GeometryType)
}

func TestLoadUsesBasenameAsLayerName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "parcels.shp")
	testutils.WriteShapefileHeader(t, path, 5)

	project := NewProject()
	loader := NewLoader(NewVectorOpener(), project)

	loaded, failed := loader.Load([]types.FileRecord{{Name: "parcels.shp", Path: path}})
	require.Equal(t, 1, loaded)
	require.Empty(t, failed)
	assert.Equal(t, "parcels.shp", project.Layers()[0].Name)
}

func TestLoadEmptyBatch(t *testing.T) {
	project := NewProject()
	loader := NewLoader(NewVectorOpener(), project)
	loaded, failed := loader.Load(nil)
	assert.Zero(t, loaded)
	assert.Empty(t, failed)
	assert.Zero(t, project.Count())
}
