package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gadget/pkg/types"
)

func sampleRecords() []types.FileRecord {
	// All records share one date so the stable date sort preserves scan
	// order and view ordering is easy to assert.
	return []types.FileRecord{
		{Name: "parcels.shp", Path: "/gis/parcels.shp", ModDate: "2026-08-27", Dir: "/gis", Extension: ".shp"},
		{Name: "Roads.geojson", Path: "/gis/Roads.geojson", ModDate: "2026-08-27", Dir: "/gis", Extension: ".geojson"},
		{Name: "wells.csv", Path: "/gis/data/wells.csv", ModDate: "2026-08-27", Dir: "/gis/data", Extension: ".csv"},
		{Name: "parcels.shx", Path: "/gis/parcels.shx", ModDate: "2026-08-27", Dir: "/gis", Extension: ".shx"},
	}
}

func names(records []types.FileRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestReplaceAndView(t *testing.T) {
	c := New()
	c.Replace(sampleRecords())

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 4, c.ViewLen())
	assert.Equal(t,
		[]string{"parcels.shp", "Roads.geojson", "wells.csv", "parcels.shx"},
		names(c.View()))
}

func TestFilterWildcard(t *testing.T) {
	c := New()
	c.Replace(sampleRecords())

	c.SetFilter("*.shp")
	require.Equal(t, 1, c.ViewLen())
	assert.Equal(t, "parcels.shp", c.View()[0].Name)
	// parcels.shx must not slip through: the dot is literal.
	for _, rec := range c.View() {
		assert.NotEqual(t, "parcels.shx", rec.Name)
	}
}

func TestFilterSubstringCaseInsensitive(t *testing.T) {
	c := New()
	c.Replace(sampleRecords())

	c.SetFilter("roads")
	require.Equal(t, 1, c.ViewLen())
	assert.Equal(t, "Roads.geojson", c.View()[0].Name)

	c.SetFilter("PARCELS")
	assert.Equal(t, 2, c.ViewLen())
}

func TestFilterIsNonDestructive(t *testing.T) {
	c := New()
	c.Replace(sampleRecords())
	original := c.Records()

	for _, pattern := range []string{"*.shp", "zzz-no-match", "wells*", "*", ""} {
		c.SetFilter(pattern)
		assert.Equal(t, original, c.Records(), "filter %q must not touch the source collection", pattern)
	}

	// Clearing the filter restores the full view in the original order.
	c.SetFilter("*.shp")
	c.SetFilter("")
	assert.Equal(t, names(original), names(c.View()))
}

func TestFilterEmptyShowsAll(t *testing.T) {
	c := New()
	c.Replace(sampleRecords())
	c.SetFilter("")
	assert.Equal(t, c.Len(), c.ViewLen())
}

func TestSortByColumn(t *testing.T) {
	c := New()
	c.Replace([]types.FileRecord{
		{Name: "b.shp", Path: "/p/b.shp", ModDate: "2026-01-02", Extension: ".shp"},
		{Name: "a.csv", Path: "/p/a.csv", ModDate: "2026-01-03", Extension: ".csv"},
		{Name: "c.kml", Path: "/p/c.kml", ModDate: "2026-01-01", Extension: ".kml"},
	})

	// Default: date ascending.
	assert.Equal(t, []string{"c.kml", "b.shp", "a.csv"}, names(c.View()))

	c.SortBy(ColumnName, true)
	assert.Equal(t, []string{"a.csv", "b.shp", "c.kml"}, names(c.View()))

	c.SortBy(ColumnName, false)
	assert.Equal(t, []string{"c.kml", "b.shp", "a.csv"}, names(c.View()))

	c.SortBy(ColumnExtension, true)
	assert.Equal(t, []string{"a.csv", "c.kml", "b.shp"}, names(c.View()))

	// Sorting never reorders the source collection.
	assert.Equal(t, []string{"b.shp", "a.csv", "c.kml"}, names(c.Records()))
}

func TestSelectionTriState(t *testing.T) {
	c := New()
	c.Replace(sampleRecords())

	path := "/gis/parcels.shp"
	assert.Equal(t, types.Unchecked, c.State(path))

	c.Toggle(path)
	assert.Equal(t, types.Checked, c.State(path))

	c.Toggle(path)
	assert.Equal(t, types.Unchecked, c.State(path))

	// Only the fully checked state counts as selected for loading.
	c.SetState(path, types.PartiallyChecked)
	assert.Empty(t, c.Checked())

	c.SetState(path, types.Checked)
	checked := c.Checked()
	require.Len(t, checked, 1)
	assert.Equal(t, path, checked[0].Path)
}

func TestCheckedFollowsView(t *testing.T) {
	c := New()
	c.Replace(sampleRecords())

	c.SetState("/gis/parcels.shp", types.Checked)
	c.SetState("/gis/data/wells.csv", types.Checked)

	// With a filter applied, only checked rows still displayed are
	// candidates for loading.
	c.SetFilter("wells")
	checked := c.Checked()
	require.Len(t, checked, 1)
	assert.Equal(t, "wells.csv", checked[0].Name)

	c.SetFilter("")
	assert.Len(t, c.Checked(), 2)
}

func TestReplaceResetsSelection(t *testing.T) {
	c := New()
	c.Replace(sampleRecords())
	c.SetState("/gis/parcels.shp", types.Checked)

	c.Replace(sampleRecords())
	assert.Empty(t, c.Checked())
}

func TestColumnString(t *testing.T) {
	assert.Equal(t, "name", ColumnName.String())
	assert.Equal(t, "date", ColumnDate.String())
	assert.Equal(t, "directory", ColumnDir.String())
	assert.Equal(t, "geometry", ColumnGeometry.String())
	assert.Equal(t, "extension", ColumnExtension.String())
}
