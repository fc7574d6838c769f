package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gadget/internal/config"
	"gadget/internal/host"
	"gadget/pkg/testutils"
	"gadget/pkg/types"
)

func newTestEngine() *Engine {
	cfg := config.New()
	return NewWithConfig(cfg)
}

func TestCollectMatchesAllowList(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"parcels.shp":            "x",
		"places.geojson":         "x",
		"survey.csv":             "x",
		"boundaries.kml":         "x",
		"deep/nested/trails.gpkg": "x",
		"readme.txt":             "x",
		"report.pdf":             "x",
	})

	entries, err := newTestEngine().Collect(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t,
		[]string{"parcels.shp", "places.geojson", "survey.csv", "boundaries.kml", "trails.gpkg"},
		names)
}

// The stock allow-list carries a bare "dbf" suffix without a leading
// dot, so it matches any name that merely ends in "dbf".
func TestCollectLooseDbfSuffix(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"report.dbf":  "x",
		"mydbf":       "x",
		"notadbf.txt": "x",
	})

	entries, err := newTestEngine().Collect(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t, []string{"report.dbf", "mydbf"}, names)
}

func TestCollectSuffixMatchIsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"upper.SHP": "x",
		"lower.shp": "x",
	})

	entries, err := newTestEngine().Collect(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "lower.shp", entries[0].Name)
}

func TestCollectMissingRoot(t *testing.T) {
	_, err := newTestEngine().Collect(filepath.Join(t.TempDir(), "ghost"))
	assert.Error(t, err)
}

func TestRunBuildsRecordsInOrder(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"a.shp":     "x",
		"b.geojson": "x",
		"sub/c.csv": "x",
	})

	engine := newTestEngine()
	entries, err := engine.Collect(dir)
	require.NoError(t, err)

	records := engine.Run(entries, nil)
	require.Len(t, records, len(entries))

	for i, rec := range records {
		assert.Equal(t, entries[i].Name, rec.Name)
		assert.Equal(t, entries[i].Dir, rec.Dir)
		assert.Equal(t, filepath.Join(entries[i].Dir, entries[i].Name), rec.Path)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, rec.ModDate)
		assert.Equal(t, filepath.Ext(rec.Name), rec.Extension)
	}
}

func TestRunProgressReports(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{}
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		files[n+".shp"] = "x"
	}
	testutils.CreateTestFilesWithContent(t, dir, files)

	engine := newTestEngine()
	entries, err := engine.Collect(dir)
	require.NoError(t, err)
	require.Len(t, entries, 10)

	var reports []types.Progress
	engine.Run(entries, func(p types.Progress) {
		reports = append(reports, p)
	})

	require.Len(t, reports, 10)
	assert.Equal(t, 1, reports[0].Index)
	assert.Equal(t, 10, reports[0].Total)
	assert.Equal(t, types.TierLow, reports[3].Tier)  // 40%
	assert.Equal(t, types.TierMid, reports[4].Tier)  // exactly 50%
	assert.Equal(t, types.TierMid, reports[6].Tier)  // 70%
	assert.Equal(t, types.TierHigh, reports[7].Tier) // exactly 80%
	assert.Equal(t, types.TierHigh, reports[9].Tier) // 100%
	assert.InDelta(t, 100.0, reports[9].Percent, 0.001)
}

func TestGeometryProbeDisabled(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteShapefileHeader(t, filepath.Join(dir, "parcels.shp"), 5)
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"places.geojson": "x",
	})

	cfg := config.New()
	cfg.Scan.GeometryTypes = false
	engine := NewWithConfig(cfg)

	records, err := engine.Scan(dir, nil)
	require.NoError(t, err)
	for _, rec := range records {
		assert.Empty(t, rec.GeometryType, "no record may carry a label with probing disabled: %s", rec.Name)
	}
}

func TestGeometryProbeShpOnly(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteShapefileHeader(t, filepath.Join(dir, "parcels.shp"), 5)
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"places.geojson": "x",
		"broken.shp":     "not a shapefile", // probe fails silently
	})

	cfg := config.New()
	cfg.Scan.GeometryTypes = true
	engine := NewWithConfig(cfg)

	records, err := engine.Scan(dir, nil)
	require.NoError(t, err)

	byName := map[string]types.FileRecord{}
	for _, rec := range records {
		byName[rec.Name] = rec
	}
	assert.Equal(t, "Polygon", byName["parcels.shp"].GeometryType)
	assert.Empty(t, byName["places.geojson"].GeometryType)
	assert.Empty(t, byName["broken.shp"].GeometryType)
}

func TestScanRowCountMatchesAllowList(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"one.shp":         "x",
		"two.xlsx":        "x",
		"three.xls":       "x",
		"four.gpkg":       "x",
		"sub/five.kml":    "x",
		"sub/six.geojson": "x",
		"ignored.tif":     "x",
		"ignored.prj":     "x",
	})

	records, err := newTestEngine().Scan(dir, nil)
	require.NoError(t, err)
	assert.Len(t, records, 6)
}

func TestSetOpener(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"a.shp": "x"})

	cfg := config.New()
	cfg.Scan.GeometryTypes = true
	engine := NewWithConfig(cfg)
	engine.SetOpener(stubOpener{label: "MultiLineString"})

	records, err := engine.Scan(dir, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "MultiLineString", records[0].GeometryType)
}

type stubOpener struct{ label string }

func (s stubOpener) Open(path, name string) (*host.Layer, error) {
	return &host.Layer{Name: name, Path: path, GeometryType: s.label}, nil
}
