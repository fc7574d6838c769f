// Package catalog owns the in-memory FileRecord collection built by a
// scan and every projection of it: the filtered view, the column sort,
// and the per-row selection state. The full collection is the single
// source of truth; views are always recomputed from it and never
// mutate it.
package catalog

import (
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"gadget/pkg/types"
)

// Column identifies a sortable table column.
type Column int

const (
	ColumnName Column = iota
	ColumnDate
	ColumnDir
	ColumnGeometry
	ColumnExtension
)

func (c Column) String() string {
	switch c {
	case ColumnName:
		return "name"
	case ColumnDate:
		return "date"
	case ColumnDir:
		return "directory"
	case ColumnGeometry:
		return "geometry"
	case ColumnExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Catalog holds the scanned records and the current view over them.
type Catalog struct {
	records   []types.FileRecord // source of truth, in scan order
	view      []types.FileRecord
	filter    string
	matcher   glob.Glob
	selection map[string]types.CheckState // keyed by absolute path
	sortCol   Column
	ascending bool
}

// New creates an empty catalog, sorted by date ascending as the table
// default.
func New() *Catalog {
	return &Catalog{
		selection: make(map[string]types.CheckState),
		sortCol:   ColumnDate,
		ascending: true,
	}
}

// Replace rebuilds the catalog from a fresh scan. Previous records and
// selection are discarded; the filter and sort settings survive.
func (c *Catalog) Replace(records []types.FileRecord) {
	c.records = make([]types.FileRecord, len(records))
	copy(c.records, records)
	c.selection = make(map[string]types.CheckState)
	c.recompute()
}

// Records returns the full collection in scan order.
func (c *Catalog) Records() []types.FileRecord {
	out := make([]types.FileRecord, len(c.records))
	copy(out, c.records)
	return out
}

// View returns the rows currently displayed: the filtered projection of
// the full collection, sorted by the active column.
func (c *Catalog) View() []types.FileRecord {
	out := make([]types.FileRecord, len(c.view))
	copy(out, c.view)
	return out
}

// Len returns the size of the full collection.
func (c *Catalog) Len() int {
	return len(c.records)
}

// ViewLen returns the number of displayed rows.
func (c *Catalog) ViewLen() int {
	return len(c.view)
}

// SetFilter installs a new filter pattern and recomputes the view. The
// pattern is matched case-insensitively against filenames; `*` matches
// any run of characters and everything else is literal, so a pattern
// without `*` is a plain substring match. An empty pattern shows all
// rows.
func (c *Catalog) SetFilter(pattern string) {
	c.filter = pattern
	c.matcher = compileFilter(pattern)
	c.recompute()
}

// Filter returns the current filter text.
func (c *Catalog) Filter() string {
	return c.filter
}

// SortBy sets the view ordering. Sorting is purely a view concern; the
// underlying collection keeps its scan order.
func (c *Catalog) SortBy(col Column, ascending bool) {
	c.sortCol = col
	c.ascending = ascending
	c.recompute()
}

// SortColumn returns the active sort column and direction.
func (c *Catalog) SortColumn() (Column, bool) {
	return c.sortCol, c.ascending
}

// Toggle flips a row between unchecked and checked. A partially
// checked row becomes checked.
func (c *Catalog) Toggle(path string) {
	if c.selection[path] == types.Checked {
		c.selection[path] = types.Unchecked
	} else {
		c.selection[path] = types.Checked
	}
}

// SetState sets the tri-state selection for a row.
func (c *Catalog) SetState(path string, state types.CheckState) {
	c.selection[path] = state
}

// State returns the tri-state selection for a row.
func (c *Catalog) State(path string) types.CheckState {
	return c.selection[path]
}

// Checked returns the displayed rows whose state is exactly Checked, in
// view order. Partially checked rows do not count.
func (c *Catalog) Checked() []types.FileRecord {
	var out []types.FileRecord
	for _, rec := range c.view {
		if c.selection[rec.Path] == types.Checked {
			out = append(out, rec)
		}
	}
	return out
}

// recompute rebuilds the view from the source collection: filter in
// scan order first, then a stable sort by the active column.
func (c *Catalog) recompute() {
	c.view = c.view[:0]
	for _, rec := range c.records {
		if c.matches(rec.Name) {
			c.view = append(c.view, rec)
		}
	}

	col := c.sortCol
	asc := c.ascending
	sort.SliceStable(c.view, func(i, j int) bool {
		a, b := sortKey(c.view[i], col), sortKey(c.view[j], col)
		if asc {
			return a < b
		}
		return a > b
	})
}

func (c *Catalog) matches(name string) bool {
	if c.filter == "" {
		return true
	}
	lowered := strings.ToLower(name)
	if c.matcher != nil {
		return c.matcher.Match(lowered)
	}
	// Fallback for patterns glob refuses to compile: substring match
	// with the wildcards stripped.
	return strings.Contains(lowered, strings.ReplaceAll(strings.ToLower(c.filter), "*", ""))
}

func sortKey(rec types.FileRecord, col Column) string {
	switch col {
	case ColumnName:
		return strings.ToLower(rec.Name)
	case ColumnDate:
		return rec.ModDate
	case ColumnDir:
		return strings.ToLower(rec.Dir)
	case ColumnGeometry:
		return rec.GeometryType
	case ColumnExtension:
		return rec.Extension
	default:
		return strings.ToLower(rec.Name)
	}
}

// compileFilter translates the search text into a glob: the text is
// lowercased, every literal chunk is quoted, and the whole pattern is
// wrapped in `*...*` so it matches anywhere in the filename.
func compileFilter(pattern string) glob.Glob {
	if pattern == "" {
		return nil
	}
	parts := strings.Split(strings.ToLower(pattern), "*")
	for i := range parts {
		parts[i] = glob.QuoteMeta(parts[i])
	}
	g, err := glob.Compile("*" + strings.Join(parts, "*") + "*")
	if err != nil {
		return nil
	}
	return g
}
