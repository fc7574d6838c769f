// Package tui is the terminal front end: a sortable, filterable table
// over the catalog with per-row checkboxes, a live progress bar during
// scans, and a load-selected action.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"gadget/internal/catalog"
	"gadget/internal/config"
	"gadget/internal/host"
	"gadget/internal/log"
	"gadget/internal/scan"
	"gadget/internal/watch"
	"gadget/pkg/types"
)

const checkColumnWidth = 3

// Model is the bubbletea model for the catalog browser.
type Model struct {
	cfg     *config.Config
	engine  *scan.Engine
	catalog *catalog.Catalog
	loader  *host.Loader
	watcher *watch.Watcher

	table       table.Model
	filterInput textinput.Model
	bar         progress.Model

	root      string
	filtering bool
	scanning  bool
	prog      types.Progress
	status    string
	err       error

	width  int
	height int

	scanCh chan tea.Msg

	// lastSort tracks the previously chosen column so choosing it again
	// flips the direction.
	lastSort catalog.Column
	lastAsc  bool
}

// New creates the browser rooted at root.
func New(cfg *config.Config, root string) *Model {
	engine := scan.NewWithConfig(cfg)
	opener := host.NewVectorOpener()
	engine.SetOpener(opener)

	ti := textinput.New()
	ti.Placeholder = "filter files (use * as wildcard)"
	ti.CharLimit = 120

	tbl := table.New(
		table.WithColumns(tableColumns(80)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	m := &Model{
		cfg:      cfg,
		engine:   engine,
		catalog:  catalog.New(),
		loader:   host.NewLoader(opener, host.NewProject()),
		table:    tbl,
		filterInput: ti,
		bar:      progress.New(progress.WithSolidFill(cfg.Theme.ProgressLow)),
		root:     root,
		lastSort: catalog.ColumnDate,
		lastAsc:  true,
	}

	if cfg.Watch.Enabled {
		if w, err := watch.New(time.Duration(cfg.Watch.Debounce) * time.Millisecond); err == nil {
			m.watcher = w
		} else {
			log.Warnf("watcher unavailable: %v", err)
		}
	}

	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.beginScan()}
	if m.watcher != nil {
		if err := m.watcher.Watch(m.root); err == nil {
			m.watcher.Start()
			cmds = append(cmds, m.waitRefresh())
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(tableColumns(msg.Width))
		m.table.SetWidth(msg.Width)
		if msg.Height > 10 {
			m.table.SetHeight(msg.Height - 7)
		}
		m.bar.Width = msg.Width - 4
		return m, nil

	case scanProgressMsg:
		p := types.Progress(msg)
		if p.Tier != m.prog.Tier || m.prog.Total == 0 {
			m.bar = progress.New(progress.WithSolidFill(tierColor(m.cfg, p.Tier)))
			if m.width > 4 {
				m.bar.Width = m.width - 4
			}
		}
		m.prog = p
		return m, m.waitScan()

	case scanResultMsg:
		m.scanning = false
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.catalog.Replace(msg.records)
		m.syncRows()
		m.status = fmt.Sprintf("%d files cataloged under %s", m.catalog.Len(), m.root)
		return m, nil

	case loadResultMsg:
		if len(msg.failed) > 0 {
			m.status = fmt.Sprintf("loaded %d layers, %d failed (see log)", msg.loaded, len(msg.failed))
		} else {
			m.status = fmt.Sprintf("loaded %d layers", msg.loaded)
		}
		return m, nil

	case refreshMsg:
		cmds := []tea.Cmd{m.waitRefresh()}
		if !m.scanning {
			cmds = append(cmds, m.beginScan())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.catalog.SetFilter("")
			m.syncRows()
			return m, nil
		case "enter":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.catalog.SetFilter(m.filterInput.Value())
			m.syncRows()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return m, tea.Quit

	case "/":
		m.filtering = true
		return m, m.filterInput.Focus()

	case " ":
		m.toggleCurrent()
		return m, nil

	case "enter", "L":
		checked := m.catalog.Checked()
		if len(checked) == 0 {
			m.status = "no rows checked"
			return m, nil
		}
		m.status = fmt.Sprintf("loading %d layers...", len(checked))
		return m, m.loadChecked(checked)

	case "o":
		m.cfg.Scan.GeometryTypes = !m.cfg.Scan.GeometryTypes
		if m.cfg.Scan.GeometryTypes {
			m.status = "geometry probe on, rescan to populate"
		} else {
			m.status = "geometry probe off, rescan to clear"
		}
		return m, nil

	case "r":
		if m.scanning {
			return m, nil
		}
		return m, m.beginScan()

	case "1", "2", "3", "4", "5":
		m.sortByKey(msg.String())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	s := titleStyle.Render("Gadget — vector file catalog") + "\n"

	s += filterLabelStyle.Render("Filter: ") + m.filterInput.View() + "\n"
	s += m.table.View() + "\n"

	if m.scanning && m.prog.Total > 0 {
		s += m.bar.ViewAs(m.prog.Percent/100) + "\n"
		s += tierStyle(m.cfg, m.prog.Tier).Render(m.prog.String()) + "\n"
	} else if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("scan failed: %v", m.err)) + "\n"
	} else {
		s += statusStyle.Render(m.statusLine()) + "\n"
	}

	s += helpStyle.Render("space: check  enter/L: load  /: filter  o: geometry  r: rescan  1-5: sort  q: quit")
	return s
}

func (m *Model) statusLine() string {
	line := m.status
	if rec, ok := m.currentRecord(); ok {
		line += fmt.Sprintf("  |  %s (%s)", rec.Name, humanize.Bytes(uint64(rec.Size)))
	}
	return line
}

// beginScan kicks off the two-pass scan in the background and starts
// draining its messages.
func (m *Model) beginScan() tea.Cmd {
	m.scanning = true
	m.prog = types.Progress{}

	ch := make(chan tea.Msg, 32)
	m.scanCh = ch
	engine := m.engine
	root := m.root
	go func() {
		records, err := engine.Scan(root, func(p types.Progress) {
			ch <- scanProgressMsg(p)
		})
		ch <- scanResultMsg{records: records, err: err}
	}()
	return m.waitScan()
}

func (m *Model) waitScan() tea.Cmd {
	ch := m.scanCh
	return func() tea.Msg {
		return <-ch
	}
}

func (m *Model) waitRefresh() tea.Cmd {
	w := m.watcher
	return func() tea.Msg {
		<-w.Refresh()
		return refreshMsg{}
	}
}

func (m *Model) loadChecked(checked []types.FileRecord) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		loaded, failed := loader.Load(checked)
		return loadResultMsg{loaded: loaded, failed: failed}
	}
}

// Project returns the registry that load-selected fills.
func (m *Model) Project() *host.Project {
	return m.loader.Project()
}

// Catalog exposes the underlying catalog, mainly for tests.
func (m *Model) Catalog() *catalog.Catalog {
	return m.catalog
}

func (m *Model) toggleCurrent() {
	if rec, ok := m.currentRecord(); ok {
		m.catalog.Toggle(rec.Path)
		m.syncRows()
	}
}

func (m *Model) currentRecord() (types.FileRecord, bool) {
	view := m.catalog.View()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(view) {
		return types.FileRecord{}, false
	}
	return view[idx], true
}

func (m *Model) sortByKey(key string) {
	var col catalog.Column
	switch key {
	case "1":
		col = catalog.ColumnName
	case "2":
		col = catalog.ColumnDate
	case "3":
		col = catalog.ColumnDir
	case "4":
		col = catalog.ColumnGeometry
	case "5":
		col = catalog.ColumnExtension
	}

	asc := true
	if col == m.lastSort {
		asc = !m.lastAsc
	}
	m.lastSort = col
	m.lastAsc = asc
	m.catalog.SortBy(col, asc)
	m.syncRows()
}

// syncRows rebuilds the table rows from the catalog view.
func (m *Model) syncRows() {
	view := m.catalog.View()
	rows := make([]table.Row, len(view))
	for i, rec := range view {
		check := "[ ]"
		switch m.catalog.State(rec.Path) {
		case types.Checked:
			check = "[x]"
		case types.PartiallyChecked:
			check = "[-]"
		}
		rows[i] = table.Row{check, rec.Name, rec.ModDate, rec.Dir, rec.GeometryType, rec.Extension}
	}
	m.table.SetRows(rows)
}

func tableColumns(width int) []table.Column {
	// Fixed-width columns for check, date and extension; the rest of
	// the line is split between name and directory.
	rest := width - checkColumnWidth - 12 - 10 - 14 - 6
	if rest < 20 {
		rest = 20
	}
	nameWidth := rest * 2 / 5
	dirWidth := rest - nameWidth

	return []table.Column{
		{Title: " ", Width: checkColumnWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Date", Width: 12},
		{Title: "Directory", Width: dirWidth},
		{Title: "Geometry", Width: 14},
		{Title: "Ext", Width: 10},
	}
}

// Run starts the interactive browser.
func Run(cfg *config.Config, root string) error {
	p := tea.NewProgram(New(cfg, root), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
