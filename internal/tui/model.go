package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"caddraw/internal/config"
	"caddraw/internal/document"
	"caddraw/internal/geom"
	"caddraw/internal/shape"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	doc        *document.Document
	extent     geom.Bounds
	dirty      bool
	viewer     config.Viewer
	boundsMode shape.BoundsMode
	fill       bool

	// transform entry
	pasteMode bool
	ta        textarea.Model

	// layers switched off by the user
	hidden map[string]bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverMicX  int
	hoverMicY  int
	hoverPt    geom.Point

	// shape table
	showAttrs bool
	tbl       table.Model
}

func New(cfg config.Config) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "caddraw ready",
		viewer:      cfg.Viewer,
		boundsMode:  cfg.BoundsMode(),
		fill:        cfg.Viewer.FillShapes,
		hidden:      map[string]bool{},
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Drawings"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// transform entry setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Transform, e.g. rotate(45 100 100) translate(10,0). Enter applies to unlocked shapes; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(4)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	if doc, err := cfg.NewDocument(); err == nil {
		m.setDocument(doc)
	}
	return m
}

// NewWithPath preloads a drawing at launch.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

// NewWithDocument shows an in-memory document, e.g. the built-in demo.
func NewWithDocument(cfg config.Config, doc *document.Document) Model {
	m := New(cfg)
	m.setDocument(doc)
	m.status = "showing in-memory drawing"
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setDocument swaps in d and resets the viewport onto it.
func (m *Model) setDocument(d *document.Document) {
	m.doc = d
	m.dirty = false
	m.hidden = map[string]bool{}
	m.inspectPopup = ""
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.refreshExtent()
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// refreshExtent fits the view to the canvas plus anything drawn outside it.
func (m *Model) refreshExtent() {
	if m.doc == nil {
		m.extent = geom.Bounds{}
		return
	}
	m.extent = m.doc.Canvas()
	if b, ok := m.doc.BoundsWith(m.boundsMode); ok {
		m.extent = m.extent.Union(b)
	}
}

// layout returns the map origin and size in cells; it must match View.
func (m Model) layout() (originX, originY, w, h int) {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	sb := 0
	if m.showSidebar {
		sb = sidebarWidth + 1
	}
	w = max(10, max(10, m.width)-sb)
	return sb, headerHeight, w, contentHeight
}

func (m Model) layerVisible(layer string) bool { return !m.hidden[layer] }
