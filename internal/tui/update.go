package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"caddraw/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			_, _, _, h := m.layout()
			m.l.SetSize(sidebarWidth-2, h-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "enter":
				m.applyTransform(m.ta.Value())
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n, _ := strconv.Atoi(key)
			m.toggleLayer(n - 1)
		case "+", "=":
			if m.zoom < m.viewer.MaxZoom {
				m.zoom = min(m.zoom*m.viewer.ZoomStep, m.viewer.MaxZoom)
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= m.viewer.ZoomStep
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				_, _, _, h := m.layout()
				m.l.SetSize(sidebarWidth-2, h-2)
			}
		case "t":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "transform mode"
		case "v":
			m.toggleNearest()
		case "f":
			m.fill = !m.fill
			m.status = fmt.Sprintf("fill: %v", m.fill)
		case "w":
			m.savePath()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			if s, at, ok := m.inspectNearest(); ok {
				m.inspectPopup = describe(s, m.boundsMode)
				m.status = "inspect " + at.String()
			} else {
				m.status = "no shape nearby"
			}
		case "l":
			// toggle all layers
			all := len(m.hidden) == 0
			m.hidden = map[string]bool{}
			if all && m.doc != nil {
				for _, l := range m.doc.Layers() {
					m.hidden[l] = true
				}
			}
			m.status = fmt.Sprintf("all layers: %v", !all)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			if !m.showAttrs {
				m.offsetY++
			}
		case "down":
			if !m.showAttrs {
				m.offsetY--
			}
		case "left":
			m.offsetX += 2
		case "right":
			m.offsetX -= 2
		}
		if m.showAttrs {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	case tea.MouseMsg:
		ox, oy, w, h := m.layout()
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, h-2)
		}
		cx, cy := msg.X, msg.Y
		if cx >= ox && cx < ox+w && cy >= oy && cy < oy+h {
			m.hovering = true
			m.hoverCellX = cx - ox
			m.hoverCellY = cy - oy
			if p, ok := m.cellToPoint(m.hoverCellX, m.hoverCellY, w, h); ok {
				m.hoverPt = p
			} else {
				m.hovering = false
			}
			m.hoverMicX, m.hoverMicY = m.nearestVertex(m.hoverCellX, m.hoverCellY, w, h)
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyTransform parses expr and applies it to every unlocked shape.
func (m *Model) applyTransform(expr string) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		m.status = "transform: empty"
		return
	}
	if m.doc == nil {
		m.status = "transform: no drawing loaded"
		return
	}
	t, err := geom.ParseTransform(expr)
	if err != nil {
		m.status = err.Error()
		return
	}
	n := m.doc.TransformAll(t)
	log.Printf("applied %v to %d shapes", t, n)
	m.dirty = m.dirty || n > 0
	m.refreshExtent()
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
	m.inspectPopup = ""
	m.status = fmt.Sprintf("transformed %d of %d shapes", n, m.doc.Len())
	m.pasteMode = false
	m.ta.Blur()
}

// toggleLayer flips the visibility of the i-th layer in document order.
func (m *Model) toggleLayer(i int) {
	if m.doc == nil {
		return
	}
	layers := m.doc.Layers()
	if i < 0 || i >= len(layers) {
		m.status = fmt.Sprintf("no layer %d", i+1)
		return
	}
	name := layers[i]
	if m.hidden[name] {
		delete(m.hidden, name)
	} else {
		m.hidden[name] = true
	}
	m.status = fmt.Sprintf("layer %s: %v", name, !m.hidden[name])
}
