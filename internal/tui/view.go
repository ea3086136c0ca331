package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, _, mapWidth, mapHeight := m.layout()
	contentWidth := max(10, m.width)

	// Header
	name := "untitled"
	if m.selPath != "" {
		name = filepath.Base(m.selPath)
	}
	if m.dirty {
		name += " *"
	}
	header := titleStyle.Render(" caddraw ─ terminal drawing viewer ") + dimStyle.Render(" "+name+"  ") + m.layerLegend()
	header = lipgloss.NewStyle().Width(contentWidth).MaxWidth(contentWidth).MaxHeight(1).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, mapHeight-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 8))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderCanvas(mapWidth, mapHeight))
	}

	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(20, min(56, contentWidth/2))
		popup = popupStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	if strings.Contains(m.status, "error") {
		status = warnStyle.Render(" " + m.status + " ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.2f y=%.2f  ", m.hoverPt.X, m.hoverPt.Y))
	}
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"Tab files",
		"t transform",
		"w save",
		"1-9 layer",
		"l all",
		"f fill",
		"v hide/show",
		"a shapes",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}

// layerLegend renders each layer with its toggle key, dimmed when hidden.
func (m Model) layerLegend() string {
	if m.doc == nil {
		return ""
	}
	var parts []string
	for i, l := range m.doc.Layers() {
		if i >= 9 {
			break
		}
		label := fmt.Sprintf("%d:%s", i+1, l)
		if m.hidden[l] {
			parts = append(parts, dimStyle.Strikethrough(true).Render(label))
		} else {
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, " ")
}
