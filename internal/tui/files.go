package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"caddraw/internal/document"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := document.Extensions[ext]; ok {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 && m.doc == nil {
		m.status = "no drawings in current directory"
	}
}

// loadPath replaces the current document with the one stored at p.
func (m *Model) loadPath(p string) {
	d, err := document.Load(p)
	if err != nil {
		log.Printf("load %s: %v", p, err)
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setDocument(d)
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  shapes=%d layers=%d", d.Len(), len(d.Layers()))
}

// savePath writes the current document back to the file it came from.
func (m *Model) savePath() {
	if m.doc == nil {
		m.status = "nothing to save"
		return
	}
	if m.selPath == "" {
		m.status = "no file to save to (document was not loaded from disk)"
		return
	}
	if err := document.Save(m.selPath, m.doc); err != nil {
		log.Printf("save %s: %v", m.selPath, err)
		m.status = "save error: " + err.Error()
		return
	}
	m.dirty = false
	m.status = "saved: " + filepath.Base(m.selPath)
}
