package tui

import "sort"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sortInts(xs []int) { sort.Ints(xs) }

// shortID trims uuids for table and popup display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
