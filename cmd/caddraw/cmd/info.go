package cmd

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"caddraw/internal/shape"
)

var infoJSON bool

// DocumentInfo is the summary printed by info.
type DocumentInfo struct {
	Canvas  CanvasInfo     `json:"canvas"`
	Shapes  int            `json:"shapes"`
	Layers  []LayerInfo    `json:"layers"`
	Kinds   map[string]int `json:"kinds"`
	Bounds  *[4]float64    `json:"bounds"`
	Circles string         `json:"circle_bounds"`
}

type CanvasInfo struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Units  string  `json:"units"`
}

type LayerInfo struct {
	Name   string `json:"name"`
	Shapes int    `json:"shapes"`
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Summarise a drawing",
	Long: `Print the canvas, layers, shape counts per kind and the bounding box of
all visible shapes.

Examples:
  caddraw info house.json
  caddraw info --json house.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	mode := cfg.BoundsMode()

	info := DocumentInfo{
		Canvas:  CanvasInfo{doc.CanvasWidth, doc.CanvasHeight, string(doc.Units)},
		Shapes:  doc.Len(),
		Kinds:   map[string]int{},
		Circles: mode.String(),
	}
	for _, l := range doc.Layers() {
		info.Layers = append(info.Layers, LayerInfo{l, len(doc.ShapesOnLayer(l))})
	}
	counts := doc.CountByKind()
	for k, n := range counts {
		info.Kinds[k.String()] = n
	}
	if b, ok := doc.BoundsWith(mode); ok {
		info.Bounds = &[4]float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y}
	}

	out := cmd.OutOrStdout()
	if infoJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("failed to encode info: %w", err)
		}
		return nil
	}

	fmt.Fprintf(out, "Canvas: %g x %g %s\n", info.Canvas.Width, info.Canvas.Height, info.Canvas.Units)
	fmt.Fprintf(out, "Shapes: %d\n", info.Shapes)
	kinds := make([]shape.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Fprintf(out, "  %-10s %d\n", k, counts[k])
	}
	fmt.Fprintf(out, "Layers: %d\n", len(info.Layers))
	for _, l := range info.Layers {
		fmt.Fprintf(out, "  %-10s %d\n", l.Name, l.Shapes)
	}
	if info.Bounds != nil {
		b := info.Bounds
		fmt.Fprintf(out, "Bounds (%s): (%g, %g) - (%g, %g)\n", mode, b[0], b[1], b[2], b[3])
	} else {
		fmt.Fprintln(out, "Bounds: none (no visible shapes)")
	}
	return nil
}
