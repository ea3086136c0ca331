package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"caddraw/internal/shape"
)

var circleBounds string

var boundsCmd = &cobra.Command{
	Use:   "bounds <file>",
	Short: "Print the bounding box of every shape",
	Long: `Print the axis-aligned bounding box of every shape after its transform.

Circle boxes default to the exact extent of the transformed ellipse; pass
--circle-bounds cardinal for the box through the four transformed cardinal
points.`,
	Args: cobra.ExactArgs(1),
	RunE: runBounds,
}

func init() {
	rootCmd.AddCommand(boundsCmd)
	boundsCmd.Flags().StringVar(&circleBounds, "circle-bounds", "", "exact or cardinal (default from config)")
}

func runBounds(cmd *cobra.Command, args []string) error {
	mode := cfg.BoundsMode()
	if circleBounds != "" {
		m, err := shape.ParseBoundsMode(circleBounds)
		if err != nil {
			return err
		}
		mode = m
	}
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TYPE", "LAYER", "MIN", "MAX", "VISIBLE")
	for _, s := range doc.Shapes() {
		b := s.BoundsWith(mode)
		t.Row(s.ID(), s.Kind().String(), s.LayerID(), b.Min.String(), b.Max.String(), fmt.Sprint(s.Visible()))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
