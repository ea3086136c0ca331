package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"caddraw/internal/export"
)

var (
	svgOut      string
	svgGroup    bool
	svgTitle    string
	svgDecimals int
)

var svgCmd = &cobra.Command{
	Use:   "svg <file>",
	Short: "Export a drawing to SVG",
	Long: `Export every visible shape to an SVG document. Output defaults to the
input name with an .svg extension; "-o -" writes to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runSVG,
}

func init() {
	rootCmd.AddCommand(svgCmd)
	svgCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file")
	svgCmd.Flags().BoolVar(&svgGroup, "group-layers", false, "wrap each layer in a <g> element")
	svgCmd.Flags().StringVar(&svgTitle, "title", "", "document <title>")
	svgCmd.Flags().IntVar(&svgDecimals, "decimals", -1, "decimal places for coordinates (default from config)")
}

func runSVG(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	opts := cfg.SVGOptions()
	if cmd.Flags().Changed("group-layers") {
		opts.GroupByLayer = svgGroup
	}
	if svgTitle != "" {
		opts.Title = svgTitle
	}
	if svgDecimals >= 0 {
		opts.Decimals = svgDecimals
	}

	path := outputPath(args[0], svgOut, ".svg")
	w, closeFn, err := create(cmd, path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.SVG(w, doc, opts); err != nil {
		closeFn()
		return fmt.Errorf("failed to export svg: %w", err)
	}
	if err := closeFn(); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
