package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"caddraw/internal/export"
	"caddraw/internal/style"
)

var (
	pngOut        string
	pngScale      float64
	pngBackground string
)

var pngCmd = &cobra.Command{
	Use:   "png <file>",
	Short: "Rasterise a drawing to PNG",
	Long: `Render the drawing to a PNG image. The image is the canvas size times
--scale. --background takes any colour name or hex value, or "none" for a
transparent image.`,
	Args: cobra.ExactArgs(1),
	RunE: runPNG,
}

func init() {
	rootCmd.AddCommand(pngCmd)
	pngCmd.Flags().StringVarP(&pngOut, "output", "o", "", "output file")
	pngCmd.Flags().Float64Var(&pngScale, "scale", 1, "pixels per drawing unit")
	pngCmd.Flags().StringVar(&pngBackground, "background", "white", "background colour or none")
}

func runPNG(cmd *cobra.Command, args []string) error {
	if pngScale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", pngScale)
	}
	opts := export.PNGOptions{Scale: pngScale}
	if pngBackground != "none" {
		c, err := style.ParseColor(pngBackground)
		if err != nil {
			return fmt.Errorf("invalid background: %w", err)
		}
		opts.Background = c
	}
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	path := outputPath(args[0], pngOut, ".png")
	w, closeFn, err := create(cmd, path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.PNG(w, doc, opts); err != nil {
		closeFn()
		return fmt.Errorf("failed to render png: %w", err)
	}
	if err := closeFn(); err != nil {
		return err
	}
	log.Printf("wrote %s at scale %g", path, pngScale)
	return nil
}
