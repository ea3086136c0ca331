package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"caddraw/internal/config"
	"caddraw/internal/document"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// cfg is resolved before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "caddraw",
	Short: "2D drawing documents: inspect, transform, export and view",
	Long: `caddraw works with 2D drawing documents made of rectangles and circles
on named layers, stored as JSON or YAML.

Examples:
  caddraw demo -o house.json                       # Write the sample drawing
  caddraw info house.json                          # Canvas, layers and counts
  caddraw transform house.json --expr "rotate(90)" # Rotate every unlocked shape
  caddraw svg house.json -o house.svg              # Export to SVG
  caddraw view house.json                          # Open the terminal viewer`,
	Version:           "0.3.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: user config dir/caddraw/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	log.SetFlags(0)
	log.SetPrefix("caddraw: ")
	if verbose {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}

	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("config: canvas %gx%g %s, circle bounds %s", cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Units, cfg.Bounds.Circle)
	return nil
}

func loadDocument(path string) (*document.Document, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	log.Printf("loaded %s: %d shapes on %d layers", path, doc.Len(), len(doc.Layers()))
	return doc, nil
}

// outputPath derives an output file from the input when none was given.
func outputPath(in, out, ext string) string {
	if out != "" {
		return out
	}
	return strings.TrimSuffix(in, filepath.Ext(in)) + ext
}

// create opens path for writing; "-" is stdout.
func create(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
