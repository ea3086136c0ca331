package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"caddraw/internal/document"
	"caddraw/internal/tui"
)

var viewDemo bool

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the terminal viewer",
	Long: `Open a drawing in the terminal viewer. Without a file the viewer starts
on an empty canvas; press Tab to pick a drawing from the current directory.

Set CADDRAW_DEBUG=<file> to write logs there while the viewer runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewDemo, "demo", false, "open the sample house drawing")
}

func runView(cmd *cobra.Command, args []string) error {
	// stdout belongs to the UI
	if path := os.Getenv("CADDRAW_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "caddraw")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var m tui.Model
	switch {
	case viewDemo:
		doc, err := document.House()
		if err != nil {
			return err
		}
		m = tui.NewWithDocument(cfg, doc)
	case len(args) == 1:
		m = tui.NewWithPath(cfg, args[0])
	default:
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
