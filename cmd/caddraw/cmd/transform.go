package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"caddraw/internal/document"
	"caddraw/internal/geom"
)

var (
	transformExpr string
	transformID   string
	transformOut  string
)

var transformCmd = &cobra.Command{
	Use:   "transform <file>",
	Short: "Apply a transform to shapes and save",
	Long: `Parse an SVG-style transform list and compose it onto one shape (--id) or
every unlocked shape. The result overwrites the input unless -o is given.

Operations: translate(tx [ty]) scale(s [sy]) rotate(deg [cx cy])
skewX(deg) skewY(deg) matrix(a b c d e f). Listed operations apply right
to left, as in SVG.

Examples:
  caddraw transform house.json --expr "rotate(90 500 400)"
  caddraw transform house.json --expr "translate(10,0) scale(2)" -o big.yaml
  caddraw transform house.json --id 3f2c... --expr "skewX(15)"`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().StringVarP(&transformExpr, "expr", "e", "", "transform expression")
	transformCmd.Flags().StringVar(&transformID, "id", "", "only transform the shape with this id")
	transformCmd.Flags().StringVarP(&transformOut, "output", "o", "", "output file (default: overwrite input)")
	transformCmd.MarkFlagRequired("expr")
}

func runTransform(cmd *cobra.Command, args []string) error {
	t, err := geom.ParseTransform(transformExpr)
	if err != nil {
		return err
	}
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	var n int
	if transformID != "" {
		if err := doc.TransformShape(transformID, t); err != nil {
			return err
		}
		n = 1
	} else {
		n = doc.TransformAll(t)
	}
	if n == 0 {
		return errors.New("no unlocked shapes to transform")
	}
	log.Printf("applied %v", t)

	path := transformOut
	if path == "" {
		path = args[0]
	}
	if err := document.Save(path, doc); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Transformed %d of %d shapes -> %s\n", n, doc.Len(), path)
	return nil
}
