package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chazu/whorl/pkg/render"
	"github.com/chazu/whorl/pkg/render/pointer"
	"github.com/chazu/whorl/pkg/render/svg"
	"github.com/chazu/whorl/pkg/wheel"
)

var (
	outPath  string
	diameter float64
)

// renderCmd exports the full wheel as a standalone SVG document.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the taxonomy as an SVG document",
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(taxonomyPath)
		if err != nil {
			return err
		}

		dir := wheel.DirectionLTR
		if rtl {
			dir = wheel.DirectionRTL
		}
		r := pointer.New(render.Options{
			Taxonomy: tree,
			Locale:   render.Locale{Direction: dir},
		})
		r.Resize(diameter, diameter)
		doc := svg.Bytes(r.Scene().(pointer.Scene))

		if outPath == "-" {
			_, err = os.Stdout.Write(doc)
			return err
		}
		if err := os.WriteFile(outPath, doc, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logger.Info("wheel rendered",
			zap.String("out", outPath),
			zap.Int("bytes", len(doc)))
		fmt.Printf("wrote %s (%d bytes)\n", outPath, len(doc))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "wheel.svg", "output file, or - for stdout")
	renderCmd.Flags().Float64Var(&diameter, "diameter", 640, "wheel diameter in pixels")
}
