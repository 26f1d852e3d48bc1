// Command ccextract runs connected-component extraction and shape
// description over a directory of volumetric image slices, writing a
// CSV feature table. No labeled output images are written. Grounded on
// cmd/mrislicesto3d/main.go's flag-based CLI and staged progress
// narration.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adufour/connectedcomponents/internal/config"
	"github.com/adufour/connectedcomponents/internal/imageio"
	"github.com/adufour/connectedcomponents/pkg/component"
	"github.com/adufour/connectedcomponents/pkg/labeler"
	"github.com/adufour/connectedcomponents/pkg/pipeline"
)

func main() {
	inputDir := flag.String("input", "", "directory containing t<NNNN>/z<NNNN>.png slices")
	configPath := flag.String("config", "", "path to a YAML config file (defaults used if absent)")
	outputDir := flag.String("output", "output", "directory to write results to")
	mode := flag.String("mode", "", "override extraction mode: background_all, background_labeled, exact_value, roi")
	minSize := flag.Uint64("min-size", 0, "override minimum component size")
	maxSize := flag.Uint64("max-size", 0, "override maximum component size")
	flag.Parse()

	if *inputDir == "" {
		log.Fatalf("missing required -input flag")
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *mode != "" {
		cfg.Extraction.Mode = *mode
	}
	if *minSize != 0 {
		cfg.Extraction.MinSize = *minSize
	}
	if *maxSize != 0 {
		cfg.Extraction.MaxSize = *maxSize
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	fmt.Println("Step 1: loading slices")
	img, err := imageio.LoadSeries(*inputDir)
	if err != nil {
		log.Fatalf("failed to load slices: %v", err)
	}
	fmt.Printf("  loaded %d frame(s)\n", img.T())

	opts, err := toOptions(cfg.Extraction)
	if err != nil {
		log.Fatalf("invalid extraction config: %v", err)
	}

	ctx := context.Background()
	if cfg.Processing.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Processing.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	fmt.Println("Step 2: extracting components")
	results, err := pipeline.Run(ctx, img, pipeline.Params{
		Options:    opts,
		Comparator: comparatorFor(cfg.Output.SortByDepth),
	})
	if err != nil {
		log.Fatalf("failed to run pipeline: %v", err)
	}

	fmt.Println("Step 3: writing output")
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	if cfg.Output.WriteCSV {
		if err := writeCSV(filepath.Join(cfg.Output.Dir, "features.csv"), results); err != nil {
			log.Fatalf("failed to write CSV: %v", err)
		}
	}

	total := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("  frame %d: %v\n", r.T, r.Err)
			continue
		}
		total += len(r.Components)
	}
	fmt.Printf("done: %d component(s) extracted across %d frame(s)\n", total, img.T())
}

func toOptions(ec config.ExtractionConfig) (labeler.Options, error) {
	var mode labeler.ExtractionMode
	switch ec.Mode {
	case "", "background_all":
		mode = labeler.BackgroundAll
	case "background_labeled":
		mode = labeler.BackgroundLabeled
	case "exact_value":
		mode = labeler.ExactValue
	case "roi":
		mode = labeler.RegionOfInterest
	default:
		return labeler.Options{}, fmt.Errorf("unknown extraction mode %q", ec.Mode)
	}
	return labeler.Options{
		Mode:    mode,
		Value:   ec.Value,
		MinSize: ec.MinSize,
		MaxSize: ec.MaxSize,
		NoEdgeX: ec.NoEdgeX,
		NoEdgeY: ec.NoEdgeY,
		NoEdgeZ: ec.NoEdgeZ,
	}, nil
}

func comparatorFor(sortBy string) component.Comparator {
	switch sortBy {
	case "asc":
		return component.ByDepthAsc
	case "desc":
		return component.ByDepthDesc
	default:
		return nil
	}
}

func writeCSV(path string, results []pipeline.FrameResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"t", "index", "x", "y", "z",
		"perimeter", "area", "sphericity",
		"major_axis", "minor_axis", "minor_axis_z",
		"eccentricity", "hull_fill_ratio",
		"convex_perimeter", "convex_volume",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		for _, row := range r.Rows {
			record := []string{
				strconv.Itoa(row.T),
				strconv.Itoa(row.Index),
				formatFloat(row.MassCenter.X),
				formatFloat(row.MassCenter.Y),
				formatFloat(row.MassCenter.Z),
				formatFloat(row.Perimeter),
				formatFloat(row.Area),
				formatFloat(row.Sphericity),
				formatFloat(row.MajorAxis),
				formatFloat(row.MinorAxis),
				formatFloat(row.MinorAxisZ),
				formatFloat(row.Eccentricity),
				formatFloat(row.HullFillRatio),
				formatFloat(row.ConvexPerimeter),
				formatFloat(row.ConvexVolume),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
