// Command nestgeom is a demonstration/debugging shell over the
// geomcore packages: it reads an SVG file, builds a ModelsToPlace, and
// prints a summary or (with -nfp) the no-fit-polygon of the first two
// parts it finds. It is not a placement search.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/nestcore/geomcore/nfp"
	"github.com/nestcore/geomcore/shape"
	"github.com/nestcore/geomcore/svgconv"
	"github.com/nestcore/geomcore/vector"
)

func main() {
	inPath := flag.String("in", "", "input SVG file")
	computeNFP := flag.Bool("nfp", false, "compute and print the exterior NFP of the first two parts")
	interior := flag.Bool("interior", false, "compute the NFP in interior mode instead of exterior")
	tol := flag.Float64("tol", 1e-6, "geometric tolerance")
	scale := flag.Float64("scale", svgconv.DefaultConfig().Scale, "SVG unit scale factor")

	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "error: -in SVG file is required")
		os.Exit(1)
	}

	f, err := os.Open(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening SVG: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	root, err := svgconv.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error decoding SVG: %v\n", err)
		os.Exit(1)
	}

	cfg := svgconv.DefaultConfig()
	cfg.Scale = *scale

	models, diags, err := svgconv.Convert(root, *inPath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error converting SVG: %v\n", err)
		os.Exit(1)
	}
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "diagnostic: %s (%s) %s\n", d.Kind, d.Element, d.Detail)
	}

	fmt.Fprintf(os.Stderr, "%s: %d part(s), %d sheet(s)\n", models.Filename, len(models.Parts), len(models.Sheets))

	if !*computeNFP {
		printSummary(models)
		return
	}

	parts := orderedShapes(models.Parts)
	if len(parts) < 2 {
		fmt.Fprintln(os.Stderr, "error: -nfp requires at least two parts")
		os.Exit(1)
	}

	mode := nfp.Exterior
	if *interior {
		mode = nfp.Interior
	}

	a, b := parts[0].Outer[0], parts[1].Outer[0]
	result, diagnostics, err := nfp.Compute(a, b, mode, false, *tol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error computing NFP: %v\n", err)
		os.Exit(1)
	}
	for _, d := range diagnostics {
		fmt.Fprintf(os.Stderr, "nfp diagnostic: %s (loop %d, %d iterations used)\n", d.Kind, d.LoopIndex, d.IterationsUsed)
	}

	printLoops(result.Loops)
}

func printSummary(models *shape.ModelsToPlace) {
	for s, count := range models.Parts {
		b := s.Bounds()
		fmt.Printf("part %q x%d: bounds (%.3f,%.3f)-(%.3f,%.3f)\n",
			s.Provenance.SourceElement, count, b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
	for s, count := range models.Sheets {
		b := s.Bounds()
		fmt.Printf("sheet %q x%d: bounds (%.3f,%.3f)-(%.3f,%.3f)\n",
			s.Provenance.SourceElement, count, b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
}

func printLoops(loops [][]vector.Point) {
	for i, loop := range loops {
		fmt.Printf("loop %d:\n", i)
		for _, p := range loop {
			fmt.Printf("  (%.6f, %.6f)\n", p.X, p.Y)
		}
	}
}

// orderedShapes returns models' keys sorted by source element
// reference. Shapes whose references are equal have no fixed relative
// order, since they come from map iteration.
func orderedShapes(m map[*shape.Shape]int) []*shape.Shape {
	out := make([]*shape.Shape, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Provenance.SourceElement < out[j].Provenance.SourceElement
	})
	return out
}
