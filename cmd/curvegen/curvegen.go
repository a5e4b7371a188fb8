// curvegen tabulates easing curve shapes so their constants can be tuned
// by eye outside an engine.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/playforgehq/gamekit-go/ease"
)

var (
	shapeName string
	allShapes bool
	samples   int
	format    string
)

func main() {
	root := &cobra.Command{
		Use:           "curvegen",
		Short:         "Tabulate easing curve shapes for visual tuning",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.Flags().StringVar(&shapeName, "shape", "linear", "shape to sample (see 'curvegen shapes')")
	root.Flags().BoolVar(&allShapes, "all", false, "sample every closed-form shape")
	root.Flags().IntVar(&samples, "samples", 20, "number of sample intervals over [0,1]")
	root.Flags().StringVar(&format, "format", "table", "output format: table or csv")

	root.AddCommand(&cobra.Command{
		Use:   "shapes",
		Short: "List every shape name",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range ease.Shapes() {
				fmt.Println(s)
			}
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if samples < 1 {
		return fmt.Errorf("samples must be >= 1, got %d", samples)
	}

	var shapes []ease.Shape
	if allShapes {
		for _, s := range ease.Shapes() {
			if s == ease.CustomCurve {
				// no closed form to sample
				continue
			}
			shapes = append(shapes, s)
		}
	} else {
		s, err := ease.ParseShape(shapeName)
		if err != nil {
			return err
		}
		if s == ease.CustomCurve {
			return fmt.Errorf("custom-curve has no closed form to sample")
		}
		shapes = []ease.Shape{s}
	}

	switch format {
	case "csv":
		return writeCSV(shapes)
	case "table":
		return writeTable(shapes)
	}
	return fmt.Errorf("unknown format %q (want table or csv)", format)
}

func writeCSV(shapes []ease.Shape) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"shape", "t", "progress"}); err != nil {
		return err
	}
	for _, s := range shapes {
		for i := 0; i <= samples; i++ {
			t := float64(i) / float64(samples)
			row := []string{
				s.String(),
				strconv.FormatFloat(t, 'g', -1, 64),
				strconv.FormatFloat(ease.Progress(s, t), 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func writeTable(shapes []ease.Shape) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "t")
	for _, s := range shapes {
		fmt.Fprintf(w, "\t%s", s)
	}
	fmt.Fprintln(w)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		fmt.Fprintf(w, "%.3f", t)
		for _, s := range shapes {
			fmt.Fprintf(w, "\t%+.4f", ease.Progress(s, t))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
