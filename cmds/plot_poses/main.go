package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/yolo-synth/synth"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	var configPath string
	var numSamples int
	var bins int
	var seed int64
	var sampling string
	flag.StringVar(&configPath, "config", "", "path to optional YAML config")
	flag.IntVar(&numSamples, "num-samples", 5000, "number of poses to sample")
	flag.IntVar(&bins, "bins", 30, "number of histogram bins")
	flag.Int64Var(&seed, "seed", 1337, "random seed")
	flag.StringVar(&sampling, "sampling", "", "override the sampling mode (polar or uniform)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: plot_poses [flags] <output_prefix>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Writes <output_prefix>_positions.png and <output_prefix>_radii.png.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	prefix := strings.TrimSuffix(args[0], ".png")

	config := synth.DefaultConfig()
	if configPath != "" {
		var err error
		config, err = synth.LoadConfig(configPath)
		essentials.Must(err)
	}
	if sampling != "" {
		config.Sampling = synth.SamplingMode(sampling)
	}
	essentials.Must(config.Validate())

	log.Println("Sampling poses...")
	sampler := config.Sampler()
	gen := rand.New(rand.NewSource(seed))
	positions := make(plotter.XYs, numSamples)
	radii := make(plotter.Values, numSamples)
	var inner int
	for i := range positions {
		s := sampler.Sample(gen)
		positions[i] = plotter.XY{X: s.X, Y: s.Y}
		radii[i] = s.Radius()
		if radii[i] < config.MoveRadius/2 {
			inner++
		}
	}
	log.Printf("Fraction within half radius: %.3f (uniform disk: 0.250)",
		float64(inner)/float64(numSamples))

	log.Println("Plotting...")
	pos := plot.New()
	pos.Title.Text = fmt.Sprintf("Sampled positions (%s)", config.Sampling)
	pos.X.Label.Text = "x"
	pos.Y.Label.Text = "y"
	scatter, err := plotter.NewScatter(positions)
	essentials.Must(err)
	scatter.GlyphStyle.Radius = vg.Points(1)
	pos.Add(scatter, plotter.NewGrid())
	essentials.Must(pos.Save(6*vg.Inch, 6*vg.Inch, prefix+"_positions.png"))

	hist := plot.New()
	hist.Title.Text = "Sampled radii"
	hist.X.Label.Text = "radius"
	hist.Y.Label.Text = "count"
	h, err := plotter.NewHist(radii, bins)
	essentials.Must(err)
	hist.Add(h)
	essentials.Must(hist.Save(8*vg.Inch, 4*vg.Inch, prefix+"_radii.png"))
}
