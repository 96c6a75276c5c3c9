package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/yolo-synth/meshscene"
	"github.com/unixpickle/yolo-synth/synth"
)

func main() {
	var configPath string
	var outputDir string
	var imageCount int
	var resolution int
	var samples int
	var seed int64
	var sampling string
	var labelOrigin string
	var noManifest bool
	flag.StringVar(&configPath, "config", "", "path to optional YAML config")
	flag.StringVar(&outputDir, "output", "", "override the output directory")
	flag.IntVar(&imageCount, "num-images", -1, "override the number of iterations")
	flag.IntVar(&resolution, "resolution", 0, "override the square image resolution")
	flag.IntVar(&samples, "samples", 0, "override the render sample count")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	flag.StringVar(&sampling, "sampling", "", "override the sampling mode (polar or uniform)")
	flag.StringVar(&labelOrigin, "label-origin", "",
		"override the label origin (bottom-left or top-left)")
	flag.BoolVar(&noManifest, "no-manifest", false, "do not write manifest.json")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: generate_dataset [flags] <scene.yaml>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	scenePath := args[0]

	config := synth.DefaultConfig()
	if configPath != "" {
		log.Println("Loading config...")
		var err error
		config, err = synth.LoadConfig(configPath)
		essentials.Must(err)
	}
	if outputDir != "" {
		config.OutputDir = outputDir
	}
	if imageCount >= 0 {
		config.ImageCount = imageCount
	}
	if resolution != 0 {
		config.Resolution = resolution
	}
	if samples != 0 {
		config.RenderSamples = samples
	}
	if sampling != "" {
		config.Sampling = synth.SamplingMode(sampling)
	}
	if labelOrigin != "" {
		config.LabelOrigin = synth.LabelOrigin(labelOrigin)
	}
	if err := config.Validate(); err != nil {
		essentials.Die(err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Println("Loading scene...")
	scene, err := meshscene.LoadScene(scenePath)
	essentials.Must(err)

	gen, err := synth.NewGenerator(config, scene, rand.New(rand.NewSource(seed)), nil)
	essentials.Must(err)
	summary, err := gen.Run()
	essentials.Must(err)

	log.Printf("Saved %d frames, skipped %d", len(summary.Frames), len(summary.Skipped))
	if !noManifest {
		log.Println("Writing manifest...")
		essentials.Must(synth.SaveManifest(config.OutputDir, synth.NewManifest(config, seed,
			summary)))
	}
}
