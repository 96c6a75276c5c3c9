package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/yolo-synth/synth"
)

func main() {
	var labelOrigin string
	flag.StringVar(&labelOrigin, "label-origin", "",
		"label origin (bottom-left or top-left); defaults to the dataset manifest")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: preview_labels [flags] <dataset_dir> <output_dir>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	datasetDir, outputDir := args[0], args[1]

	origin := synth.LabelOrigin(labelOrigin)
	if origin == "" {
		origin = synth.BottomLeft
		if manifest, err := synth.LoadManifest(datasetDir); err != nil {
			log.Printf("No usable manifest (%v); assuming %s labels", err, origin)
		} else if manifest.Config != nil {
			origin = manifest.Config.LabelOrigin
		}
	}
	if origin != synth.BottomLeft && origin != synth.TopLeft {
		essentials.Die("unknown label origin:", origin)
	}

	log.Println("Drawing labels...")
	count, err := synth.PreviewDataset(datasetDir, outputDir, origin)
	essentials.Must(err)
	log.Printf("Wrote %d preview images", count)
}
