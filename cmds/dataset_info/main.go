package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/yolo-synth/synth"
)

func main() {
	var listMissing bool
	flag.BoolVar(&listMissing, "list-missing", false, "print unlabeled images and orphan labels")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: dataset_info [flags] <dataset_dir>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Println("Reading labels...")
	stats, err := synth.ComputeStats(args[0])
	essentials.Must(err)

	fmt.Println("Images:", stats.Images)
	fmt.Println("Label files:", stats.Labels)
	fmt.Println("Boxes:", stats.Boxes)
	fmt.Println("Clipped boxes:", stats.Clipped)
	fmt.Println("Unlabeled images:", len(stats.Unlabeled))
	fmt.Println("Orphan labels:", len(stats.Orphans))

	classes := make([]int, 0, len(stats.ClassCounts))
	for class := range stats.ClassCounts {
		classes = append(classes, class)
	}
	sort.Ints(classes)
	for _, class := range classes {
		fmt.Printf("Class %d: %d boxes\n", class, stats.ClassCounts[class])
	}

	if stats.Boxes > 0 {
		fmt.Println("center x:", stats.CenterX)
		fmt.Println("center y:", stats.CenterY)
		fmt.Println("width:   ", stats.Width)
		fmt.Println("height:  ", stats.Height)
	}

	if listMissing {
		for _, name := range stats.Unlabeled {
			fmt.Println("unlabeled:", name)
		}
		for _, name := range stats.Orphans {
			fmt.Println("orphan:", name)
		}
	}
}
