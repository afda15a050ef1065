package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kotext/kotext/lexicon"
)

func main() {
	mode := flag.String("mode", "extract", "Mode: extract, clean, or discover")
	input := flag.String("in", "", "Input file (corpus or frequency list)")
	output := flag.String("out", "", "Output file")
	ratio := flag.Float64("ratio", 0.9, "Prefix/suffix frequency ratio for clean mode")
	threshold := flag.Int("threshold", 10, "Minimum n-gram count for discover mode")
	maxGram := flag.Int("max-gram", 4, "Maximum n-gram length for discover mode")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Both -in and -out are required")
		flag.Usage()
		os.Exit(1)
	}

	var err error
	switch *mode {
	case "extract":
		err = lexicon.ExtractFrequencies(*input, *output)
	case "clean":
		err = lexicon.Clean(*input, *output, *ratio)
	case "discover":
		err = lexicon.Discover(*input, *output, *threshold, *maxGram)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode '%s'\n", *mode)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *output)
}
