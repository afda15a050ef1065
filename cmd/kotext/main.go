package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kotext/kotext/processor"
)

func main() {
	op := flag.String("op", "tokenize", "Operation: normalize, tokenize, phrases, sentences, or detokenize")
	keepSpace := flag.Bool("keep-space", false, "Keep Space tokens in tokenize output")
	filterSpam := flag.Bool("filter-spam", false, "Drop spam phrases in phrases output")
	hashtags := flag.Bool("hashtags", true, "Include hashtag phrases in phrases output")
	flag.Parse()

	proc, err := processor.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}

	var process func(text string) string
	process = func(text string) string {
		switch *op {
		case "normalize":
			return proc.Normalize(text)
		case "sentences":
			var parts []string
			for _, s := range proc.SplitSentences(text) {
				parts = append(parts, s.Text)
			}
			return strings.Join(parts, " / ")
		case "phrases":
			tokens := proc.Tokenize(text)
			var parts []string
			for _, p := range proc.ExtractPhrases(tokens, *filterSpam, *hashtags) {
				parts = append(parts, p.Text)
			}
			return strings.Join(parts, " / ")
		case "detokenize":
			return proc.Detokenize(strings.Fields(text))
		case "tokenize":
			tokens := proc.Tokenize(text)
			return strings.Join(proc.TokenStrings(tokens, *keepSpace), " / ")
		default:
			fmt.Fprintf(os.Stderr, "Unknown op '%s'. Using 'tokenize'.\n", *op)
			*op = "tokenize"
			return process(text)
		}
	}

	// If args provided (non-flag args), process them
	args := flag.Args()
	if len(args) > 0 {
		fmt.Println(process(strings.Join(args, " ")))
		return
	}

	// Otherwise interactive mode
	fmt.Println("Enter text to process (Ctrl+D to exit):")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Println(process(text))
	}
}
