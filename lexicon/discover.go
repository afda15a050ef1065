package lexicon

import (
	"bufio"
	"fmt"
	"os"
)

// Discover counts Hangul n-grams in a text file and writes the ones crossing
// the threshold as unknown-word candidates for review.
func Discover(inputPath, outputPath string, threshold, maxGram int) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	counts := make(map[string]int)
	for scanner.Scan() {
		for _, block := range hangulBlocks(scanner.Text()) {
			runes := []rune(block)
			n := len(runes)
			if n < 2 {
				continue
			}
			for i := 0; i < n; i++ {
				for k := 2; k <= maxGram && i+k <= n; k++ {
					counts[string(runes[i:i+k])]++
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	writer := bufio.NewWriter(outFile)
	for w, c := range counts {
		if c >= threshold {
			fmt.Fprintf(writer, "%s %d\n", w, c)
		}
	}
	return writer.Flush()
}
