// Package lexicon holds the offline tooling that maintains the base word
// lists: corpus frequency extraction, dictionary cleaning, and unsupervised
// discovery of unknown-word candidates. It operates on plain text files, one
// word and optional frequency per line.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kotext/kotext/hangul"
	"github.com/kotext/kotext/util"
)

// ExtractFrequencies counts word frequencies in a whitespace-segmented
// corpus and writes them sorted by descending frequency. Single syllables,
// words without any Hangul, and words containing punctuation are skipped.
func ExtractFrequencies(corpusPath, outputPath string) error {
	file, err := os.Open(corpusPath)
	if err != nil {
		return err
	}
	defer file.Close()

	counts := make(map[string]int)
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		for _, w := range strings.Fields(scanner.Text()) {
			if len([]rune(w)) <= 1 {
				continue
			}
			if !util.HasHangul(w) {
				continue
			}
			if util.ContainsPunctuation(w) {
				continue
			}
			counts[w]++
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	type kv struct {
		K string
		V int
	}
	var ss []kv
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].V != ss[j].V {
			return ss[i].V > ss[j].V
		}
		return ss[i].K < ss[j].K
	})

	outFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	writer := bufio.NewWriter(outFile)
	for _, item := range ss {
		fmt.Fprintf(writer, "%s %d\n", item.K, item.V)
	}
	return writer.Flush()
}

// hangulBlocks splits a line into maximal runs of Hangul syllables.
func hangulBlocks(s string) []string {
	var blocks []string
	var current []rune
	for _, r := range s {
		if hangul.IsSyllable(r) {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			blocks = append(blocks, string(current))
			current = nil
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, string(current))
	}
	return blocks
}
