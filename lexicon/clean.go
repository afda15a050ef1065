package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kotext/kotext/util"
)

// Word is one frequency-list entry.
type Word struct {
	Text string
	Freq int
}

// Clean filters a frequency list: punctuation-bearing entries drop, and
// entries that are noisy extensions or near-duplicate prefixes/suffixes of a
// much more frequent word are pruned. ratio is the frequency ratio above
// which the shorter form wins.
func Clean(inputPath, outputPath string, ratio float64) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	wordMap := make(map[string]int)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			freq, _ := strconv.Atoi(parts[1])
			if freq > 0 {
				word := parts[0]
				if util.ContainsPunctuation(word) {
					continue
				}
				wordMap[word] += freq
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	var words []Word
	for t, f := range wordMap {
		words = append(words, Word{Text: t, Freq: f})
	}

	cleaned := prunePrefixes(words, ratio)
	cleaned = pruneSuffixes(cleaned, ratio)
	cleaned = pruneNoisyExtensions(cleaned)

	outFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer outFile.Close()
	writer := bufio.NewWriter(outFile)

	for _, w := range cleaned {
		fmt.Fprintf(writer, "%s %d\n", w.Text, w.Freq)
	}
	return writer.Flush()
}

// pruneNoisyExtensions drops entries whose one-character extension of a much
// more frequent word is probably segmentation noise (서울맛집 vs 맛집).
func pruneNoisyExtensions(words []Word) []Word {
	dict := make(map[string]int)
	for _, w := range words {
		dict[w.Text] = w.Freq
	}

	keep := make([]bool, len(words))
	for i := range keep {
		keep[i] = true
	}

	for i, w := range words {
		runes := []rune(w.Text)
		if len(runes) <= 2 {
			continue
		}

		front := string(runes[1:])
		if f, ok := dict[front]; ok {
			if float64(f)/float64(w.Freq) > 5.0 {
				keep[i] = false
				continue
			}
		}

		// Protect legitimate endings (place/institution suffixes) before
		// considering a tail strip.
		lastChar := runes[len(runes)-1]
		if isProtectedSuffix(lastChar) {
			continue
		}

		tail := string(runes[:len(runes)-1])
		if f, ok := dict[tail]; ok {
			if float64(f)/float64(w.Freq) > 5.0 {
				keep[i] = false
				continue
			}
		}
	}

	var res []Word
	for i, w := range words {
		if keep[i] {
			res = append(res, w)
		}
	}
	return res
}

func isProtectedSuffix(r rune) bool {
	protected := []rune("시도군구동역리국사원장관소점가")
	for _, p := range protected {
		if r == p {
			return true
		}
	}
	return false
}

func prunePrefixes(words []Word, ratio float64) []Word {
	sort.Slice(words, func(i, j int) bool {
		return words[i].Text < words[j].Text
	})

	keep := make([]bool, len(words))
	for i := range keep {
		keep[i] = true
	}

	for i := 0; i < len(words)-1; i++ {
		curr := words[i]
		next := words[i+1]

		if strings.HasPrefix(next.Text, curr.Text) {
			score := float64(next.Freq) / float64(curr.Freq)
			if score >= ratio {
				keep[i] = false
			}
		}
	}

	var res []Word
	for i, w := range words {
		if keep[i] {
			res = append(res, w)
		}
	}
	return res
}

func pruneSuffixes(words []Word, ratio float64) []Word {
	for i := range words {
		words[i].Text = reverse(words[i].Text)
	}
	cleaned := prunePrefixes(words, ratio)
	for i := range cleaned {
		cleaned[i].Text = reverse(cleaned[i].Text)
	}
	return cleaned
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
