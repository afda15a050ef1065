package dictionary

import (
	"bufio"
	"embed"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kotext/kotext/pos"
)

//go:embed data
var lexiconFS embed.FS

// One file per tag. Each line is a single word; blank lines and lines
// starting with '#' are skipped.
var lexiconFiles = []struct {
	path string
	tag  pos.Pos
}{
	{"data/noun.txt", pos.Noun},
	{"data/verb.txt", pos.Verb},
	{"data/adjective.txt", pos.Adjective},
	{"data/adverb.txt", pos.Adverb},
	{"data/determiner.txt", pos.Determiner},
	{"data/exclamation.txt", pos.Exclamation},
	{"data/josa.txt", pos.Josa},
	{"data/eomi.txt", pos.Eomi},
	{"data/preeomi.txt", pos.PreEomi},
	{"data/conjunction.txt", pos.Conjunction},
	{"data/modifier.txt", pos.Modifier},
	{"data/verbprefix.txt", pos.VerbPrefix},
	{"data/suffix.txt", pos.Suffix},
}

const (
	typoFile = "data/typos.txt"
	spamFile = "data/spam.txt"
)

// NewKorean builds a dictionary seeded with the embedded base lexicon.
// Files load in parallel; the merge happens once all reads finish.
func NewKorean() (*Dictionary, error) {
	loaded := make([][]string, len(lexiconFiles))
	var g errgroup.Group
	for i, f := range lexiconFiles {
		g.Go(func() error {
			words, err := readWordFile(f.path)
			if err != nil {
				return fmt.Errorf("lexicon %s: %w", f.path, err)
			}
			loaded[i] = words
			return nil
		})
	}

	var typoLines, spamWords []string
	g.Go(func() error {
		lines, err := readWordFile(typoFile)
		if err != nil {
			return fmt.Errorf("lexicon %s: %w", typoFile, err)
		}
		typoLines = lines
		return nil
	})
	g.Go(func() error {
		words, err := readWordFile(spamFile)
		if err != nil {
			return fmt.Errorf("lexicon %s: %w", spamFile, err)
		}
		spamWords = words
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := New()
	for i, f := range lexiconFiles {
		d.Add(f.tag, loaded[i]...)
	}
	d.mu.Lock()
	for _, line := range typoLines {
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		d.addTypo(parts[0], parts[1])
	}
	d.spam = spamWords
	d.gen = 0 // seeding is not a user mutation
	d.mu.Unlock()
	return d, nil
}

func readWordFile(path string) ([]string, error) {
	f, err := lexiconFS.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
