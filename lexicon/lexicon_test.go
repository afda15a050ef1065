package lexicon

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractFrequencies(t *testing.T) {
	in := writeTemp(t, "corpus.txt", "한국어 공부 한국어\nhello 123 밥!\n")
	out := filepath.Join(t.TempDir(), "freq.txt")

	if err := ExtractFrequencies(in, out); err != nil {
		t.Fatalf("ExtractFrequencies() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// hello has no Hangul, 123 has no Hangul, 밥! carries punctuation
	want := "한국어 2\n공부 1\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

func TestClean(t *testing.T) {
	in := writeTemp(t, "freq.txt", "한국 100\n한국어 95\n곳맛집 10\n맛집 100\n")
	out := filepath.Join(t.TempDir(), "clean.txt")

	if err := Clean(in, out, 0.9); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	// 한국 is a prefix of the nearly-as-frequent 한국어, so the longer form wins;
	// 곳맛집 is a noisy extension of the much more frequent 맛집
	if strings.Contains(got, "한국 ") {
		t.Errorf("output should not keep '한국': %q", got)
	}
	if !strings.Contains(got, "한국어 95") {
		t.Errorf("output should keep '한국어': %q", got)
	}
	if strings.Contains(got, "곳맛집") {
		t.Errorf("output should not keep '곳맛집': %q", got)
	}
	if !strings.Contains(got, "맛집 100") {
		t.Errorf("output should keep '맛집': %q", got)
	}
}

func TestCleanProtectedSuffix(t *testing.T) {
	// 서울역 ends in the protected place suffix 역 and must survive even
	// though 서울 is far more frequent
	in := writeTemp(t, "freq.txt", "서울 1000\n서울역 10\n")
	out := filepath.Join(t.TempDir(), "clean.txt")

	if err := Clean(in, out, 0.9); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "서울역 10") {
		t.Errorf("output should keep '서울역': %q", string(data))
	}
}

func TestDiscover(t *testing.T) {
	in := writeTemp(t, "corpus.txt", "한국어 한국어 한국어\n")
	out := filepath.Join(t.TempDir(), "candidates.txt")

	if err := Discover(in, out, 3, 3); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]int)
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		parts := strings.Fields(line)
		if len(parts) != 2 {
			t.Fatalf("malformed line %q", line)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			t.Fatal(err)
		}
		got[parts[0]] = n
	}

	want := map[string]int{"한국": 3, "국어": 3, "한국어": 3}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for w, n := range want {
		if got[w] != n {
			t.Errorf("count(%s) = %d, want %d", w, got[w], n)
		}
	}
}
