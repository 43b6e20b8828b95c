package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/steosofficial/sanskritmorphy/sanskriterr"
)

// Memory is a small map-based Lexicon backend. It is used by tests and by
// tooling that does not warrant building a full DAWG dictionary.
type Memory struct {
	index   map[string][]Handle
	payload []taggedAnalysis
}

// NewMemory returns an empty, ready-to-populate Memory lexicon.
func NewMemory() *Memory {
	return &Memory{index: make(map[string][]Handle)}
}

// Add records one (surface form, lemma, tags) analysis and returns its
// handle.
func (m *Memory) Add(word, lemma, tags string) Handle {
	m.payload = append(m.payload, taggedAnalysis{lemma: lemma, tags: tags})
	h := Handle(len(m.payload) - 1)
	m.index[word] = append(m.index[word], h)
	return h
}

// GetAll implements Lexicon.
func (m *Memory) GetAll(text string) []Handle {
	return m.index[text]
}

// Unpack implements Lexicon.
func (m *Memory) Unpack(h Handle) (Analysis, error) {
	if int(h) >= len(m.payload) {
		return nil, fmt.Errorf("%w: handle %d out of range", sanskriterr.ErrLexiconUnpack, h)
	}
	return m.payload[h], nil
}

// LoadMemoryText builds a Memory lexicon from a plain text file where each
// line is "word<TAB>lemma<TAB>tags", tags being a comma-separated list of
// grammatical feature codes treated opaquely by the core. Blank lines and
// lines starting with '#' are ignored.
func LoadMemoryText(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening lexicon %q: %v", sanskriterr.ErrConfigLoad, path, err)
	}
	defer f.Close()

	m := NewMemory()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q line %d: expected 3 tab-separated fields, got %d", sanskriterr.ErrConfigLoad, path, lineNo, len(fields))
		}
		m.Add(fields[0], fields[1], fields[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading lexicon %q: %v", sanskriterr.ErrConfigLoad, path, err)
	}
	return m, nil
}
