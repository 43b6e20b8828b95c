package segment

import (
	"fmt"

	"github.com/steosofficial/sanskritmorphy/lexicon"
	"github.com/steosofficial/sanskritmorphy/sandhi"
	"github.com/steosofficial/sanskritmorphy/sounds"
)

// analysisCache memoizes lexicon lookups for the duration of one Segment
// call. It is not safe for concurrent use; each call to Segment constructs
// its own.
type analysisCache struct {
	lex     lexicon.Lexicon
	entries map[string][]lexicon.Analysis
}

func newAnalysisCache(lex lexicon.Lexicon) *analysisCache {
	return &analysisCache{lex: lex, entries: make(map[string][]lexicon.Analysis)}
}

// get populates and returns the analyses for text, given the split that
// produced it. On a cache miss, every handle the lexicon returns is
// unpacked; if the split was end-of-chunk or text begins with a
// non-Sanskrit character, the sentinel None analysis is appended too, so
// the search can skip junk as a last resort.
func (c *analysisCache) get(text string, split sandhi.Split) ([]lexicon.Analysis, error) {
	if res, ok := c.entries[text]; ok {
		return res, nil
	}

	handles := c.lex.GetAll(text)
	res := make([]lexicon.Analysis, 0, len(handles)+1)
	for _, h := range handles {
		a, err := c.lex.Unpack(h)
		if err != nil {
			return nil, fmt.Errorf("analyzing %q: %w", text, err)
		}
		res = append(res, a)
	}

	if split.IsEndOfChunk || !sounds.IsSanskrit(firstRune(text)) {
		res = append(res, lexicon.None)
	}

	c.entries[text] = res
	return res, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
