package segment

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/steosofficial/sanskritmorphy/lexicon"
	"github.com/steosofficial/sanskritmorphy/sandhi"
	"github.com/steosofficial/sanskritmorphy/scoring"
	"github.com/steosofficial/sanskritmorphy/sounds"
)

// Segmenter holds the three immutable collaborators a segmentation needs:
// sandhi rules, a lexicon, and a scoring model.
// A constructed Segmenter may be shared across goroutines for concurrent
// Segment calls, provided its Lexicon is safe for concurrent read-only use.
type Segmenter struct {
	splitter *sandhi.Splitter
	lexicon  lexicon.Lexicon
	model    *scoring.Model
	log      zerolog.Logger
}

// NewSegmenter builds a Segmenter from already-loaded collaborators. Config
// loading (reading the underlying rule/lexicon/model files) is the
// config package's job; by the time a Segmenter is constructed, a
// ConfigLoad failure has already been surfaced to the caller.
func NewSegmenter(splitter *sandhi.Splitter, lex lexicon.Lexicon, model *scoring.Model) *Segmenter {
	return &Segmenter{splitter: splitter, lexicon: lex, model: model, log: log.Logger}
}

// WithLogger returns a copy of s that logs through the given logger
// instead of the global default.
func (s *Segmenter) WithLogger(logger zerolog.Logger) *Segmenter {
	s2 := *s
	s2.log = logger
	return &s2
}

// Lexicon returns the Segmenter's backing lexicon, for callers that need
// to manage its lifetime directly (e.g. closing a mmap-backed DAWG).
func (s *Segmenter) Lexicon() lexicon.Lexicon {
	return s.lexicon
}

// Segment splits and analyzes rawText, returning the recognized words in
// order. It never panics on well-formed input; a lexicon unpack failure is
// the only error path.
//
// A successor Phrase is first built with the popped Phrase's score, and
// only overwritten by the model's rescore immediately afterward. The
// interim value is never observed because nothing inspects a Phrase
// between construction and rescoring, but callers must not assume
// Phrase.Score is meaningful except on a fully constructed, pushed Phrase.
func (s *Segmenter) Segment(rawText string) ([]Word, error) {
	text := normalize(rawText)

	pq := newPhraseQueue()
	cache := newAnalysisCache(s.lexicon)
	viterbi := make(map[string]Phrase)

	initial := newPhrase(text)
	pq.push(initial)

	for pq.len() > 0 {
		s.debugPrintStack(pq)

		cur := pq.pop()
		curScore := cur.Score

		// Termination test: scores are monotone non-increasing under
		// extension, so the first complete Phrase popped is optimal.
		if cur.Remaining == "" {
			return cur.Words, nil
		}

		if !sounds.IsSanskrit(firstRune(cur.Remaining)) {
			s.considerSuccessor(s.emitNonSanskritPrefix(cur, curScore), viterbi, pq)
			continue
		}

		for _, split := range s.splitter.SplitAll(cur.Remaining) {
			if !split.IsValid() || split.IsRecursive() {
				continue
			}

			analyses, err := cache.get(split.First, split)
			if err != nil {
				return nil, err
			}

			for _, a := range analyses {
				if !strictModeFilter(cur, split, a) {
					continue
				}

				successor := cur.extend(Word{Text: split.First, Analysis: a}, split.Second, curScore)
				successor.Score = s.model.Score(successor.scoredWords())
				s.considerSuccessor(successor, viterbi, pq)
			}
		}
	}

	if best, ok := viterbi[""]; ok {
		return best.Words, nil
	}
	return nil, nil
}

// emitNonSanskritPrefix builds the successor for the non-Sanskrit-prefix
// branch: one Word with the None analysis, covering the prefix up to the
// next whitespace or the entire remainder if there is none.
//
// This branch does not consult strictModeFilter: junk spans carry no
// grammemes, so there is nothing for the filter to agree or disagree on.
func (s *Segmenter) emitNonSanskritPrefix(cur Phrase, curScore int32) Phrase {
	first, second, found := cutSpace(cur.Remaining)
	var successor Phrase
	if found {
		successor = cur.extend(Word{Text: first, Analysis: lexicon.None}, second, curScore)
	} else {
		successor = cur.extend(Word{Text: cur.Remaining, Analysis: lexicon.None}, "", curScore)
	}
	successor.Score = s.model.Score(successor.scoredWords())
	return successor
}

func cutSpace(s string) (first, second string, found bool) {
	for i, r := range s {
		if r == ' ' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

// considerSuccessor applies the dominance check against the Viterbi cache
// and, if the successor survives, installs it and pushes it onto the
// queue.
func (s *Segmenter) considerSuccessor(successor Phrase, viterbi map[string]Phrase, pq *phraseQueue) {
	if rival, ok := viterbi[successor.Remaining]; ok && rival.Score >= successor.Score {
		return
	}
	viterbi[successor.Remaining] = successor
	pq.push(successor)
}

func (s *Segmenter) debugPrintStack(pq *phraseQueue) {
	if !s.log.Debug().Enabled() {
		return
	}
	items := pq.snapshot()
	s.log.Debug().Msg("stack:")
	for i, p := range items {
		texts := make([]string, len(p.Words))
		for j, w := range p.Words {
			texts[j] = w.Text
		}
		s.log.Debug().Int("i", i).Strs("words", texts).Str("remaining", p.Remaining).Int32("score", p.Score).Msg("")
	}
}
