// Package segment implements the segmenter: best-first search with
// Viterbi-style dominance pruning over candidate sandhi splits, lexicon
// lookups, and scoring-model evaluations.
package segment

import (
	"github.com/steosofficial/sanskritmorphy/lexicon"
	"github.com/steosofficial/sanskritmorphy/scoring"
)

// Word is a recognized lexeme: the surface text that was consumed, plus
// its morphological analysis.
type Word struct {
	Text     string
	Analysis lexicon.Analysis
}

// WordAnalysis implements scoring.ScoredWord.
func (w Word) WordAnalysis() lexicon.Analysis { return w.Analysis }

// Lemma returns the word's canonical stem, delegating to its analysis.
func (w Word) Lemma() string {
	return w.Analysis.Lemma()
}

// Phrase is a search-frontier node: the words accepted so far, the
// unconsumed suffix of the normalized input, and a running score.
type Phrase struct {
	Words     []Word
	Remaining string
	Score     int32
}

// newPhrase returns the initial, empty Phrase for a normalized input.
func newPhrase(text string) Phrase {
	return Phrase{Remaining: text, Score: 0}
}

// extend returns a new Phrase with w appended and remaining set to
// newRemaining. The score is left equal to the popped score that produced
// this extension; callers must rescore before relying on it (see the
// interim-score note on segment.go's Segment).
func (p Phrase) extend(w Word, newRemaining string, poppedScore int32) Phrase {
	words := make([]Word, len(p.Words)+1)
	copy(words, p.Words)
	words[len(p.Words)] = w
	return Phrase{Words: words, Remaining: newRemaining, Score: poppedScore}
}

// scoredWords adapts Words to the []scoring.ScoredWord the model expects.
func (p Phrase) scoredWords() []scoring.ScoredWord {
	out := make([]scoring.ScoredWord, len(p.Words))
	for i, w := range p.Words {
		out[i] = w
	}
	return out
}
