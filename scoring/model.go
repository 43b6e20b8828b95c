// Package scoring implements the additive log-probability model the
// segmenter uses to rank partial segmentations: a lemma-emission sub-model
// and an analysis-transition sub-model, both backed by hashed count tables
// loaded from tabular files.
package scoring

import (
	"hash/fnv"

	"github.com/steosofficial/sanskritmorphy/lexicon"
)

// floorLogProb is the fixed score assigned to out-of-vocabulary lemmas and
// transitions. Scaled log-probabilities are integers in a model-defined
// fixed-point scale; this floor is the most negative ordinary value the
// loaded tables are expected to produce, chosen well away from int32
// overflow so that summing it across the longest legal input stays in
// range.
const floorLogProb int32 = -20000

// Model holds the two hashed score tables plus a normalization constant
// that Score subtracts from every phrase's total.
type Model struct {
	lemmaScore      map[uint64]int32
	transitionScore map[uint64]int32
	norm            int32
}

// NewModel builds a Model directly from already-scaled score tables. Loader
// returns one via LoadModel; tests construct one directly.
func NewModel(lemmaScore, transitionScore map[uint64]int32, norm int32) *Model {
	if lemmaScore == nil {
		lemmaScore = make(map[uint64]int32)
	}
	if transitionScore == nil {
		transitionScore = make(map[uint64]int32)
	}
	return &Model{lemmaScore: lemmaScore, transitionScore: transitionScore, norm: norm}
}

// LemmaKey returns the key a's emission score is stored under. Exported so
// callers that build a Model's tables directly (tests, tooling) can target
// a specific analysis without going through a count file.
func LemmaKey(a lexicon.Analysis) uint64 {
	return lemmaKey(a)
}

// TransitionKey returns the key the (prev, cur) pair's transition score is
// stored under. Exported for the same reason as LemmaKey.
func TransitionKey(prev, cur lexicon.Analysis) uint64 {
	return transitionKey(prev, cur)
}

// lemmaKey and transitionKey hash the strings a count table is keyed on.
// The emission table is keyed by the analysis's own Hash() (fnv-64a over
// its lemma and tags), so the model never needs to compare analyses
// directly.
func lemmaKey(a lexicon.Analysis) uint64 {
	return a.Hash()
}

// transitionKey hashes the pair's tag classes, not their lemmas: the
// transition sub-model predicts how grammatical categories follow one
// another, independent of which specific lemma fills each slot.
func transitionKey(prev, cur lexicon.Analysis) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(lexicon.Tags(prev)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(lexicon.Tags(cur)))
	return h.Sum64()
}

// emissionScore returns the log-probability of analysis a's lemma given a,
// or the floor if unseen.
func (m *Model) emissionScore(a lexicon.Analysis) int32 {
	if s, ok := m.lemmaScore[lemmaKey(a)]; ok {
		return s
	}
	return floorLogProb
}

// transitionScoreFor returns the log-probability of the adjacent analysis
// pair (prev, cur), or the floor if unseen. prev may be lexicon.None if cur
// is the phrase's first word.
func (m *Model) transitionScoreFor(prev, cur lexicon.Analysis) int32 {
	if s, ok := m.transitionScore[transitionKey(prev, cur)]; ok {
		return s
	}
	return floorLogProb
}

// ScoredWord is the minimal view of a Word the model needs: its analysis.
// segment.Word satisfies this via its WordAnalysis method.
type ScoredWord interface {
	WordAnalysis() lexicon.Analysis
}

// Score computes the total additive log-probability of a sequence of
// words: the sum of each word's emission score plus each adjacent pair's
// transition score (the first word's predecessor being lexicon.None),
// minus norm. Extending a phrase by one word can only
// add non-positive terms in a well-formed model, which the segmenter's
// first-complete-pop termination argument relies on.
func (m *Model) Score(words []ScoredWord) int32 {
	var total int32
	var prev lexicon.Analysis = lexicon.None
	for _, w := range words {
		a := w.WordAnalysis()
		total += m.emissionScore(a)
		total += m.transitionScoreFor(prev, a)
		prev = a
	}
	return total - m.norm
}
