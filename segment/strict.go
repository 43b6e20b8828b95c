package segment

import (
	"github.com/steosofficial/sanskritmorphy/lexicon"
	"github.com/steosofficial/sanskritmorphy/sandhi"
)

// strictModeFilter enforces morphological admissibility constraints
// between adjacent words before a successor Phrase is built. It is a pure
// function: rejections produce no successor and no error.
//
// The only constraint implemented is case agreement between adjacent
// nominal forms: if both the preceding word's and the candidate's
// grammemes carry a case, and those cases differ, the candidate is
// rejected. Either side lacking a case value (verbs, indeclinables, the
// None sentinel) imposes no constraint, matching the lenient default a
// production grammar would need for compounds and particles.
func strictModeFilter(cur Phrase, split sandhi.Split, analysis lexicon.Analysis) bool {
	_ = split
	if len(cur.Words) == 0 {
		return true
	}
	prev := cur.Words[len(cur.Words)-1].Analysis

	prevGram := lexicon.ParseTags(lexicon.Tags(prev))
	curGram := lexicon.ParseTags(lexicon.Tags(analysis))
	if prevGram.Case != "" && curGram.Case != "" && prevGram.Case != curGram.Case {
		return false
	}
	return true
}
