package lexicon

import "strings"

// tagSet is a membership set for one grammatical category's possible
// values.
type tagSet map[string]struct{}

func newTagSet(values ...string) tagSet {
	s := make(tagSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s tagSet) has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Category value vocabularies. An analysis's raw tag string is a
// comma-separated list of these values in no fixed order (besides part of
// speech, which comes first when present); Grammemes buckets them.
var (
	posTags = newTagSet("noun", "verb", "pronoun", "adjective", "indeclinable")

	caseTags   = newTagSet("nom", "acc", "ins", "dat", "abl", "gen", "loc", "voc")
	numberTags = newTagSet("sg", "du", "pl")
	genderTags = newTagSet("masc", "fem", "neut")
	personTags = newTagSet("1p", "2p", "3p")
	tenseTags  = newTagSet("pres", "past", "fut", "perf", "impf", "aor")
	moodTags   = newTagSet("ind", "imp", "opt", "inj")
	voiceTags  = newTagSet("parasmai", "atmane", "passive")
)

// Grammemes is a tag string decomposed into its grammatical categories, for
// callers that want structured access (the strict-mode filter, CLI
// pretty-printing) without parsing the raw string themselves. Categories
// absent from the tag string are left at their zero value; tokens that
// match no known category are collected in Other.
type Grammemes struct {
	PartOfSpeech string
	Case         string
	Number       string
	Gender       string
	Person       string
	Tense        string
	Mood         string
	Voice        string
	Other        []string
}

// ParseTags decomposes a comma-separated tag string into Grammemes. Part of
// speech, when present, is always the first token.
func ParseTags(tags string) Grammemes {
	var g Grammemes
	if tags == "" {
		return g
	}

	tokens := strings.Split(tags, ",")
	if posTags.has(tokens[0]) {
		g.PartOfSpeech = tokens[0]
	}

	for _, tok := range tokens {
		switch {
		case tok == g.PartOfSpeech:
			// already consumed above
		case caseTags.has(tok):
			g.Case = tok
		case numberTags.has(tok):
			g.Number = tok
		case genderTags.has(tok):
			g.Gender = tok
		case personTags.has(tok):
			g.Person = tok
		case tenseTags.has(tok):
			g.Tense = tok
		case moodTags.has(tok):
			g.Mood = tok
		case voiceTags.has(tok):
			g.Voice = tok
		default:
			g.Other = append(g.Other, tok)
		}
	}
	return g
}
