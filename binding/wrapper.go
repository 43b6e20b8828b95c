package main

import (
	// #include <stdlib.h>
	"C"
	"encoding/json"
	"unsafe"

	"github.com/steosofficial/sanskritmorphy/config"
	"github.com/steosofficial/sanskritmorphy/lexicon"
	"github.com/steosofficial/sanskritmorphy/sandhi"
	"github.com/steosofficial/sanskritmorphy/scoring"
	"github.com/steosofficial/sanskritmorphy/segment"
)

var activeSegmenter *segment.Segmenter

// jsonWord is the wire shape SegmentText emits: the lexicon's opaque
// analysis is reduced to its lemma and raw tags, since the analysis
// interface itself is not meant to cross the C boundary.
type jsonWord struct {
	Surface string `json:"surface"`
	Lemma   string `json:"lemma"`
	Tags    string `json:"tags"`
}

//export CreateSegmenter
func CreateSegmenter(configPath *C.char) C.int {
	cfg, err := config.Load(C.GoString(configPath))
	if err != nil {
		return 0
	}

	rules, err := sandhi.LoadRulesCSV(cfg.SandhiRules)
	if err != nil {
		return 0
	}
	lex, err := lexicon.LoadDAWG(cfg.LexiconPath)
	if err != nil {
		return 0
	}
	model, err := scoring.LoadModel(cfg.LemmaCounts, cfg.TransitionCounts)
	if err != nil {
		return 0
	}

	activeSegmenter = segment.NewSegmenter(sandhi.NewSplitter(rules), lex, model)
	return 1
}

//export SegmentText
func SegmentText(text *C.char) *C.char {
	if activeSegmenter == nil {
		return C.CString("[]")
	}

	words, err := activeSegmenter.Segment(C.GoString(text))
	if err != nil {
		return C.CString("[]")
	}

	out := make([]jsonWord, len(words))
	for i, w := range words {
		out[i] = jsonWord{Surface: w.Text, Lemma: w.Lemma(), Tags: lexicon.Tags(w.Analysis)}
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return C.CString("[]")
	}
	return C.CString(string(payload))
}

//export FreeString
func FreeString(str *C.char) {
	if str != nil {
		C.free(unsafe.Pointer(str))
	}
}

//export ReleaseSegmenter
func ReleaseSegmenter() {
	if activeSegmenter == nil {
		return
	}
	if dawg, ok := activeSegmenter.Lexicon().(*lexicon.DAWG); ok {
		_ = dawg.Close()
	}
	activeSegmenter = nil
}

func main() {}
