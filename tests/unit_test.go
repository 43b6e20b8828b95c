// unit_test.go
package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/steosofficial/sanskritmorphy/config"
	"github.com/steosofficial/sanskritmorphy/lexicon"
	"github.com/steosofficial/sanskritmorphy/sandhi"
	"github.com/steosofficial/sanskritmorphy/scoring"
	"github.com/steosofficial/sanskritmorphy/segment"
	"github.com/steosofficial/sanskritmorphy/translit"
)

var segmenter *segment.Segmenter

// TestMain builds one shared Segmenter from files written the same way a
// deployment would ship them: a compiled dictionary, a sandhi rule CSV,
// the two model count tables, and a YAML config naming all four.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sanskritmorphy-tests-")
	if err != nil {
		panic(err)
	}

	segmenter, err = buildSegmenter(dir)
	if err != nil {
		os.RemoveAll(dir)
		panic(err)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func buildSegmenter(dir string) (*segment.Segmenter, error) {
	dictPath := filepath.Join(dir, "lexicon.dict")
	entries := []lexicon.Entry{
		{Word: "vAk", Lemma: "vAc", Tags: "noun,fem,nom,sg"},
		{Word: "arTO", Lemma: "arTa", Tags: "noun,masc,nom,du"},
		{Word: "vAgarTO", Lemma: "vAgarTa", Tags: "noun,masc,nom,du"},
		{Word: "iva", Lemma: "iva", Tags: "indeclinable"},
		{Word: "rAmaH", Lemma: "rAma", Tags: "noun,masc,nom,sg"},
		{Word: "gacCati", Lemma: "gam", Tags: "verb,pres,3p,sg"},
		{Word: "gajaH", Lemma: "gaja", Tags: "noun,masc,nom,sg"},
	}
	if err := lexicon.BuildDAWGFile(dictPath, entries); err != nil {
		return nil, err
	}

	// Visarga before a voiced stop fuses aH -> o; k voices to g before a
	// vowel. Both rules are undone during splitting.
	sandhiPath := filepath.Join(dir, "sandhi.csv")
	sandhiRows := "o,aH,,visarga\n" +
		"ga,k,a,consonant\n"
	if err := os.WriteFile(sandhiPath, []byte(sandhiRows), 0o644); err != nil {
		return nil, err
	}

	// The tag field of each row is the full tag string the dictionary
	// stores, so a trained analysis hashes identically to an unpacked one.
	// vAgarTa is deliberately absent: its dictionary entry exists but is
	// untrained, so the model prefers the vAk + arTO reading.
	lemmaPath := filepath.Join(dir, "lemma_counts.csv")
	lemmaRows := `rAma,"noun,masc,nom,sg",90
gam,"verb,pres,3p,sg",60
vAc,"noun,fem,nom,sg",40
arTa,"noun,masc,nom,du",40
iva,indeclinable,80
gaja,"noun,masc,nom,sg",30
`
	if err := os.WriteFile(lemmaPath, []byte(lemmaRows), 0o644); err != nil {
		return nil, err
	}

	transPath := filepath.Join(dir, "transition_counts.csv")
	transRows := `-,"noun,masc,nom,sg",70
-,"noun,fem,nom,sg",30
"noun,masc,nom,sg","verb,pres,3p,sg",50
"noun,fem,nom,sg","noun,masc,nom,du",40
"noun,masc,nom,du",indeclinable,40
`
	if err := os.WriteFile(transPath, []byte(transRows), 0o644); err != nil {
		return nil, err
	}

	cfgPath := filepath.Join(dir, "config.yaml")
	cfgBody := "sandhi_rules: " + sandhiPath + "\n" +
		"lexicon_path: " + dictPath + "\n" +
		"lemma_counts: " + lemmaPath + "\n" +
		"transition_counts: " + transPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfgBody), 0o644); err != nil {
		return nil, err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	rules, err := sandhi.LoadRulesCSV(cfg.SandhiRules)
	if err != nil {
		return nil, err
	}
	lex, err := lexicon.LoadDAWG(cfg.LexiconPath)
	if err != nil {
		return nil, err
	}
	model, err := scoring.LoadModel(cfg.LemmaCounts, cfg.TransitionCounts)
	if err != nil {
		return nil, err
	}
	return segment.NewSegmenter(sandhi.NewSplitter(rules), lex, model), nil
}

func lemmas(words []segment.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Lemma()
	}
	return out
}

func surfaces(words []segment.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func TestSegmentDictionaryWords(t *testing.T) {
	testCases := []struct {
		name            string
		text            string
		expectedLemmas  []string
		expectedSurface []string
	}{
		{
			name:            "single word",
			text:            "rAmaH",
			expectedLemmas:  []string{"rAma"},
			expectedSurface: []string{"rAmaH"},
		},
		{
			name:            "two words across a chunk boundary",
			text:            "rAmaH gacCati",
			expectedLemmas:  []string{"rAma", "gam"},
			expectedSurface: []string{"rAmaH", "gacCati"},
		},
		{
			name:            "visarga sandhi undone inside a chunk",
			text:            "rAmogacCati",
			expectedLemmas:  []string{"rAma", "gam"},
			expectedSurface: []string{"rAmaH", "gacCati"},
		},
		{
			name:            "whitespace is canonicalized",
			text:            "  rAmaH   gacCati  ",
			expectedLemmas:  []string{"rAma", "gam"},
			expectedSurface: []string{"rAmaH", "gacCati"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			words, err := segmenter.Segment(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.expectedLemmas, lemmas(words))
			require.Equal(t, tc.expectedSurface, surfaces(words))
		})
	}
}

// "vAgarTO" is ambiguous: a rare dictionary compound, or vAk + arTO with
// the k/g voicing undone. The trained counts cover the two-word reading
// only, so the search must recover it over the untrained compound.
func TestSegmentPrefersTrainedReading(t *testing.T) {
	words, err := segmenter.Segment("vAgarTO iva")
	require.NoError(t, err)
	require.Equal(t, []string{"vAc", "arTa", "iva"}, lemmas(words))
	require.Equal(t, []string{"vAk", "arTO", "iva"}, surfaces(words))
}

func TestSegmentJunkPassthrough(t *testing.T) {
	words, err := segmenter.Segment("123")
	require.NoError(t, err)
	require.Len(t, words, 1)
	require.Equal(t, "123", words[0].Text)
	require.Equal(t, lexicon.None, words[0].Analysis)
}

func TestSegmentJunkThenSanskrit(t *testing.T) {
	words, err := segmenter.Segment("12 rAmaH")
	require.NoError(t, err)
	require.Len(t, words, 2)
	require.Equal(t, "12", words[0].Text)
	require.Equal(t, lexicon.None, words[0].Analysis)
	require.Equal(t, "rAma", words[1].Lemma())
}

func TestSegmentEmptyAndWhitespace(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		words, err := segmenter.Segment(text)
		require.NoError(t, err)
		require.Empty(t, words)
	}
}

// The full front door: IAST input is transliterated to the internal
// alphabet before segmentation, the way a CLI caller would chain the two.
func TestTransliterateThenSegment(t *testing.T) {
	internal := translit.ToInternal("rāmaḥ gacchati")
	require.Equal(t, "rAmaH gacCati", internal)

	words, err := segmenter.Segment(internal)
	require.NoError(t, err)
	require.Equal(t, []string{"rAma", "gam"}, lemmas(words))
}

// One Segmenter value shared across goroutines: the collaborators are
// read-only after construction, so concurrent Segment calls on distinct
// inputs must not interfere.
func TestSegmentConcurrentCalls(t *testing.T) {
	texts := []string{"rAmaH gacCati", "rAmogacCati", "vAgarTO iva", "123", "gajaH"}

	done := make(chan error, len(texts)*4)
	for i := 0; i < 4; i++ {
		for _, text := range texts {
			go func(text string) {
				_, err := segmenter.Segment(text)
				done <- err
			}(text)
		}
	}
	for i := 0; i < len(texts)*4; i++ {
		require.NoError(t, <-done)
	}
}
