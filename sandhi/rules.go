package sandhi

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/steosofficial/sanskritmorphy/sanskriterr"
)

// Rule is one row of the sandhi rule table: a fused form F that may be
// undone into a left part (attributed to the preceding word) and a right
// part (attributed to the following word). Kind is a free-form tag (e.g.
// "vowel", "consonant", "visarga", "chunk"); a split made by a rule of kind
// "chunk" has Split.IsEndOfChunk set. Split.IsValid does not consult Kind:
// it checks only the final sound of the first part.
type Rule struct {
	Left, Right, Kind string
}

// RuleTable maps a fused form to every rule that can undo it. A fused form
// can be ambiguous, so the slice may hold more than one candidate.
type RuleTable map[string][]Rule

// LoadRulesCSV reads a sandhi rule file where each row is (fused_form,
// left_part, right_part, kind).
func LoadRulesCSV(path string) (RuleTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening sandhi rules %q: %v", sanskriterr.ErrConfigLoad, path, err)
	}
	defer f.Close()
	return parseRulesCSV(f)
}

func parseRulesCSV(r io.Reader) (RuleTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	table := make(RuleTable)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parsing sandhi rules: %v", sanskriterr.ErrConfigLoad, err)
		}
		fused, left, right, kind := record[0], record[1], record[2], record[3]
		table[fused] = append(table[fused], Rule{Left: left, Right: right, Kind: kind})
	}
	return table, nil
}
