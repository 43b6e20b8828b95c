package scoring

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/steosofficial/sanskritmorphy/lexicon"
	"github.com/steosofficial/sanskritmorphy/sanskriterr"
)

// LoadModel reads the two count tables and builds a Model.
// lemmaCountsPath rows are "lemma,tags,count"; transitionCountsPath
// rows are "prev_tags,cur_tags,count", both taken as raw counts and
// converted to a fixed-point log-probability scale.
//
// The analyses referenced by the count files are built fresh via
// lexicon.NewAnalysis(lemma, tags), matching how the lexicon backends
// construct their own taggedAnalysis values, so hashing agrees between a
// lexicon-unpacked analysis and one reconstructed here from text.
func LoadModel(lemmaCountsPath, transitionCountsPath string) (*Model, error) {
	lemmaCounts, lemmaTotal, err := loadLemmaCounts(lemmaCountsPath)
	if err != nil {
		return nil, err
	}
	transitionCounts, transitionTotal, err := loadTransitionCounts(transitionCountsPath)
	if err != nil {
		return nil, err
	}

	lemmaScore := make(map[uint64]int32, len(lemmaCounts))
	for key, count := range lemmaCounts {
		lemmaScore[key] = scaleLogProb(count, lemmaTotal)
	}
	transitionScore := make(map[uint64]int32, len(transitionCounts))
	for key, count := range transitionCounts {
		transitionScore[key] = scaleLogProb(count, transitionTotal)
	}

	return NewModel(lemmaScore, transitionScore, 0), nil
}

// scale converts a log-probability in nats to the model's fixed-point
// integer scale, matching the precision the floor constant is chosen at.
const scale = 1000.0

func scaleLogProb(count, total int64) int32 {
	if count <= 0 || total <= 0 {
		return floorLogProb
	}
	lp := math.Log(float64(count) / float64(total))
	scaled := int32(lp * scale)
	if scaled < floorLogProb {
		return floorLogProb
	}
	return scaled
}

func loadLemmaCounts(path string) (map[uint64]int64, int64, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, 0, err
	}
	counts := make(map[uint64]int64, len(rows))
	var total int64
	for i, row := range rows {
		if len(row) != 3 {
			return nil, 0, fmt.Errorf("%w: %q row %d: expected 3 fields, got %d", sanskriterr.ErrConfigLoad, path, i, len(row))
		}
		lemma, tags, countStr := row[0], row[1], row[2]
		n, err := parseCount(countStr)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %q row %d: %v", sanskriterr.ErrConfigLoad, path, i, err)
		}
		key := lemmaKey(lexicon.NewAnalysis(lemma, tags))
		counts[key] += n
		total += n
	}
	return counts, total, nil
}

func loadTransitionCounts(path string) (map[uint64]int64, int64, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, 0, err
	}
	counts := make(map[uint64]int64, len(rows))
	var total int64
	for i, row := range rows {
		if len(row) != 3 {
			return nil, 0, fmt.Errorf("%w: %q row %d: expected 3 fields, got %d", sanskriterr.ErrConfigLoad, path, i, len(row))
		}
		prevTags, curTags, countStr := row[0], row[1], row[2]
		n, err := parseCount(countStr)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %q row %d: %v", sanskriterr.ErrConfigLoad, path, i, err)
		}
		key := transitionKey(analysisForTags(prevTags), analysisForTags(curTags))
		counts[key] += n
		total += n
	}
	return counts, total, nil
}

// analysisForTags builds the sentinel None analysis for the conventional
// "start of phrase" tag marker, or a tagged analysis otherwise. Transition
// rows only need to hash consistently with what Score passes in, so the
// lemma field is irrelevant and left blank.
func analysisForTags(tags string) lexicon.Analysis {
	if tags == "" || tags == "-" {
		return lexicon.None
	}
	return lexicon.NewAnalysis("", tags)
}

func parseCount(s string) (int64, error) {
	var n int64
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", s, err)
	}
	return n, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %v", sanskriterr.ErrConfigLoad, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %v", sanskriterr.ErrConfigLoad, path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
