package wizard

import "github.com/Aman-CERP/indexwiz/internal/schema"

// Level is how much of a text field ends up in the index.
type Level int

const (
	LevelNone Level = iota
	LevelUntokenized
	LevelBasic
	LevelFreqs
	LevelPositions
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelUntokenized:
		return "untokenized"
	case LevelBasic:
		return "basic"
	case LevelFreqs:
		return "freqs"
	case LevelPositions:
		return "positions"
	default:
		return "unknown"
	}
}

// textIndexingChain is asked in order. The first "no" settles the level;
// answering "yes" to all of them selects LevelPositions.
var textIndexingChain = []struct {
	question string
	onNo     Level
}{
	{"Should the field be indexed", LevelNone},
	{"Should the term be tokenized?", LevelUntokenized},
	{"Should the term frequencies (per doc) be in the index", LevelBasic},
	{"Should the term positions (per doc) be in the index", LevelFreqs},
}

var levelIndexing = map[Level]struct {
	tokenized bool
	record    schema.IndexRecordOption
}{
	LevelUntokenized: {false, schema.RecordBasic},
	LevelBasic:       {true, schema.RecordBasic},
	LevelFreqs:       {true, schema.RecordWithFreqs},
	LevelPositions:   {true, schema.RecordWithFreqsAndPositions},
}

// Indexing returns the text indexing options for the level, or nil when
// the field is not indexed.
func (l Level) Indexing(tokenizer string) *schema.TextIndexing {
	opts, ok := levelIndexing[l]
	if !ok {
		return nil
	}
	return &schema.TextIndexing{
		Tokenizer: tokenizer,
		Tokenized: opts.tokenized,
		Record:    opts.record,
	}
}

// askTextLevel walks the indexing chain and returns the selected level.
func (w *Wizard) askTextLevel() (Level, error) {
	for _, step := range textIndexingChain {
		yes, err := w.prompter.YesNo(step.question)
		if err != nil {
			return LevelNone, err
		}
		if !yes {
			return step.onNo, nil
		}
	}
	return LevelPositions, nil
}
