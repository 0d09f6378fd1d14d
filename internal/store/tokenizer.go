package store

import (
	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/registry"
	"github.com/blevesearch/segment"
)

// WordSegmentTokenizerName is the registry name of the word segmentation tokenizer.
const WordSegmentTokenizerName = "word_segment"

func init() {
	registry.RegisterTokenizer(WordSegmentTokenizerName, wordSegmentTokenizerConstructor)
}

func wordSegmentTokenizerConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.Tokenizer, error) {
	return &wordSegmentTokenizer{}, nil
}

// wordSegmentTokenizer splits text on Unicode word boundaries (UAX #29).
// Scripts written without spaces come out one ideograph or kana run per
// token; the analyzer pairs them up afterwards.
type wordSegmentTokenizer struct{}

// Tokenize implements analysis.Tokenizer.
func (t *wordSegmentTokenizer) Tokenize(input []byte) analysis.TokenStream {
	result := make(analysis.TokenStream, 0, len(input)/4+1)

	segmenter := segment.NewWordSegmenterDirect(input)
	start := 0
	pos := 1
	for segmenter.Segment() {
		seg := segmenter.Bytes()
		end := start + len(seg)
		if tokType, ok := tokenType(segmenter.Type()); ok {
			result = append(result, &analysis.Token{
				Term:     seg,
				Start:    start,
				End:      end,
				Position: pos,
				Type:     tokType,
			})
			pos++
		}
		start = end
	}

	return result
}

// tokenType maps a segment type to a token type; punctuation and spaces
// are dropped.
func tokenType(segType int) (analysis.TokenType, bool) {
	switch segType {
	case segment.Ideo, segment.Kana:
		return analysis.Ideographic, true
	case segment.Number:
		return analysis.Numeric, true
	case segment.Letter:
		return analysis.AlphaNumeric, true
	default:
		return 0, false
	}
}
