package store

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/lang/cjk"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/mapping"

	wizerrors "github.com/Aman-CERP/indexwiz/internal/errors"
	"github.com/Aman-CERP/indexwiz/internal/schema"
)

// WordSegmentAnalyzerName is the analyzer every indexed text field uses.
// It runs the word_segment tokenizer, folds full/half width forms, lower
// cases, and joins adjacent ideographs into bigrams.
const WordSegmentAnalyzerName = "word_segment_cjk"

// BuildMapping translates a schema into a static bleve index mapping.
// Only the schema's fields are mapped; other document properties are ignored.
func BuildMapping(s *schema.Schema) (*mapping.IndexMappingImpl, error) {
	indexMapping := bleve.NewIndexMapping()

	err := indexMapping.AddCustomAnalyzer(WordSegmentAnalyzerName, map[string]interface{}{
		"type":      custom.Name,
		"tokenizer": WordSegmentTokenizerName,
		"token_filters": []string{
			cjk.WidthName,
			lowercase.Name,
			cjk.BigramName,
		},
	})
	if err != nil {
		return nil, wizerrors.New(wizerrors.ErrCodeMapping, "failed to add word segmentation analyzer", err)
	}
	indexMapping.DefaultAnalyzer = WordSegmentAnalyzerName

	docMapping := bleve.NewDocumentStaticMapping()
	for _, f := range s.Fields() {
		fm, err := fieldMapping(f)
		if err != nil {
			return nil, err
		}
		docMapping.AddFieldMappingsAt(f.Name, fm)
	}
	indexMapping.DefaultMapping = docMapping
	indexMapping.StoreDynamic = false
	indexMapping.IndexDynamic = false
	indexMapping.DocValuesDynamic = false

	if err := indexMapping.Validate(); err != nil {
		return nil, wizerrors.New(wizerrors.ErrCodeMapping, "invalid index mapping", err)
	}
	return indexMapping, nil
}

func fieldMapping(f schema.FieldEntry) (*mapping.FieldMapping, error) {
	switch f.Kind {
	case schema.KindText:
		fm := bleve.NewTextFieldMapping()
		fm.Store = f.Stored
		fm.Index = f.Indexed
		fm.IncludeInAll = false
		fm.DocValues = false
		fm.IncludeTermVectors = false
		if f.Text != nil {
			fm.Analyzer = WordSegmentAnalyzerName
			fm.IncludeTermVectors = f.Text.RecordPositions()
		}
		return fm, nil
	case schema.KindU64:
		fm := bleve.NewNumericFieldMapping()
		fm.Store = f.Stored
		fm.Index = f.Indexed
		fm.IncludeInAll = false
		fm.DocValues = f.Fast
		return fm, nil
	default:
		return nil, wizerrors.New(wizerrors.ErrCodeMapping,
			fmt.Sprintf("field %q has unsupported kind %q", f.Name, f.Kind), nil)
	}
}
