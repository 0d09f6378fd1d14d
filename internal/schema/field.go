// Package schema describes the fields of a search index: their names, kinds,
// and storage/indexing options. A Schema is assembled with a Builder and is
// immutable once built.
package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// FieldKind is the value type of a field.
type FieldKind string

const (
	// KindText is a UTF-8 text field.
	KindText FieldKind = "text"
	// KindU64 is an unsigned integer field.
	KindU64 FieldKind = "u64"
)

// IndexRecordOption selects how much information the inverted index keeps
// for each term of a text field.
type IndexRecordOption int

const (
	// RecordBasic records only which documents contain the term.
	RecordBasic IndexRecordOption = iota
	// RecordWithFreqs also records term frequencies per document.
	RecordWithFreqs
	// RecordWithFreqsAndPositions also records term positions per document.
	RecordWithFreqsAndPositions
)

var recordNames = map[IndexRecordOption]string{
	RecordBasic:                 "basic",
	RecordWithFreqs:             "freq",
	RecordWithFreqsAndPositions: "position",
}

// String returns the serialized name of the option.
func (o IndexRecordOption) String() string {
	if name, ok := recordNames[o]; ok {
		return name
	}
	return fmt.Sprintf("IndexRecordOption(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o IndexRecordOption) MarshalText() ([]byte, error) {
	name, ok := recordNames[o]
	if !ok {
		return nil, fmt.Errorf("unknown index record option %d", int(o))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *IndexRecordOption) UnmarshalText(text []byte) error {
	for opt, name := range recordNames {
		if name == string(text) {
			*o = opt
			return nil
		}
	}
	return fmt.Errorf("unknown index record option %q", string(text))
}

// TextIndexing holds the indexing options of an indexed text field.
type TextIndexing struct {
	Tokenizer string            `json:"tokenizer"`
	Tokenized bool              `json:"tokenized"`
	Record    IndexRecordOption `json:"record"`
}

// RecordFrequencies reports whether term frequencies are kept.
func (t TextIndexing) RecordFrequencies() bool {
	return t.Record >= RecordWithFreqs
}

// RecordPositions reports whether term positions are kept.
func (t TextIndexing) RecordPositions() bool {
	return t.Record == RecordWithFreqsAndPositions
}

// FieldEntry is one field of a schema.
//
// Text is set only for indexed text fields. Fast only applies to u64 fields.
type FieldEntry struct {
	Name    string
	Kind    FieldKind
	Stored  bool
	Indexed bool
	Fast    bool
	Text    *TextIndexing
}

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// IsValidFieldName reports whether name is a non-empty run of ASCII letters,
// digits and underscores.
func IsValidFieldName(name string) bool {
	return fieldNamePattern.MatchString(name)
}

type textOptionsJSON struct {
	Indexing *TextIndexing `json:"indexing"`
	Stored   bool          `json:"stored"`
}

type u64OptionsJSON struct {
	Indexed bool `json:"indexed"`
	Fast    bool `json:"fast"`
	Stored  bool `json:"stored"`
}

type fieldEntryJSON struct {
	Name    string          `json:"name"`
	Type    FieldKind       `json:"type"`
	Options json.RawMessage `json:"options"`
}

// MarshalJSON encodes the entry as {"name", "type", "options"} where the
// options object depends on the field kind.
func (f FieldEntry) MarshalJSON() ([]byte, error) {
	var opts any
	switch f.Kind {
	case KindText:
		opts = textOptionsJSON{Indexing: f.Text, Stored: f.Stored}
	case KindU64:
		opts = u64OptionsJSON{Indexed: f.Indexed, Fast: f.Fast, Stored: f.Stored}
	default:
		return nil, fmt.Errorf("field %q: unknown kind %q", f.Name, f.Kind)
	}

	raw, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fieldEntryJSON{Name: f.Name, Type: f.Kind, Options: raw})
}

// UnmarshalJSON decodes an entry produced by MarshalJSON.
func (f *FieldEntry) UnmarshalJSON(data []byte) error {
	var raw fieldEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	entry := FieldEntry{Name: raw.Name, Kind: raw.Type}
	switch raw.Type {
	case KindText:
		var opts textOptionsJSON
		if err := json.Unmarshal(raw.Options, &opts); err != nil {
			return fmt.Errorf("field %q: %w", raw.Name, err)
		}
		entry.Stored = opts.Stored
		entry.Text = opts.Indexing
		entry.Indexed = opts.Indexing != nil
	case KindU64:
		var opts u64OptionsJSON
		if err := json.Unmarshal(raw.Options, &opts); err != nil {
			return fmt.Errorf("field %q: %w", raw.Name, err)
		}
		entry.Stored = opts.Stored
		entry.Fast = opts.Fast
		entry.Indexed = opts.Indexed
	default:
		return fmt.Errorf("field %q: unknown type %q", raw.Name, raw.Type)
	}

	*f = entry
	return nil
}
