package schema

import (
	"encoding/json"
	"fmt"

	wizerrors "github.com/Aman-CERP/indexwiz/internal/errors"
)

// Schema is a finalized, ordered set of uniquely named fields.
type Schema struct {
	fields []FieldEntry
}

// Fields returns a copy of the schema's fields in declaration order.
func (s *Schema) Fields() []FieldEntry {
	out := make([]FieldEntry, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a field by name.
func (s *Schema) Field(name string) (FieldEntry, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldEntry{}, false
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// MarshalJSON encodes the schema as an array of field entries.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.fields)
}

// ToPrettyJSON returns the indented JSON form used for display.
func (s *Schema) ToPrettyJSON() (string, error) {
	b, err := json.MarshalIndent(s.fields, "", "  ")
	if err != nil {
		return "", wizerrors.New(wizerrors.ErrCodeSchemaEncode, "failed to encode schema", err)
	}
	return string(b), nil
}

// FromJSON decodes a schema produced by MarshalJSON, re-applying the
// builder's name checks.
func FromJSON(data []byte) (*Schema, error) {
	var entries []FieldEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, wizerrors.New(wizerrors.ErrCodeSchemaEncode, "failed to decode schema", err)
	}

	b := NewBuilder()
	for _, e := range entries {
		if err := b.add(e); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Builder accumulates field entries. Names must be unique.
type Builder struct {
	fields []FieldEntry
	names  map[string]struct{}
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{names: make(map[string]struct{})}
}

// Has reports whether a field with this name was already added.
func (b *Builder) Has(name string) bool {
	_, ok := b.names[name]
	return ok
}

// Len returns the number of fields added so far.
func (b *Builder) Len() int {
	return len(b.fields)
}

// AddTextField adds a text field. A nil indexing means the field is not
// indexed.
func (b *Builder) AddTextField(name string, stored bool, indexing *TextIndexing) error {
	entry := FieldEntry{
		Name:    name,
		Kind:    KindText,
		Stored:  stored,
		Indexed: indexing != nil,
	}
	if indexing != nil {
		ti := *indexing
		entry.Text = &ti
	}
	return b.add(entry)
}

// AddU64Field adds an unsigned integer field.
func (b *Builder) AddU64Field(name string, stored, fast, indexed bool) error {
	return b.add(FieldEntry{
		Name:    name,
		Kind:    KindU64,
		Stored:  stored,
		Fast:    fast,
		Indexed: indexed,
	})
}

func (b *Builder) add(entry FieldEntry) error {
	if !IsValidFieldName(entry.Name) {
		return wizerrors.New(wizerrors.ErrCodeInvalidFieldName,
			fmt.Sprintf("invalid field name: %q", entry.Name), nil)
	}
	if b.Has(entry.Name) {
		return wizerrors.New(wizerrors.ErrCodeDuplicateField,
			"field already defined: "+entry.Name, nil)
	}
	if entry.Kind == KindText && entry.Indexed && entry.Text == nil {
		return wizerrors.ValidationError("indexed text field without indexing options: "+entry.Name, nil)
	}
	b.names[entry.Name] = struct{}{}
	b.fields = append(b.fields, entry)
	return nil
}

// Build finalizes the schema. At least one field is required.
func (b *Builder) Build() (*Schema, error) {
	if len(b.fields) == 0 {
		return nil, wizerrors.New(wizerrors.ErrCodeEmptySchema, "schema must have at least one field", nil)
	}
	fields := make([]FieldEntry, len(b.fields))
	copy(fields, b.fields)
	return &Schema{fields: fields}, nil
}
