// Package store creates and inspects bleve indexes described by a schema.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blevesearch/bleve/v2"

	wizerrors "github.com/Aman-CERP/indexwiz/internal/errors"
	"github.com/Aman-CERP/indexwiz/internal/schema"
)

// schemaKey is the internal key the schema description is stored under.
var schemaKey = []byte("_indexwiz_schema")

// Create creates an empty index in dir for the given schema and records the
// schema inside it. dir may already exist as long as it holds no index.
// A lock file inside dir keeps concurrent creations apart.
func Create(ctx context.Context, dir string, s *schema.Schema) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	indexMapping, err := BuildMapping(s)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(s)
	if err != nil {
		return wizerrors.New(wizerrors.ErrCodeSchemaEncode, "failed to encode schema", err)
	}

	lock := newCreationLock(dir)
	acquired, err := lock.TryLock()
	if err != nil {
		return wizerrors.New(wizerrors.ErrCodeIndexFailed,
			fmt.Sprintf("failed to create index in %s: %v", dir, err), err).
			WithDetail("path", dir)
	}
	if !acquired {
		return wizerrors.New(wizerrors.ErrCodeIndexLocked,
			fmt.Sprintf("another process is creating an index in %s", dir), nil).
			WithDetail("path", dir)
	}
	defer func() { _ = lock.Unlock() }()

	idx, err := bleve.New(dir, indexMapping)
	if errors.Is(err, bleve.ErrorIndexPathExists) {
		return wizerrors.New(wizerrors.ErrCodeIndexExists,
			fmt.Sprintf("an index already exists in %s", dir), err).
			WithDetail("path", dir).
			WithSuggestion("Choose another directory or remove the existing index first")
	}
	if err != nil {
		return wizerrors.New(wizerrors.ErrCodeIndexFailed,
			fmt.Sprintf("failed to create index in %s: %v", dir, err), err).
			WithDetail("path", dir)
	}

	if err := idx.SetInternal(schemaKey, encoded); err != nil {
		_ = idx.Close()
		return wizerrors.New(wizerrors.ErrCodeIndexFailed, "failed to record schema in index", err).
			WithDetail("path", dir)
	}

	if err := idx.Close(); err != nil {
		return wizerrors.New(wizerrors.ErrCodeIndexFailed, "failed to close index", err).
			WithDetail("path", dir)
	}

	slog.Info("index_created",
		slog.String("path", dir),
		slog.Int("fields", s.Len()))
	return nil
}

// Info describes an index created by Create.
type Info struct {
	Schema   *schema.Schema
	Mapping  json.RawMessage
	DocCount uint64
}

// Inspect opens the index in dir and returns its recorded schema and
// bleve mapping.
func Inspect(dir string) (*Info, error) {
	idx, err := bleve.Open(dir)
	if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) || errors.Is(err, bleve.ErrorIndexMetaMissing) {
		return nil, wizerrors.New(wizerrors.ErrCodeIndexNotFound,
			fmt.Sprintf("no index found in %s", dir), err).
			WithSuggestion("Create one with 'indexwiz new --index " + dir + "'")
	}
	if err != nil {
		return nil, wizerrors.New(wizerrors.ErrCodeIndexFailed,
			fmt.Sprintf("failed to open index in %s: %v", dir, err), err)
	}
	defer func() { _ = idx.Close() }()

	raw, err := idx.GetInternal(schemaKey)
	if err != nil {
		return nil, wizerrors.New(wizerrors.ErrCodeIndexFailed, "failed to read schema from index", err)
	}
	if len(raw) == 0 {
		return nil, wizerrors.New(wizerrors.ErrCodeSchemaMissing,
			fmt.Sprintf("index in %s has no recorded schema", dir), nil).
			WithSuggestion("Only indexes created by 'indexwiz new' carry a schema")
	}

	s, err := schema.FromJSON(raw)
	if err != nil {
		return nil, err
	}

	mappingJSON, err := json.Marshal(idx.Mapping())
	if err != nil {
		return nil, wizerrors.New(wizerrors.ErrCodeSchemaEncode, "failed to encode index mapping", err)
	}

	count, err := idx.DocCount()
	if err != nil {
		return nil, wizerrors.New(wizerrors.ErrCodeIndexFailed, "failed to count documents", err)
	}

	return &Info{Schema: s, Mapping: mappingJSON, DocCount: count}, nil
}

// ReadSchema returns the schema recorded in the index in dir.
func ReadSchema(dir string) (*schema.Schema, error) {
	info, err := Inspect(dir)
	if err != nil {
		return nil, err
	}
	return info.Schema, nil
}

// BleveCreator creates indexes with Create.
type BleveCreator struct{}

// Create implements the wizard's index creator.
func (BleveCreator) Create(ctx context.Context, dir string, s *schema.Schema) error {
	return Create(ctx, dir, s)
}
