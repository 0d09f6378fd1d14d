// Package wizard walks a user through defining an index schema and then
// creates the index on disk.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	wizerrors "github.com/Aman-CERP/indexwiz/internal/errors"
	"github.com/Aman-CERP/indexwiz/internal/output"
	"github.com/Aman-CERP/indexwiz/internal/prompt"
	"github.com/Aman-CERP/indexwiz/internal/schema"
	"github.com/Aman-CERP/indexwiz/internal/store"
)

// DefaultDirMode is the permission used for a new index directory.
const DefaultDirMode os.FileMode = 0o755

// Creator creates an index described by a schema in dir.
type Creator interface {
	Create(ctx context.Context, dir string, s *schema.Schema) error
}

// FatalFunc handles errors the wizard cannot recover from. The default logs
// the error and exits the process.
type FatalFunc func(err error)

// Wizard asks for field definitions and creates the resulting index.
type Wizard struct {
	prompter *prompt.Prompter
	out      *output.Writer
	creator  Creator
	dirMode  os.FileMode
	fatal    FatalFunc
	logger   *slog.Logger
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithDirMode sets the permission of the index directory.
func WithDirMode(mode os.FileMode) Option {
	return func(w *Wizard) {
		w.dirMode = mode
	}
}

// WithFatal replaces the handler for unrecoverable errors.
func WithFatal(fn FatalFunc) Option {
	return func(w *Wizard) {
		if fn != nil {
			w.fatal = fn
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Wizard) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Wizard that reads answers through p, reports on out and
// hands the finished schema to creator.
func New(p *prompt.Prompter, out *output.Writer, creator Creator, opts ...Option) *Wizard {
	w := &Wizard{
		prompter: p,
		out:      out,
		creator:  creator,
		dirMode:  DefaultDirMode,
		fatal:    exitOnFatal,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run defines a schema interactively and creates the index in dir.
func (w *Wizard) Run(ctx context.Context, dir string) error {
	w.out.Banner("Creating new index", "Let's define its schema!")

	b := schema.NewBuilder()
	for {
		if err := w.AskAddField(b); err != nil {
			return err
		}
		more, err := w.prompter.YesNo("Add another field")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	s, err := b.Build()
	if err != nil {
		return err
	}
	pretty, err := s.ToPrettyJSON()
	if err != nil {
		return err
	}
	w.out.Code(pretty)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.ensureDir(dir); err != nil {
		return err
	}
	w.logger.Debug("index_dir_ready", slog.String("path", dir))

	if err := w.creator.Create(ctx, dir, s); err != nil {
		w.logger.Error("index_create_failed",
			slog.String("path", dir),
			slog.Any("error", wizerrors.FormatForLog(err)))
		if wizerrors.GetCode(err) != "" || errors.Is(err, context.Canceled) {
			return err
		}
		return wizerrors.New(wizerrors.ErrCodeIndexFailed,
			fmt.Sprintf("failed to create index in %s", dir), err)
	}

	w.out.Successf("Index created in %s", dir)
	return nil
}

// AskAddField asks for one field definition and adds it to b.
func (w *Wizard) AskAddField(b *schema.Builder) error {
	w.out.Newlines(2)

	name, err := w.prompter.Input("New field name ", prompt.All(
		prompt.ValidateFieldName,
		prompt.ValidateUndefinedName(b.Has),
	))
	if err != nil {
		return err
	}

	kind, err := w.prompter.Options("Text or unsigned 32-bit integer", 'T', 'I')
	if err != nil {
		return err
	}

	if kind == 'T' {
		err = w.askTextField(b, name)
	} else {
		err = w.askU64Field(b, name)
	}
	if err != nil {
		return err
	}
	w.logger.Debug("field_added", slog.String("name", name), slog.Int("fields", b.Len()))
	return nil
}

func (w *Wizard) askTextField(b *schema.Builder, name string) error {
	stored, err := w.prompter.YesNo("Should the field be stored")
	if err != nil {
		return err
	}
	level, err := w.askTextLevel()
	if err != nil {
		return err
	}
	return b.AddTextField(name, stored, level.Indexing(store.WordSegmentTokenizerName))
}

func (w *Wizard) askU64Field(b *schema.Builder, name string) error {
	stored, err := w.prompter.YesNo("Should the field be stored")
	if err != nil {
		return err
	}
	fast, err := w.prompter.YesNo("Should the field be fast")
	if err != nil {
		return err
	}
	indexed, err := w.prompter.YesNo("Should the field be indexed")
	if err != nil {
		return err
	}
	return b.AddU64Field(name, stored, fast, indexed)
}

// ensureDir creates dir unless it already exists. Other failures go to the
// fatal handler.
func (w *Wizard) ensureDir(dir string) error {
	err := os.Mkdir(dir, w.dirMode)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}
	werr := wizerrors.IOError(fmt.Sprintf("failed to create directory %s", dir), err).
		WithSuggestion("Check that the parent directory exists and is writable")
	w.fatal(werr)
	return werr
}

func exitOnFatal(err error) {
	slog.Error("fatal", slog.Any("error", wizerrors.FormatForLog(err)))
	_, _ = fmt.Fprint(os.Stderr, wizerrors.FormatForCLI(err))
	os.Exit(1)
}
