package wizard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wizerrors "github.com/Aman-CERP/indexwiz/internal/errors"
	"github.com/Aman-CERP/indexwiz/internal/output"
	"github.com/Aman-CERP/indexwiz/internal/prompt"
	"github.com/Aman-CERP/indexwiz/internal/schema"
	"github.com/Aman-CERP/indexwiz/internal/store"
	"github.com/Aman-CERP/indexwiz/internal/ui"
)

type recordingCreator struct {
	calls  int
	dir    string
	schema *schema.Schema
	err    error
}

func (c *recordingCreator) Create(_ context.Context, dir string, s *schema.Schema) error {
	c.calls++
	c.dir = dir
	c.schema = s
	return c.err
}

func newTestWizard(t *testing.T, answers string, opts ...Option) (*Wizard, *bytes.Buffer, *recordingCreator) {
	t.Helper()
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(answers), &out)
	creator := &recordingCreator{}
	opts = append([]Option{WithFatal(func(error) {})}, opts...)
	return New(p, output.New(&out, ui.NoColorStyles()), creator, opts...), &out, creator
}

func positionsField(name string) schema.FieldEntry {
	return schema.FieldEntry{
		Name:    name,
		Kind:    schema.KindText,
		Stored:  true,
		Indexed: true,
		Text: &schema.TextIndexing{
			Tokenizer: store.WordSegmentTokenizerName,
			Tokenized: true,
			Record:    schema.RecordWithFreqsAndPositions,
		},
	}
}

func TestRun_SingleTextField(t *testing.T) {
	// Given: answers for one stored text field with positions
	dir := filepath.Join(t.TempDir(), "idx")
	w, out, creator := newTestWizard(t, "title\nT\nY\nY\nY\nY\nY\nN\n")

	// When: running the wizard
	err := w.Run(context.Background(), dir)

	// Then: the directory exists and the creator got the schema
	require.NoError(t, err)
	info, statErr := os.Stat(dir)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())

	require.Equal(t, 1, creator.calls)
	assert.Equal(t, dir, creator.dir)
	assert.Equal(t, []schema.FieldEntry{positionsField("title")}, creator.schema.Fields())

	assert.Contains(t, out.String(), "Creating new index")
	assert.Contains(t, out.String(), "Let's define its schema!")
	assert.Contains(t, out.String(), `"name": "title"`)
}

func TestRun_TextNotIndexed(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "idx")
	w, _, creator := newTestWizard(t, "body\nT\nN\nN\nN\n")

	require.NoError(t, w.Run(context.Background(), dir))

	want := schema.FieldEntry{Name: "body", Kind: schema.KindText}
	assert.Equal(t, []schema.FieldEntry{want}, creator.schema.Fields())
}

func TestRun_U64Flags(t *testing.T) {
	// Given: a u64 field that is stored and indexed but not fast
	dir := filepath.Join(t.TempDir(), "idx")
	w, _, creator := newTestWizard(t, "count\ni\nY\nN\nY\nN\n")

	// When
	require.NoError(t, w.Run(context.Background(), dir))

	// Then: the three flags are recorded independently
	want := schema.FieldEntry{Name: "count", Kind: schema.KindU64, Stored: true, Indexed: true}
	assert.Equal(t, []schema.FieldEntry{want}, creator.schema.Fields())
}

func TestRun_FieldOrderFollowsAnswers(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "idx")
	answers := "title\nT\nY\nY\nY\nY\nY\nY\n" +
		"count\nI\nN\nY\nN\nN\n"
	w, _, creator := newTestWizard(t, answers)

	require.NoError(t, w.Run(context.Background(), dir))

	fields := creator.schema.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "title", fields[0].Name)
	assert.Equal(t, "count", fields[1].Name)
	assert.True(t, fields[1].Fast)
}

func TestRun_RepromptsOnInvalidAnswers(t *testing.T) {
	// Given: an invalid name, a bad type code and a bad yes/no answer
	dir := filepath.Join(t.TempDir(), "idx")
	answers := "bad name\ntitle\nX\nT\nmaybe\nY\nN\nN\n"
	w, out, creator := newTestWizard(t, answers)

	// When
	require.NoError(t, w.Run(context.Background(), dir))

	// Then: each rejection is reported and the answers after it are used
	assert.Contains(t, out.String(), "Error: Field name must match the pattern [_a-zA-Z0-9]+")
	assert.Contains(t, out.String(), "Error: Invalid input. Options are (T/I)")
	assert.Contains(t, out.String(), "Error: Invalid input. Options are (Y/N)")
	want := schema.FieldEntry{Name: "title", Kind: schema.KindText, Stored: true}
	assert.Equal(t, []schema.FieldEntry{want}, creator.schema.Fields())
}

func TestRun_RejectsDuplicateFieldName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "idx")
	answers := "title\nT\nN\nN\nY\n" +
		"title\nother\nT\nN\nN\nN\n"
	w, out, creator := newTestWizard(t, answers)

	require.NoError(t, w.Run(context.Background(), dir))

	assert.Contains(t, out.String(), "Error: Field name already defined: title")
	fields := creator.schema.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "other", fields[1].Name)
}

func TestRun_ExistingDirectoryIsUsed(t *testing.T) {
	dir := t.TempDir()
	w, _, creator := newTestWizard(t, "title\nT\nN\nN\nN\n")

	err := w.Run(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 1, creator.calls)
}

func TestRun_InputClosedCreatesNothing(t *testing.T) {
	// Given: input that ends in the middle of a field
	dir := filepath.Join(t.TempDir(), "idx")
	w, _, creator := newTestWizard(t, "title\nT\n")

	// When
	err := w.Run(context.Background(), dir)

	// Then: the run fails and nothing is created
	require.ErrorIs(t, err, prompt.ErrInputClosed)
	assert.Equal(t, 0, creator.calls)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_DirectoryFailureCallsFatal(t *testing.T) {
	// Given: a parent path that is a regular file
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))
	dir := filepath.Join(parent, "idx")

	var fatalErr error
	w, _, creator := newTestWizard(t, "title\nT\nN\nN\nN\n",
		WithFatal(func(err error) { fatalErr = err }))

	// When
	err := w.Run(context.Background(), dir)

	// Then: the fatal handler saw the error and the creator was not called
	require.Error(t, err)
	require.Error(t, fatalErr)
	assert.Equal(t, wizerrors.ErrCodeDirCreate, wizerrors.GetCode(fatalErr))
	assert.Equal(t, 0, creator.calls)
}

// fatalDirEnv tells the re-executed test binary which directory to fail on.
const fatalDirEnv = "INDEXWIZ_TEST_FATAL_DIR"

func TestRun_DirectoryFailureExitsProcess(t *testing.T) {
	if dir := os.Getenv(fatalDirEnv); dir != "" {
		// Child: the default fatal handler must end the process.
		p := prompt.New(strings.NewReader("title\nT\nN\nN\nN\n"), io.Discard)
		w := New(p, output.New(io.Discard, ui.NoColorStyles()), &recordingCreator{})
		_ = w.Run(context.Background(), dir)
		os.Exit(0)
	}

	// Given: a directory under a regular file
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

	// When: running the wizard in a child process
	cmd := exec.Command(os.Args[0], "-test.run=^TestRun_DirectoryFailureExitsProcess$")
	cmd.Env = append(os.Environ(), fatalDirEnv+"="+filepath.Join(parent, "idx"))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()

	// Then: it exits with status 1 and reports the directory error
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr.String(), wizerrors.ErrCodeDirCreate)
}

func TestRun_CreatorErrorIsWrapped(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "idx")
	w, _, creator := newTestWizard(t, "title\nT\nN\nN\nN\n")
	creator.err = errors.New("disk full")

	err := w.Run(context.Background(), dir)

	require.Error(t, err)
	assert.Equal(t, wizerrors.ErrCodeIndexFailed, wizerrors.GetCode(err))
	assert.Contains(t, err.Error(), dir)
}

func TestRun_CodedCreatorErrorIsKept(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "idx")
	w, _, creator := newTestWizard(t, "title\nT\nN\nN\nN\n")
	creator.err = wizerrors.New(wizerrors.ErrCodeIndexExists, "index already exists", nil)

	err := w.Run(context.Background(), dir)

	assert.Equal(t, wizerrors.ErrCodeIndexExists, wizerrors.GetCode(err))
}

func TestRun_CancelledContextCreatesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "idx")
	w, _, creator := newTestWizard(t, "title\nT\nN\nN\nN\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Run(ctx, dir)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, creator.calls)
}

func TestRun_WithBleveCreator(t *testing.T) {
	// Given: the real store behind the wizard
	dir := filepath.Join(t.TempDir(), "idx")
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("title\nT\nY\nY\nY\nY\nY\nN\n"), &out)
	w := New(p, output.New(&out, ui.NoColorStyles()), store.BleveCreator{},
		WithFatal(func(error) {}))

	// When
	require.NoError(t, w.Run(context.Background(), dir))

	// Then: the schema can be read back from the index
	s, err := store.ReadSchema(dir)
	require.NoError(t, err)
	assert.Equal(t, []schema.FieldEntry{positionsField("title")}, s.Fields())
	assert.Contains(t, out.String(), "Index created in "+dir)
}

func TestAskAddField_PromptText(t *testing.T) {
	w, out, _ := newTestWizard(t, "n\nI\nN\nN\nN\n")
	b := schema.NewBuilder()

	require.NoError(t, w.AskAddField(b))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "\n\n"))
	assert.Contains(t, text, "New field name ")
	assert.Contains(t, text, "Text or unsigned 32-bit integer (T/I)")
	assert.Contains(t, text, "Should the field be fast (Y/N)")
	assert.Equal(t, 1, b.Len())
}
