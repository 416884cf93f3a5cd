package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var (
	// ErrOpen indicates the ride database could not be opened.
	ErrOpen = errors.New("catalog: cannot open ride database")

	// ErrFieldCount indicates a data line without exactly FieldCount fields.
	ErrFieldCount = errors.New("catalog: invalid field count")

	// ErrRead indicates the underlying reader failed mid-stream.
	ErrRead = errors.New("catalog: read failed")
)

const (
	// FieldCount is the number of fields every data line must carry.
	FieldCount = 3

	// DefaultDelimiter separates fields on a data line.
	DefaultDelimiter = '^'

	// maxLineBytes bounds a single line; longer lines fail with ErrRead.
	maxLineBytes = 1 << 20

	// maxExactCost is the first cost magnitude a float64 can no longer hold exactly.
	maxExactCost = 1 << 53
)

// LoadError carries the location of a fatal load failure.
type LoadError struct {
	Path   string // optional: source file path
	Line   int    // 1-based line number, 0 if not line specific
	Fields int    // field count seen on Line (ErrFieldCount only)
	Err    error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := "catalog: load failed"
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Line > 0 {
		base += fmt.Sprintf(" at line %d", e.Line)
	}
	if errors.Is(e.Err, ErrFieldCount) {
		base += fmt.Sprintf("; want %d fields but got %d", FieldCount, e.Fields)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Option configures Load and Parse.
type Option func(*Options)

// Options holds loader settings. Use DefaultOptions and the With* helpers.
type Options struct {
	// Delimiter separates the three fields of a data line.
	Delimiter rune

	// Header, when true, discards the first line of the source.
	Header bool

	// Logger receives one Debug record per skipped row.
	Logger *slog.Logger
}

// DefaultOptions returns caret-delimited input with a header row and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Delimiter: DefaultDelimiter,
		Header:    true,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDelimiter overrides the field delimiter.
func WithDelimiter(r rune) Option {
	return func(o *Options) {
		o.Delimiter = r
	}
}

// WithoutHeader treats the first line as data.
func WithoutHeader() Option {
	return func(o *Options) {
		o.Header = false
	}
}

// WithLogger installs l for skipped-row diagnostics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
