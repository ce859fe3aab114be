package convert

import (
	"context"
	"fmt"
)

// Converter turns Markdown into document bytes. Implementations delegate to an
// external engine; no partial output is ever returned.
type Converter interface {
	ToDocx(ctx context.Context, markdown string) ([]byte, error)
	ToPdf(ctx context.Context, markdown string) ([]byte, error)
}

// ConversionError wraps any engine failure into a single reported error with
// the underlying message attached.
type ConversionError struct {
	Format string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert to %s: %v", e.Format, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Wrap builds a ConversionError unless err is nil.
func Wrap(format string, err error) error {
	if err == nil {
		return nil
	}
	return &ConversionError{Format: format, Err: err}
}
