package format

import (
	"errors"
	"fmt"

	"github.com/ppiankov/gostcite/internal/model"
)

var (
	// ErrUnsupportedKind is matched by *UnsupportedKindError
	ErrUnsupportedKind = errors.New("unsupported record kind")

	// ErrFormatting is matched by *FormattingError
	ErrFormatting = errors.New("formatting failed")
)

// UnsupportedKindError is returned when no formatter is registered for a kind
type UnsupportedKindError struct {
	Kind  model.Kind
	Index int // Position of the record in the batch, -1 for single lookups
}

func (e *UnsupportedKindError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("record %d: no formatter registered for kind %s", e.Index+1, e.Kind)
	}
	return fmt.Sprintf("no formatter registered for kind %s", e.Kind)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

// FormattingError signals a template/field mismatch inside a formatter.
// It indicates a programming defect, not bad input.
type FormattingError struct {
	Formatter   string
	Placeholder string // Missing placeholder, empty when Reason is set
	Reason      string
}

func (e *FormattingError) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("%s: no value for placeholder $%s", e.Formatter, e.Placeholder)
	}
	return fmt.Sprintf("%s: %s", e.Formatter, e.Reason)
}

func (e *FormattingError) Is(target error) bool {
	return target == ErrFormatting
}
