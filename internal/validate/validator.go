package validate

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ppiankov/gostcite/internal/model"
)

// ErrValidation is matched by every *ValidationError
var ErrValidation = errors.New("invalid record")

// FieldViolation describes one failed invariant
type FieldViolation struct {
	Field string // yaml field name, e.g. "publishing_house"
	Rule  string // validator tag, e.g. "required" or "gt"
	Value any
}

func (v FieldViolation) String() string {
	switch v.Rule {
	case "required":
		return v.Field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be positive, got %v", v.Field, v.Value)
	default:
		return fmt.Sprintf("%s failed %s", v.Field, v.Rule)
	}
}

// ValidationError reports every invariant a record violates
type ValidationError struct {
	Kind       model.Kind
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(yamlName)
	})
	return instance
}

// Record checks a record against the invariants declared on its type.
// Both value and pointer records are accepted.
func Record(r model.Record) error {
	if r == nil {
		return fmt.Errorf("%w: nil record", ErrValidation)
	}

	err := engine().Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %s: %w", r.Kind(), err)
	}

	verr := &ValidationError{Kind: r.Kind()}
	for _, fe := range fieldErrs {
		verr.Violations = append(verr.Violations, FieldViolation{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Value: fe.Value(),
		})
	}
	return verr
}

// Records validates a batch, reporting the first failure with its position
func Records(records []model.Record) error {
	for i, r := range records {
		if err := Record(r); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return nil
}
