package loader

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/ppiankov/gostcite/internal/model"
	"github.com/ppiankov/gostcite/internal/validate"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrUnsupportedFile is returned for input files with an unknown extension
	ErrUnsupportedFile = errors.New("unsupported input file")

	// ErrUnknownKind is returned when an entry names no known record kind
	ErrUnknownKind = errors.New("unknown record kind")
)

// Loader reads source descriptions from files and returns validated records
type Loader struct {
	cfg    model.InputConfig
	logger *zap.Logger
}

// New creates a loader
func New(cfg model.InputConfig, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cfg: cfg, logger: logger}
}

// Load reads one file, choosing the reader by extension
func (l *Loader) Load(ctx context.Context, path string) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		records []model.Record
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		records, err = l.loadDocument(path)
	case ".xlsx":
		records, err = l.loadWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	if err != nil {
		return nil, err
	}

	l.logger.Info("loaded sources", zap.String("file", path), zap.Int("records", len(records)))
	return records, nil
}

// LoadAll reads every file in order and concatenates their records
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([]model.Record, error) {
	var all []model.Record
	for _, path := range paths {
		records, err := l.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// decode builds a validated record of kind from loosely typed field values
func (l *Loader) decode(kind model.Kind, fields map[string]any) (model.Record, error) {
	target, ok := model.NewRecord(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           target,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(l.stringHook(), wholeNumberHook),
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	if err := dec.Decode(fields); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}

	for _, key := range md.Unused {
		if key == "kind" {
			continue
		}
		l.logger.Debug("ignoring unknown field", zap.String("kind", kind.String()), zap.String("field", key))
	}

	if err := validate.Record(target); err != nil {
		return nil, err
	}

	return model.Deref(target), nil
}

// stringHook trims string values and applies NFC normalization when enabled
func (l *Loader) stringHook() mapstructure.DecodeHookFuncType {
	normalize := l.cfg.NormalizeUnicode
	return func(from, to reflect.Type, data any) (any, error) {
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		s = strings.TrimSpace(s)
		if normalize {
			s = norm.NFC.String(s)
		}
		return s, nil
	}
}

// wholeNumberHook rejects fractional values for integer fields; weak decoding
// would otherwise truncate 2020.9 to 2020
func wholeNumberHook(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}

	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	return data, nil
}
