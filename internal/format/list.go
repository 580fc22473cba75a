package format

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ppiankov/gostcite/internal/cache"
	"github.com/ppiankov/gostcite/internal/model"
	"go.uber.org/zap"
)

// Citation is one formatted entry of the list
type Citation struct {
	Kind      model.Kind
	Text      string
	Formatter Formatter
}

// ListFormatter formats a heterogeneous batch of records and sorts the result
type ListFormatter struct {
	registry *Registry
	logger   *zap.Logger
	cache    cache.Cache
}

// Option configures a ListFormatter
type Option func(*ListFormatter)

// WithRegistry replaces the default formatter registry
func WithRegistry(r *Registry) Option {
	return func(l *ListFormatter) { l.registry = r }
}

// WithLogger sets the logger passed to every formatter
func WithLogger(logger *zap.Logger) Option {
	return func(l *ListFormatter) { l.logger = logger }
}

// WithCache memoizes formatted citations by record content
func WithCache(c cache.Cache) Option {
	return func(l *ListFormatter) { l.cache = c }
}

// NewListFormatter creates a list formatter using the default registry
func NewListFormatter(opts ...Option) *ListFormatter {
	l := &ListFormatter{
		registry: DefaultRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	return l
}

// Format formats every record and returns the citations sorted by text.
// Ties keep their input order. Any failure aborts the whole batch.
func (l *ListFormatter) Format(records []model.Record) ([]Citation, error) {
	citations := make([]Citation, 0, len(records))

	for i, r := range records {
		if r == nil {
			return nil, &UnsupportedKindError{Kind: model.KindUnknown, Index: i}
		}

		ctor, err := l.registry.Lookup(r.Kind())
		if err != nil {
			var uerr *UnsupportedKindError
			if errors.As(err, &uerr) {
				uerr.Index = i
			}
			return nil, err
		}

		f, err := ctor(r, l.logger)
		if err != nil {
			return nil, err
		}

		text, err := l.substitute(f)
		if err != nil {
			return nil, err
		}

		citations = append(citations, Citation{Kind: r.Kind(), Text: text, Formatter: f})
	}

	slices.SortStableFunc(citations, func(a, b Citation) int {
		return strings.Compare(a.Text, b.Text)
	})

	l.logger.Debug("formatted citation list", zap.Int("count", len(citations)))
	return citations, nil
}

// Strings formats records and returns only the sorted citation texts
func (l *ListFormatter) Strings(records []model.Record) ([]string, error) {
	citations, err := l.Format(records)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(citations))
	for i, c := range citations {
		texts[i] = c.Text
	}
	return texts, nil
}

func (l *ListFormatter) substitute(f Formatter) (string, error) {
	if l.cache == nil {
		return f.Substitute()
	}

	key, err := cache.Key(cacheScope(f), f.Record())
	if err != nil {
		l.logger.Warn("cache key", zap.Error(err))
		return f.Substitute()
	}

	if text, ok := l.cache.Get(key); ok {
		l.logger.Debug("citation cache hit", zap.String("kind", f.Record().Kind().String()))
		return text, nil
	}

	text, err := f.Substitute()
	if err != nil {
		return "", err
	}

	if err := l.cache.Set(key, text, 0); err != nil {
		l.logger.Warn("citation cache store failed", zap.Error(err))
	}
	return text, nil
}

// cacheScope names the formatter implementation and its template so entries
// written by one formatter are never served for another
func cacheScope(f Formatter) string {
	return fmt.Sprintf("%T\x00%s", f, f.Template())
}
