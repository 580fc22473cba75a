package format

import (
	"slices"

	"github.com/ppiankov/gostcite/internal/model"
	"go.uber.org/zap"
)

// Constructor builds the formatter for one record
type Constructor func(r model.Record, logger *zap.Logger) (Formatter, error)

// Registry maps record kinds to formatter constructors
type Registry struct {
	constructors map[model.Kind]Constructor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[model.Kind]Constructor),
	}
}

// Register binds a constructor to a kind, replacing any previous binding
func (r *Registry) Register(kind model.Kind, ctor Constructor) {
	r.constructors[kind] = ctor
}

// Lookup returns the constructor registered for kind
func (r *Registry) Lookup(kind model.Kind) (Constructor, error) {
	ctor, ok := r.constructors[kind]
	if !ok {
		return nil, &UnsupportedKindError{Kind: kind, Index: -1}
	}
	return ctor, nil
}

// Kinds returns the registered kinds in declaration order
func (r *Registry) Kinds() []model.Kind {
	kinds := make([]model.Kind, 0, len(r.constructors))
	for k := range r.constructors {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(model.KindBook, NewBookFormatter)
	registry.Register(model.KindInternetResource, NewInternetResourceFormatter)
	registry.Register(model.KindArticlesCollection, NewCollectionArticleFormatter)
	registry.Register(model.KindJournalArticle, NewJournalArticleFormatter)
	registry.Register(model.KindDissertation, NewDissertationFormatter)
	return registry
}

// DefaultRegistry returns the shared registry holding every built-in kind.
// It must not be modified; build a new Registry to customize dispatch.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// TemplateFor returns the citation template used for kind
func TemplateFor(kind model.Kind) (string, error) {
	switch kind {
	case model.KindBook:
		return BookTemplate, nil
	case model.KindInternetResource:
		return InternetResourceTemplate, nil
	case model.KindArticlesCollection:
		return CollectionArticleTemplate, nil
	case model.KindJournalArticle:
		return JournalArticleTemplate, nil
	case model.KindDissertation:
		return DissertationTemplate, nil
	default:
		return "", &UnsupportedKindError{Kind: kind, Index: -1}
	}
}
