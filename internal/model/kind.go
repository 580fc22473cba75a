package model

import (
	"fmt"
	"strings"
)

// Kind identifies which bibliographic source shape a record has
type Kind int

const (
	KindUnknown            Kind = iota // Zero value, never registered
	KindBook                           // Monograph or textbook
	KindInternetResource               // Web page or online article
	KindArticlesCollection             // Article from a collection of papers
	KindJournalArticle                 // Article from a periodical
	KindDissertation                   // Dissertation abstract or thesis
)

// Kinds lists every known kind in declaration order
var Kinds = []Kind{
	KindBook,
	KindInternetResource,
	KindArticlesCollection,
	KindJournalArticle,
	KindDissertation,
}

func (k Kind) String() string {
	switch k {
	case KindBook:
		return "book"
	case KindInternetResource:
		return "internet_resource"
	case KindArticlesCollection:
		return "articles_collection"
	case KindJournalArticle:
		return "journal_article"
	case KindDissertation:
		return "dissertation"
	default:
		return "unknown"
	}
}

// ParseKind resolves a kind name as written in input files.
// Matching ignores case and treats "-" and " " like "_".
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	for _, k := range Kinds {
		if k.String() == norm {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown record kind %q", s)
}
