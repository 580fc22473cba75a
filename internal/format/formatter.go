package format

import (
	"strconv"
	"strings"

	"github.com/ppiankov/gostcite/internal/model"
	"go.uber.org/zap"
)

// Citation templates. Placeholders use $name syntax; the dash is U+2013.
const (
	BookTemplate              = "$authors $title. – $edition$city: $publishing_house, $year. – $pages с."
	InternetResourceTemplate  = "$article // $website URL: $link (дата обращения: $access_date)."
	CollectionArticleTemplate = "$authors $article_title // $collection_title. – $city: $publishing_house, $year. – С. $pages."
	JournalArticleTemplate    = "$author $article_title / $authors // $journal_title. – $year. – № $release. – С. $pages."
	DissertationTemplate      = "$author $title: $degree $speciality наук: $code / $author – $city, $year. – $pages с."
)

// Formatter renders one record as a citation string
type Formatter interface {
	// Template returns the interpolation template with $placeholders
	Template() string

	// Substitute fills the template from the record
	Substitute() (string, error)

	// Record returns the record being formatted
	Record() model.Record
}

// base holds what every formatter shares
type base struct {
	name   string
	logger *zap.Logger
}

func (b base) fill(tmpl string, values map[string]string) (string, error) {
	out, missing := substitute(tmpl, values)
	if missing != "" {
		return "", &FormattingError{Formatter: b.name, Placeholder: missing}
	}
	return out, nil
}

func newBase(name string, logger *zap.Logger) base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{name: name, logger: logger}
}

func wrongRecord(name string, r model.Record) error {
	got := "nil"
	if r != nil {
		got = r.Kind().String()
	}
	return &FormattingError{Formatter: name, Reason: "unexpected record kind " + got}
}

// BookFormatter formats books
type BookFormatter struct {
	base
	data model.Book
}

// NewBookFormatter creates a formatter for a Book record
func NewBookFormatter(r model.Record, logger *zap.Logger) (Formatter, error) {
	data, ok := model.Deref(r).(model.Book)
	if !ok {
		return nil, wrongRecord("book", r)
	}
	return &BookFormatter{base: newBase("book", logger), data: data}, nil
}

func (f *BookFormatter) Template() string     { return BookTemplate }
func (f *BookFormatter) Record() model.Record { return f.data }

func (f *BookFormatter) Substitute() (string, error) {
	f.logger.Info("formatting book", zap.String("title", f.data.Title))

	return f.fill(f.Template(), map[string]string{
		"authors":          f.data.Authors,
		"title":            f.data.Title,
		"edition":          f.edition(),
		"city":             f.data.City,
		"publishing_house": f.data.PublishingHouse,
		"year":             strconv.Itoa(f.data.Year),
		"pages":            strconv.Itoa(f.data.Pages),
	})
}

// edition returns the edition clause, or nothing when the edition is absent
func (f *BookFormatter) edition() string {
	if f.data.Edition == "" {
		return ""
	}
	return f.data.Edition + " изд. – "
}

// InternetResourceFormatter formats web resources
type InternetResourceFormatter struct {
	base
	data model.InternetResource
}

// NewInternetResourceFormatter creates a formatter for an InternetResource record
func NewInternetResourceFormatter(r model.Record, logger *zap.Logger) (Formatter, error) {
	data, ok := model.Deref(r).(model.InternetResource)
	if !ok {
		return nil, wrongRecord("internet_resource", r)
	}
	return &InternetResourceFormatter{base: newBase("internet_resource", logger), data: data}, nil
}

func (f *InternetResourceFormatter) Template() string     { return InternetResourceTemplate }
func (f *InternetResourceFormatter) Record() model.Record { return f.data }

func (f *InternetResourceFormatter) Substitute() (string, error) {
	f.logger.Info("formatting internet resource", zap.String("article", f.data.Article))

	return f.fill(f.Template(), map[string]string{
		"article":     f.data.Article,
		"website":     f.data.Website,
		"link":        f.data.Link,
		"access_date": f.data.AccessDate,
	})
}

// CollectionArticleFormatter formats articles from collections
type CollectionArticleFormatter struct {
	base
	data model.ArticlesCollection
}

// NewCollectionArticleFormatter creates a formatter for an ArticlesCollection record
func NewCollectionArticleFormatter(r model.Record, logger *zap.Logger) (Formatter, error) {
	data, ok := model.Deref(r).(model.ArticlesCollection)
	if !ok {
		return nil, wrongRecord("articles_collection", r)
	}
	return &CollectionArticleFormatter{base: newBase("articles_collection", logger), data: data}, nil
}

func (f *CollectionArticleFormatter) Template() string     { return CollectionArticleTemplate }
func (f *CollectionArticleFormatter) Record() model.Record { return f.data }

func (f *CollectionArticleFormatter) Substitute() (string, error) {
	f.logger.Info("formatting collection article", zap.String("article_title", f.data.ArticleTitle))

	return f.fill(f.Template(), map[string]string{
		"authors":          f.data.Authors,
		"article_title":    f.data.ArticleTitle,
		"collection_title": f.data.CollectionTitle,
		"city":             f.data.City,
		"publishing_house": f.data.PublishingHouse,
		"year":             strconv.Itoa(f.data.Year),
		"pages":            f.data.Pages,
	})
}

// JournalArticleFormatter formats journal articles
type JournalArticleFormatter struct {
	base
	data model.JournalArticle
}

// NewJournalArticleFormatter creates a formatter for a JournalArticle record
func NewJournalArticleFormatter(r model.Record, logger *zap.Logger) (Formatter, error) {
	data, ok := model.Deref(r).(model.JournalArticle)
	if !ok {
		return nil, wrongRecord("journal_article", r)
	}
	return &JournalArticleFormatter{base: newBase("journal_article", logger), data: data}, nil
}

func (f *JournalArticleFormatter) Template() string     { return JournalArticleTemplate }
func (f *JournalArticleFormatter) Record() model.Record { return f.data }

func (f *JournalArticleFormatter) Substitute() (string, error) {
	f.logger.Info("formatting journal article", zap.String("article_title", f.data.ArticleTitle))

	return f.fill(f.Template(), map[string]string{
		"author":        FirstAuthor(f.data.Authors),
		"authors":       f.data.Authors,
		"article_title": f.data.ArticleTitle,
		"journal_title": f.data.JournalTitle,
		"year":          strconv.Itoa(f.data.Year),
		"release":       strconv.Itoa(f.data.Release),
		"pages":         f.data.Pages,
	})
}

// FirstAuthor returns the part of a comma-separated author list before the first comma
func FirstAuthor(authors string) string {
	first, _, _ := strings.Cut(authors, ",")
	return first
}

// DissertationFormatter formats dissertations
type DissertationFormatter struct {
	base
	data model.Dissertation
}

// NewDissertationFormatter creates a formatter for a Dissertation record
func NewDissertationFormatter(r model.Record, logger *zap.Logger) (Formatter, error) {
	data, ok := model.Deref(r).(model.Dissertation)
	if !ok {
		return nil, wrongRecord("dissertation", r)
	}
	return &DissertationFormatter{base: newBase("dissertation", logger), data: data}, nil
}

func (f *DissertationFormatter) Template() string     { return DissertationTemplate }
func (f *DissertationFormatter) Record() model.Record { return f.data }

func (f *DissertationFormatter) Substitute() (string, error) {
	f.logger.Info("formatting dissertation", zap.String("title", f.data.Title))

	return f.fill(f.Template(), map[string]string{
		"author":     f.data.Author,
		"title":      f.data.Title,
		"degree":     f.data.Degree,
		"speciality": f.data.Speciality,
		"code":       f.data.Code,
		"city":       f.data.City,
		"year":       strconv.Itoa(f.data.Year),
		"pages":      strconv.Itoa(f.data.Pages),
	})
}
