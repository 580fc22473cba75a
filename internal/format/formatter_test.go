package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/ppiankov/gostcite/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormatters_Substitute(t *testing.T) {
	noEdition := sampleBook()
	noEdition.Edition = ""

	tests := []struct {
		name   string
		ctor   Constructor
		record model.Record
		want   string
	}{
		{"book", NewBookFormatter, sampleBook(), wantBook},
		{"book without edition", NewBookFormatter, noEdition, wantBookNoEdition},
		{"internet resource", NewInternetResourceFormatter, sampleInternetResource(), wantInternetResource},
		{"collection article", NewCollectionArticleFormatter, sampleCollectionArticle(), wantCollectionArticle},
		{"journal article", NewJournalArticleFormatter, sampleJournalArticle(), wantJournalArticle},
		{"dissertation", NewDissertationFormatter, sampleDissertation(), wantDissertation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.ctor(tt.record, nil)
			require.NoError(t, err)

			got, err := f.Substitute()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.record, f.Record())
		})
	}
}

func TestFormatters_AcceptPointerRecords(t *testing.T) {
	book := sampleBook()

	f, err := NewBookFormatter(&book, nil)
	require.NoError(t, err)

	got, err := f.Substitute()
	require.NoError(t, err)
	assert.Equal(t, wantBook, got)
}

func TestBookFormatter_EditionClause(t *testing.T) {
	book := sampleBook()

	book.Edition = ""
	f, err := NewBookFormatter(book, nil)
	require.NoError(t, err)
	got, err := f.Substitute()
	require.NoError(t, err)
	assert.NotContains(t, got, "изд.")
	assert.NotContains(t, got, "  ")
	assert.Contains(t, got, "искусство. – СПб.: ")

	book.Edition = "3-е"
	f, err = NewBookFormatter(book, nil)
	require.NoError(t, err)
	got, err = f.Substitute()
	require.NoError(t, err)
	assert.Contains(t, got, "3-е изд. – ")
}

func TestFirstAuthor(t *testing.T) {
	tests := []struct {
		authors string
		want    string
	}{
		{"Иванов И.М., Петров С.Н.", "Иванов И.М."},
		{"Иванов И.М.", "Иванов И.М."},
		{"Иванов И.М.,Петров С.Н.,Сидоров А.А.", "Иванов И.М."},
		{", Петров С.Н.", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FirstAuthor(tt.authors), "authors %q", tt.authors)
	}
}

func TestJournalArticleFormatter_SingleAuthor(t *testing.T) {
	article := sampleJournalArticle()
	article.Authors = "Сидоров А.А."

	f, err := NewJournalArticleFormatter(article, nil)
	require.NoError(t, err)

	got, err := f.Substitute()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Сидоров А.А. Наука как искусство / Сидоров А.А. // "), got)
}

func TestDissertationFormatter_AuthorRepeated(t *testing.T) {
	f, err := NewDissertationFormatter(sampleDissertation(), nil)
	require.NoError(t, err)

	got, err := f.Substitute()
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(got, "Иванов И.М."))
}

func TestFormatters_WrongRecordKind(t *testing.T) {
	ctors := map[string]Constructor{
		"book":                NewBookFormatter,
		"internet_resource":   NewInternetResourceFormatter,
		"articles_collection": NewCollectionArticleFormatter,
		"journal_article":     NewJournalArticleFormatter,
		"dissertation":        NewDissertationFormatter,
	}

	for name, ctor := range ctors {
		t.Run(name, func(t *testing.T) {
			f, err := ctor(unregistered{}, nil)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrFormatting)

			_, err = ctor(nil, nil)
			assert.ErrorIs(t, err, ErrFormatting)
		})
	}
}

func TestFormatters_Idempotent(t *testing.T) {
	f, err := NewJournalArticleFormatter(sampleJournalArticle(), nil)
	require.NoError(t, err)

	first, err := f.Substitute()
	require.NoError(t, err)
	second, err := f.Substitute()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormatters_LogRecordName(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	f, err := NewBookFormatter(sampleBook(), zap.New(core))
	require.NoError(t, err)
	_, err = f.Substitute()
	require.NoError(t, err)

	entries := logs.FilterMessage("formatting book").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Наука как искусство", entries[0].ContextMap()["title"])
}

func TestBase_Fill_MissingPlaceholder(t *testing.T) {
	b := newBase("test", nil)

	_, err := b.fill("$known and $unknown", map[string]string{"known": "x"})
	require.Error(t, err)

	var ferr *FormattingError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "unknown", ferr.Placeholder)
	assert.ErrorIs(t, err, ErrFormatting)
	assert.Contains(t, err.Error(), "$unknown")
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t,
		[]string{"authors", "title", "edition", "city", "publishing_house", "year", "pages"},
		Placeholders(BookTemplate))

	// $author appears twice but is listed once
	assert.Equal(t,
		[]string{"author", "title", "degree", "speciality", "code", "city", "year", "pages"},
		Placeholders(DissertationTemplate))
}

func TestSubstitute_ValuesAreNotExpanded(t *testing.T) {
	out, missing := substitute("$a-$b", map[string]string{"a": "$b", "b": "2"})
	assert.Empty(t, missing)
	assert.Equal(t, "$b-2", out)
}
