package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/gostcite/internal/format"
	"github.com/ppiankov/gostcite/internal/model"
	"github.com/ppiankov/gostcite/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const sources = `sources:
  - kind: book
    authors: Иванов И.М., Петров С.Н.
    title: Наука как искусство
    edition: 3-е
    city: СПб.
    publishing_house: Просвещение
    year: 2020
    pages: 999
  - kind: internet_resource
    article: Наука как искусство
    website: Ведомости
    link: https://www.vedomosti.ru/
    access_date: 01.01.2021
  - kind: journal_article
    authors: Иванов И.М., Петров С.Н.
    article_title: Наука как искусство
    journal_title: Образование и наука
    year: 2020
    release: 10
    pages: 25-30
`

const (
	wantBook     = "Иванов И.М., Петров С.Н. Наука как искусство. – 3-е изд. – СПб.: Просвещение, 2020. – 999 с."
	wantResource = "Наука как искусство // Ведомости URL: https://www.vedomosti.ru/ (дата обращения: 01.01.2021)."
	wantArticle  = "Иванов И.М. Наука как искусство / Иванов И.М., Петров С.Н. // Образование и наука. – 2020. – № 10. – С. 25-30."
)

func writeSources(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPipeline_Run_Text(t *testing.T) {
	path := writeSources(t, "sources.yaml", sources)

	var out bytes.Buffer
	result, err := New(nil, zaptest.NewLogger(t)).Run(context.Background(), []string{path}, &out, "")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Records)
	assert.Equal(t, []string{wantArticle, wantBook, wantResource}, result.Citations)
	assert.Equal(t, "1. "+wantArticle+"\n2. "+wantBook+"\n3. "+wantResource+"\n", out.String())
}

func TestPipeline_Run_WritesFile(t *testing.T) {
	path := writeSources(t, "sources.yaml", sources)
	outPath := filepath.Join(t.TempDir(), "refs.md")

	cfg := model.DefaultConfig()
	cfg.Output.Format = "markdown"
	cfg.Output.Numbered = false
	cfg.Cache.Dir = t.TempDir()

	var out bytes.Buffer
	_, err := New(cfg, nil).Run(context.Background(), []string{path}, &out, outPath)
	require.NoError(t, err)
	assert.Zero(t, out.Len(), "nothing goes to the writer when a file is given")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "- "+wantArticle+"\n- "+wantBook+"\n- "+wantResource+"\n", string(data))
}

func TestPipeline_Format_CacheDisabled(t *testing.T) {
	path := writeSources(t, "sources.yaml", sources)

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false

	result, err := New(cfg, nil).Format(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Len(t, result.Citations, 3)
}

func TestPipeline_Run_InvalidSourceWritesNothing(t *testing.T) {
	good := writeSources(t, "good.yaml", sources)
	bad := writeSources(t, "bad.yaml", "- kind: book\n  title: Без авторов\n  city: М.\n  publishing_house: АСТ\n  year: 2020\n  pages: 10\n")
	outPath := filepath.Join(t.TempDir(), "refs.txt")

	var out bytes.Buffer
	result, err := New(nil, nil).Run(context.Background(), []string{good, bad}, &out, outPath)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrValidation)
	assert.Contains(t, err.Error(), "load:")

	assert.Zero(t, out.Len())
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipeline_Run_UnknownOutputFormat(t *testing.T) {
	path := writeSources(t, "sources.yaml", sources)

	cfg := model.DefaultConfig()
	cfg.Output.Format = "pdf"

	var out bytes.Buffer
	_, err := New(cfg, nil).Run(context.Background(), []string{path}, &out, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render:")
}

func TestPipeline_Format_PropagatesFormatterErrors(t *testing.T) {
	p := New(nil, nil)
	p.formatter = format.NewListFormatter(format.WithRegistry(format.NewRegistry()))

	path := writeSources(t, "sources.yaml", sources)
	_, err := p.Format(context.Background(), []string{path})
	assert.ErrorIs(t, err, format.ErrUnsupportedKind)
	assert.Contains(t, err.Error(), "format:")
}

func TestPipeline_FormatRecords(t *testing.T) {
	records := []model.Record{
		model.InternetResource{Article: "Наука как искусство", Website: "Ведомости", Link: "https://www.vedomosti.ru/", AccessDate: "01.01.2021"},
		model.Book{Authors: "Иванов И.М., Петров С.Н.", Title: "Наука как искусство", Edition: "3-е", City: "СПб.", PublishingHouse: "Просвещение", Year: 2020, Pages: 999},
	}

	result, err := New(nil, nil).FormatRecords(records)
	require.NoError(t, err)
	assert.Equal(t, []string{wantBook, wantResource}, result.Citations)
}

func TestPipeline_FormatRecords_ValidatesBatch(t *testing.T) {
	records := []model.Record{
		model.Book{Authors: "a", Title: "t", City: "c", PublishingHouse: "p", Year: 2020, Pages: 10},
		model.JournalArticle{Authors: "a", ArticleTitle: "t", JournalTitle: "j", Year: 2020, Release: 0, Pages: "1-2"},
	}

	result, err := New(nil, nil).FormatRecords(records)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrValidation)
	assert.Contains(t, err.Error(), "validate: record 2: invalid journal_article: release must be positive")
}
