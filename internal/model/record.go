package model

// Record is a validated bibliographic source description
type Record interface {
	Kind() Kind
}

// Book describes a monograph.
//
//	Book{
//		Authors:         "Иванов И.М., Петров С.Н.",
//		Title:           "Наука как искусство",
//		Edition:         "3-е",
//		City:            "СПб.",
//		PublishingHouse: "Просвещение",
//		Year:            2020,
//		Pages:           999,
//	}
type Book struct {
	Authors         string `yaml:"authors" json:"authors" validate:"required"`
	Title           string `yaml:"title" json:"title" validate:"required"`
	Edition         string `yaml:"edition,omitempty" json:"edition,omitempty"` // Optional, empty when absent
	City            string `yaml:"city" json:"city" validate:"required"`
	PublishingHouse string `yaml:"publishing_house" json:"publishing_house" validate:"required"`
	Year            int    `yaml:"year" json:"year" validate:"gt=0"`
	Pages           int    `yaml:"pages" json:"pages" validate:"gt=0"`
}

func (Book) Kind() Kind { return KindBook }

// InternetResource describes a web publication
type InternetResource struct {
	Article    string `yaml:"article" json:"article" validate:"required"`
	Website    string `yaml:"website" json:"website" validate:"required"`
	Link       string `yaml:"link" json:"link" validate:"required"`
	AccessDate string `yaml:"access_date" json:"access_date" validate:"required"` // As printed, e.g. "01.01.2021"
}

func (InternetResource) Kind() Kind { return KindInternetResource }

// ArticlesCollection describes an article published in a collection
type ArticlesCollection struct {
	Authors         string `yaml:"authors" json:"authors" validate:"required"`
	ArticleTitle    string `yaml:"article_title" json:"article_title" validate:"required"`
	CollectionTitle string `yaml:"collection_title" json:"collection_title" validate:"required"`
	City            string `yaml:"city" json:"city" validate:"required"`
	PublishingHouse string `yaml:"publishing_house" json:"publishing_house" validate:"required"`
	Year            int    `yaml:"year" json:"year" validate:"gt=0"`
	Pages           string `yaml:"pages" json:"pages" validate:"required"` // Range, e.g. "25-30"
}

func (ArticlesCollection) Kind() Kind { return KindArticlesCollection }

// JournalArticle describes an article in a periodical
type JournalArticle struct {
	Authors      string `yaml:"authors" json:"authors" validate:"required"`
	ArticleTitle string `yaml:"article_title" json:"article_title" validate:"required"`
	JournalTitle string `yaml:"journal_title" json:"journal_title" validate:"required"`
	Year         int    `yaml:"year" json:"year" validate:"gt=0"`
	Release      int    `yaml:"release" json:"release" validate:"gt=0"`
	Pages        string `yaml:"pages" json:"pages" validate:"required"`
}

func (JournalArticle) Kind() Kind { return KindJournalArticle }

// Dissertation describes a dissertation for an academic degree
type Dissertation struct {
	Author     string `yaml:"author" json:"author" validate:"required"`
	Title      string `yaml:"title" json:"title" validate:"required"`
	Degree     string `yaml:"degree" json:"degree" validate:"required"`         // e.g. "канд."
	Speciality string `yaml:"speciality" json:"speciality" validate:"required"` // e.g. "экон."
	Code       string `yaml:"code" json:"code" validate:"required"`             // Speciality code, e.g. "01.01.01"
	City       string `yaml:"city" json:"city" validate:"required"`
	Year       int    `yaml:"year" json:"year" validate:"gt=0"`
	Pages      int    `yaml:"pages" json:"pages" validate:"gt=0"`
}

func (Dissertation) Kind() Kind { return KindDissertation }

// NewRecord returns a pointer to a zero record of the given kind, ready for decoding
func NewRecord(k Kind) (Record, bool) {
	switch k {
	case KindBook:
		return &Book{}, true
	case KindInternetResource:
		return &InternetResource{}, true
	case KindArticlesCollection:
		return &ArticlesCollection{}, true
	case KindJournalArticle:
		return &JournalArticle{}, true
	case KindDissertation:
		return &Dissertation{}, true
	default:
		return nil, false
	}
}

// Deref converts a pointer record produced by NewRecord back to its value form
func Deref(r Record) Record {
	switch v := r.(type) {
	case *Book:
		return *v
	case *InternetResource:
		return *v
	case *ArticlesCollection:
		return *v
	case *JournalArticle:
		return *v
	case *Dissertation:
		return *v
	default:
		return r
	}
}
