package format

import "github.com/ppiankov/gostcite/internal/model"

func sampleBook() model.Book {
	return model.Book{
		Authors:         "Иванов И.М., Петров С.Н.",
		Title:           "Наука как искусство",
		Edition:         "3-е",
		City:            "СПб.",
		PublishingHouse: "Просвещение",
		Year:            2020,
		Pages:           999,
	}
}

func sampleInternetResource() model.InternetResource {
	return model.InternetResource{
		Article:    "Наука как искусство",
		Website:    "Ведомости",
		Link:       "https://www.vedomosti.ru/",
		AccessDate: "01.01.2021",
	}
}

func sampleCollectionArticle() model.ArticlesCollection {
	return model.ArticlesCollection{
		Authors:         "Иванов И.М., Петров С.Н.",
		ArticleTitle:    "Наука как искусство",
		CollectionTitle: "Сборник научных трудов",
		City:            "СПб.",
		PublishingHouse: "АСТ",
		Year:            2020,
		Pages:           "25-30",
	}
}

func sampleJournalArticle() model.JournalArticle {
	return model.JournalArticle{
		Authors:      "Иванов И.М., Петров С.Н.",
		ArticleTitle: "Наука как искусство",
		JournalTitle: "Образование и наука",
		Year:         2020,
		Release:      10,
		Pages:        "25-30",
	}
}

func sampleDissertation() model.Dissertation {
	return model.Dissertation{
		Author:     "Иванов И.М.",
		Title:      "Наука как искусство",
		Degree:     "канд.",
		Speciality: "экон.",
		Code:       "01.01.01",
		City:       "СПб.",
		Year:       2020,
		Pages:      199,
	}
}

const (
	wantBook              = "Иванов И.М., Петров С.Н. Наука как искусство. – 3-е изд. – СПб.: Просвещение, 2020. – 999 с."
	wantBookNoEdition     = "Иванов И.М., Петров С.Н. Наука как искусство. – СПб.: Просвещение, 2020. – 999 с."
	wantInternetResource  = "Наука как искусство // Ведомости URL: https://www.vedomosti.ru/ (дата обращения: 01.01.2021)."
	wantCollectionArticle = "Иванов И.М., Петров С.Н. Наука как искусство // Сборник научных трудов. – СПб.: АСТ, 2020. – С. 25-30."
	wantJournalArticle    = "Иванов И.М. Наука как искусство / Иванов И.М., Петров С.Н. // Образование и наука. – 2020. – № 10. – С. 25-30."
	wantDissertation      = "Иванов И.М. Наука как искусство: канд. экон. наук: 01.01.01 / Иванов И.М. – СПб., 2020. – 199 с."
)

// unregistered is a record kind no registry knows about
type unregistered struct{}

func (unregistered) Kind() model.Kind { return model.Kind(99) }
