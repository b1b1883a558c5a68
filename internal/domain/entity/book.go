package entity

// Book libro del catálogo. Las relaciones se exponen por ID y nombre
// denormalizado, como las devuelve la API.
type Book struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	ISBN          string `json:"isbn,omitempty"`
	PublishedYear int    `json:"publishedYear,omitempty"`
	Copies        int    `json:"copies"`
	Available     int    `json:"available"`
	ImageURL      string `json:"imageUrl,omitempty"`
	AuthorID      int    `json:"authorId"`
	AuthorName    string `json:"authorName,omitempty"`
	EditorialID   int    `json:"editorialId"`
	EditorialName string `json:"editorialName,omitempty"`
	GenreID       int    `json:"genreId"`
	GenreName     string `json:"genreName,omitempty"`
	SectionID     int    `json:"sectionId"`
	SectionName   string `json:"sectionName,omitempty"`
}
