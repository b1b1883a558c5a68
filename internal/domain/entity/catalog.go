package entity

// Author autor de uno o más libros.
type Author struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	Biography   string `json:"biography,omitempty"`
}

// Editorial casa editorial (publisher).
type Editorial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Website string `json:"website,omitempty"`
}

// Genre género literario.
type Genre struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Section sección física de la biblioteca.
type Section struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}
