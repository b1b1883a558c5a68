package dto

// Formularios de alta/edición. El ID va vacío (0) en altas y se omite del
// payload; en ediciones lo fija el handler a partir de la ruta.

// AuthorForm alta/edición de autor.
type AuthorForm struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name" form:"name" validate:"required,min=1,max=150"`
	Nationality string `json:"nationality,omitempty" form:"nationality" validate:"omitempty,max=100"`
	BirthDate   string `json:"birthDate,omitempty" form:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Biography   string `json:"biography,omitempty" form:"biography" validate:"omitempty,max=2000"`
}

// EditorialForm alta/edición de editorial.
type EditorialForm struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name" form:"name" validate:"required,min=1,max=150"`
	Country string `json:"country,omitempty" form:"country" validate:"omitempty,max=100"`
	Website string `json:"website,omitempty" form:"website" validate:"omitempty,url"`
}

// GenreForm alta/edición de género.
type GenreForm struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name" form:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" form:"description" validate:"omitempty,max=500"`
}

// SectionForm alta/edición de sección.
type SectionForm struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name" form:"name" validate:"required,min=1,max=100"`
	Location string `json:"location,omitempty" form:"location" validate:"omitempty,max=200"`
}

// BookForm alta/edición de libro.
type BookForm struct {
	ID            int    `json:"id,omitempty"`
	Title         string `json:"title" form:"title" validate:"required,min=1,max=250"`
	ISBN          string `json:"isbn,omitempty" form:"isbn" validate:"omitempty,max=20"`
	PublishedYear int    `json:"publishedYear,omitempty" form:"publishedYear" validate:"omitempty,min=0,max=9999"`
	Copies        int    `json:"copies" form:"copies" validate:"min=0"`
	ImageURL      string `json:"imageUrl,omitempty" form:"imageUrl" validate:"omitempty,url"`
	AuthorID      int    `json:"authorId" form:"authorId" validate:"required,gt=0"`
	EditorialID   int    `json:"editorialId" form:"editorialId" validate:"required,gt=0"`
	GenreID       int    `json:"genreId" form:"genreId" validate:"required,gt=0"`
	SectionID     int    `json:"sectionId" form:"sectionId" validate:"required,gt=0"`
}

// UserForm alta/edición de usuario. Password solo es obligatorio en altas.
type UserForm struct {
	ID       int    `json:"id,omitempty"`
	UserName string `json:"userName" form:"userName" validate:"required,min=3,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	FullName string `json:"fullName,omitempty" form:"fullName" validate:"omitempty,max=150"`
	Password string `json:"password,omitempty" form:"password" validate:"omitempty,min=8"`
	Role     string `json:"role" form:"role" validate:"required"`
	IsActive bool   `json:"isActive" form:"isActive"`
}

// ReservationForm alta/edición de reserva.
type ReservationForm struct {
	ID      int    `json:"id,omitempty"`
	BookID  int    `json:"bookId" form:"bookId" validate:"required,gt=0"`
	UserID  int    `json:"userId" form:"userId" validate:"required,gt=0"`
	DueDate string `json:"dueDate,omitempty" form:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Status  string `json:"status,omitempty" form:"status" validate:"omitempty,oneof=Pendiente Activa Devuelta Cancelada"`
}

// RoleForm alta/edición de rol.
type RoleForm struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name" form:"name" validate:"required,min=2,max=50"`
	Description string `json:"description,omitempty" form:"description" validate:"omitempty,max=200"`
}

func (f AuthorForm) WithID(id int) AuthorForm { f.ID = id; return f }
func (f EditorialForm) WithID(id int) EditorialForm { f.ID = id; return f }
func (f GenreForm) WithID(id int) GenreForm { f.ID = id; return f }
func (f SectionForm) WithID(id int) SectionForm { f.ID = id; return f }
func (f BookForm) WithID(id int) BookForm { f.ID = id; return f }
func (f UserForm) WithID(id int) UserForm { f.ID = id; return f }
func (f ReservationForm) WithID(id int) ReservationForm { f.ID = id; return f }
func (f RoleForm) WithID(id int) RoleForm { f.ID = id; return f }
