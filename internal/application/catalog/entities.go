package catalog

import (
	"github.com/jhoicas/biblioteca-web/internal/application/dto"
	"github.com/jhoicas/biblioteca-web/internal/domain/entity"
	"github.com/jhoicas/biblioteca-web/internal/infrastructure/apiclient"
)

type (
	AuthorService      = Service[entity.Author, dto.AuthorForm]
	EditorialService   = Service[entity.Editorial, dto.EditorialForm]
	GenreService       = Service[entity.Genre, dto.GenreForm]
	SectionService     = Service[entity.Section, dto.SectionForm]
	BookService        = Service[entity.Book, dto.BookForm]
	UserService        = Service[entity.User, dto.UserForm]
	ReservationService = Service[entity.Reservation, dto.ReservationForm]
	RoleService        = Service[entity.Role, dto.RoleForm]
)

// Services agrupa los servicios de todas las entidades.
type Services struct {
	Authors      *AuthorService
	Editorials   *EditorialService
	Genres       *GenreService
	Sections     *SectionService
	Books        *BookService
	Users        *UserService
	Reservations *ReservationService
	Roles        *RoleService
}

// NewServices instancia cada entidad con su binding de la tabla de la API.
func NewServices(api *apiclient.Client) *Services {
	return &Services{
		Authors:      New[entity.Author, dto.AuthorForm](api, apiclient.Authors),
		Editorials:   New[entity.Editorial, dto.EditorialForm](api, apiclient.Editorials),
		Genres:       New[entity.Genre, dto.GenreForm](api, apiclient.Genres),
		Sections:     New[entity.Section, dto.SectionForm](api, apiclient.Sections),
		Books:        New[entity.Book, dto.BookForm](api, apiclient.Books),
		Users:        New[entity.User, dto.UserForm](api, apiclient.Users),
		Reservations: New[entity.Reservation, dto.ReservationForm](api, apiclient.Reservations),
		Roles:        New[entity.Role, dto.RoleForm](api, apiclient.Roles),
	}
}
