package apiclient

import (
	"net/url"

	"github.com/jhoicas/biblioteca-web/internal/application/dto"
)

// Shape forma en que un endpoint devuelve una página.
type Shape int

const (
	// ShapeDirect el cuerpo es directamente la página {success, data, pagination}.
	ShapeDirect Shape = iota
	// ShapeEnveloped el cuerpo es {success, message, data} y data es la página.
	ShapeEnveloped
)

// Binding configuración de una entidad frente a la API: nombre para mensajes,
// plantillas de rutas y forma de la respuesta de listado. Las búsquedas
// siempre llegan con envelope.
type Binding struct {
	Entity     string
	ListPath   string
	SearchPath string
	CreatePath string
	EditPath   string
	DeletePath string
	GetPath    string
	ListShape  Shape
}

// NewBinding genera las rutas convencionales /<Resource>/<Acción>.
func NewBinding(entity, resource string, listShape Shape) Binding {
	prefix := "/" + resource
	return Binding{
		Entity:     entity,
		ListPath:   prefix + "/ListView",
		SearchPath: prefix + "/Search",
		CreatePath: prefix + "/Create",
		EditPath:   prefix + "/Edit",
		DeletePath: prefix + "/Delete",
		GetPath:    prefix + "/GetById",
		ListShape:  listShape,
	}
}

// Tabla de entidades de la biblioteca.
var (
	Authors      = NewBinding("authors", "Author", ShapeDirect)
	Editorials   = NewBinding("editorials", "Editorial", ShapeEnveloped)
	Genres       = NewBinding("genres", "Genre", ShapeEnveloped)
	Sections     = NewBinding("sections", "Section", ShapeEnveloped)
	Books        = NewBinding("books", "Book", ShapeDirect)
	Users        = NewBinding("users", "User", ShapeDirect)
	Reservations = NewBinding("reservations", "Reservation", ShapeDirect)
	Roles        = NewBinding("roles", "Role", ShapeDirect)
)

// Bindings todas las entidades, en el orden en que se montan las rutas.
func Bindings() []Binding {
	return []Binding{Authors, Editorials, Genres, Sections, Books, Users, Reservations, Roles}
}

// resolvePage decide endpoint, query y forma para una petición ya normalizada.
func (b Binding) resolvePage(req dto.SearchRequest) (string, url.Values, Shape) {
	if !req.HasTerm() {
		return b.ListPath, encodeQuery(pageQuery{Page: req.Page, PageSize: req.PageSize}), b.ListShape
	}
	q := searchQuery{
		Term:     NormalizeTerm(req.Term),
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	return b.SearchPath, encodeQuery(q), ShapeEnveloped
}
