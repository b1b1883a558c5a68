package entity

// Estados de una reserva.
const (
	ReservationPending   = "Pendiente"
	ReservationActive    = "Activa"
	ReservationReturned  = "Devuelta"
	ReservationCancelled = "Cancelada"
)

// Reservation préstamo/reserva de un libro por un usuario.
type Reservation struct {
	ID         int    `json:"id"`
	BookID     int    `json:"bookId"`
	BookTitle  string `json:"bookTitle,omitempty"`
	UserID     int    `json:"userId"`
	UserName   string `json:"userName,omitempty"`
	ReservedAt string `json:"reservedAt,omitempty"`
	DueDate    string `json:"dueDate,omitempty"`
	ReturnedAt string `json:"returnedAt,omitempty"`
	Status     string `json:"status"`
}
