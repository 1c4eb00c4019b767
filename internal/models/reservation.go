package models

import (
	"strings"
	"time"
)

// Reservation statuses. Only StatusPending is assigned today; confirmation
// and cancellation are handled over WhatsApp until an admin panel exists.
const (
	StatusPending   = "pendiente"
	StatusConfirmed = "confirmada"
	StatusCancelled = "cancelada"
)

// Reservation is one booking request for a room. Column names match the
// original reservas table so existing database files keep working.
type Reservation struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:nombre;not null" json:"name"`
	Phone     string    `gorm:"column:telefono;not null" json:"phone"`
	Date      string    `gorm:"column:fecha;not null" json:"date"`
	Time      string    `gorm:"column:hora;not null" json:"time"`
	PartySize int       `gorm:"column:cantidad_personas;not null" json:"partySize"`
	Room      string    `gorm:"column:sala;not null" json:"room"`
	Status    string    `gorm:"column:estado;default:pendiente" json:"status"`
	CreatedAt time.Time `gorm:"column:creado_en" json:"createdAt"`
}

func (Reservation) TableName() string {
	return "reservas"
}

// ReservationRequest is the payload for creating a reservation.
type ReservationRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"partySize"`
	Room      string `json:"room"`
}

// Validate returns a map of field name to problem description. An empty map
// means the request is acceptable.
func (r *ReservationRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(r.Phone) == "" {
		fields["phone"] = "Phone is required"
	}
	if strings.TrimSpace(r.Date) == "" {
		fields["date"] = "Date is required"
	}
	if strings.TrimSpace(r.Time) == "" {
		fields["time"] = "Time is required"
	}
	if r.PartySize <= 0 {
		fields["partySize"] = "Party size must be a positive integer"
	}
	if strings.TrimSpace(r.Room) == "" {
		fields["room"] = "Room is required"
	}
	return fields
}

// ToReservation builds the record to persist, trimming text fields.
func (r *ReservationRequest) ToReservation() Reservation {
	return Reservation{
		Name:      strings.TrimSpace(r.Name),
		Phone:     strings.TrimSpace(r.Phone),
		Date:      strings.TrimSpace(r.Date),
		Time:      strings.TrimSpace(r.Time),
		PartySize: r.PartySize,
		Room:      strings.TrimSpace(r.Room),
		Status:    StatusPending,
	}
}
