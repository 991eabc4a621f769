package entity

import "time"

// Warehouse representa un almacén físico.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	Manager   string
	Phone     string
	IsActive  bool
	CreatedAt time.Time
}
