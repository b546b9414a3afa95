package entity

import "time"

// Customer representa un cliente persistido. El ID lo asigna la base de datos
// y no cambia una vez creado.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerWriteModel proyección de Customer usada para crear y actualizar.
// En altas el ID va en cero.
type CustomerWriteModel struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
}
