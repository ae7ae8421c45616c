package entity

// Seller representa a un vendedor. Inmutable, lo provee la fuente de datos.
type Seller struct {
	ID        string
	FirstName string
	LastName  string
	StartDate string
	Position  string
}

// FullName devuelve "nombre apellido", el nombre mostrado en los reportes.
func (s Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}
