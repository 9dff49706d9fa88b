package entity

// Product representa un producto del catálogo. CategoryID referencia a Category.ID.
type Product struct {
	ID         int
	Name       string
	CategoryID int
}
