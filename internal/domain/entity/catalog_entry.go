package entity

// CatalogEntry es un Product con su Category y el User dueño de la categoría ya resueltos.
// Se materializa una sola vez al arrancar y no se modifica después.
type CatalogEntry struct {
	Product
	Category Category
	User     User
}
