package entity

// Category representa una categoría de productos. OwnerID referencia a User.ID.
type Category struct {
	ID      int
	Title   string
	Icon    string // decorativo (emoji)
	OwnerID int
}

// Label devuelve el texto de categoría tal como se muestra: "icono - título".
func (c Category) Label() string {
	return c.Icon + " - " + c.Title
}
