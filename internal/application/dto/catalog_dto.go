package dto

// UserResponse salida de un usuario.
type UserResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	OwnerID int    `json:"ownerId"`
}

// CatalogEntryResponse un producto con su categoría y usuario resueltos.
type CatalogEntryResponse struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Category CategoryResponse `json:"category"`
	User     UserResponse     `json:"user"`
}

// FilterResponse filtros aplicados a un listado.
type FilterResponse struct {
	User       string   `json:"user"`
	Categories []string `json:"categories"`
	Query      string   `json:"query"`
}

// SortResponse ordenamiento aplicado a un listado.
type SortResponse struct {
	Column string `json:"column,omitempty"`
	Order  string `json:"order"`
}

// CatalogListResponse listado filtrado del catálogo. Items nunca es null.
type CatalogListResponse struct {
	Items   []CatalogEntryResponse `json:"items"`
	Total   int                    `json:"total"`
	Filters FilterResponse         `json:"filters"`
	Sort    SortResponse           `json:"sort"`
}

// UserListResponse tabla de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}

// CategoryListResponse tabla de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
