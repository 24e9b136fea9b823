package entity

// Categoria representa uma categoria de produtos. É dona das subcategorias:
// quando a categoria é excluída no backend, as subcategorias vão junto.
type Categoria struct {
	ID            int64          `json:"id"`
	Nome          string         `json:"nome"`
	Imagem        string         `json:"imagem,omitempty"`
	Subcategorias []Subcategoria `json:"subcategorias"`
}
