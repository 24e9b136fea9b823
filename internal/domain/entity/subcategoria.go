package entity

import "time"

// Subcategoria escopo opcional de um Produto dentro da Categoria dona.
// CategoriaID deve referenciar uma Categoria existente depois de persistida
// (garantido pelo backend, não pelo cliente).
type Subcategoria struct {
	ID          int64      `json:"id"`
	Nome        string     `json:"nome"`
	Descricao   string     `json:"descricao,omitempty"`
	CategoriaID int64      `json:"categoria_id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Categoria   *Categoria `json:"categoria,omitempty"`
}
