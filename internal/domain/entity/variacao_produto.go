package entity

import "time"

// VariacaoProduto subopção nomeada de um Produto (tamanho, acabamento).
// Não tem preço nem estoque próprios neste modelo.
type VariacaoProduto struct {
	ID        int64      `json:"id"`
	Nome      string     `json:"nome"`
	Descricao string     `json:"descricao,omitempty"`
	ProdutoID int64      `json:"produto_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
