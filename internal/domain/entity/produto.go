package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/telasecia/vitrine/internal/domain"
)

func init() {
	// O backend serializa preço como número JSON, não string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Produto item do catálogo. Categoria/Subcategoria/Variacoes chegam embutidos
// em algumas respostas e são decodificados recursivamente.
//
// Se SubcategoriaID estiver definido, deveria pertencer à própria CategoriaID;
// nenhuma camada do cliente valida isso; a coerência fica a cargo do backend.
type Produto struct {
	ID             int64             `json:"id"`
	Nome           string            `json:"nome"`
	Descricao      string            `json:"descricao,omitempty"`
	Preco          decimal.Decimal   `json:"preco"`
	Marca          string            `json:"marca,omitempty"`
	Imagem         string            `json:"imagem,omitempty"`
	Estoque        int               `json:"estoque"`
	CategoriaID    int64             `json:"categoria_id"`
	SubcategoriaID *int64            `json:"subcategoria_id,omitempty"`
	CreatedAt      *time.Time        `json:"created_at,omitempty"`
	UpdatedAt      *time.Time        `json:"updated_at,omitempty"`
	Categoria      *Categoria        `json:"categoria,omitempty"`
	Subcategoria   *Subcategoria     `json:"subcategoria,omitempty"`
	Variacoes      []VariacaoProduto `json:"variacoes,omitempty"`
}

// Validar checa os campos obrigatórios antes de enviar ao backend.
// Erros daqui nunca chegam à rede: bloqueiam o envio do formulário.
func (p *Produto) Validar() error {
	if p.Nome == "" {
		return fmt.Errorf("%w: nome é obrigatório", domain.ErrValidacao)
	}
	if p.Preco.IsNegative() {
		return fmt.Errorf("%w: preço não pode ser negativo", domain.ErrValidacao)
	}
	if p.Estoque < 0 {
		return fmt.Errorf("%w: estoque não pode ser negativo", domain.ErrValidacao)
	}
	if p.CategoriaID == 0 {
		return fmt.Errorf("%w: categoria é obrigatória", domain.ErrValidacao)
	}
	return nil
}
