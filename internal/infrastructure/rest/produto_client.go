package rest

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoClient)(nil)

// ProdutoClient adaptador REST da porta ProdutoRepository. Respostas com
// categoria/subcategoria/variações embutidas são decodificadas recursivamente.
type ProdutoClient struct {
	c *Client
}

// NewProdutoClient constrói o cliente de produtos.
func NewProdutoClient(c *Client) *ProdutoClient {
	return &ProdutoClient{c: c}
}

type produtoPayload struct {
	Nome           string          `json:"nome"`
	Descricao      string          `json:"descricao,omitempty"`
	Preco          decimal.Decimal `json:"preco"`
	Marca          string          `json:"marca,omitempty"`
	Imagem         string          `json:"imagem,omitempty"`
	Estoque        int             `json:"estoque"`
	CategoriaID    int64           `json:"categoria_id"`
	SubcategoriaID *int64          `json:"subcategoria_id,omitempty"`
}

func paraProdutoPayload(p *entity.Produto) produtoPayload {
	return produtoPayload{
		Nome:           p.Nome,
		Descricao:      p.Descricao,
		Preco:          p.Preco,
		Marca:          p.Marca,
		Imagem:         p.Imagem,
		Estoque:        p.Estoque,
		CategoriaID:    p.CategoriaID,
		SubcategoriaID: p.SubcategoriaID,
	}
}

// ListarTodos busca todo o catálogo.
func (r *ProdutoClient) ListarTodos(ctx context.Context) ([]entity.Produto, error) {
	var out []entity.Produto
	if err := r.c.get(ctx, "/produtos", &out); err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	return out, nil
}

// BuscarPorID busca um produto por id.
func (r *ProdutoClient) BuscarPorID(ctx context.Context, id int64) (*entity.Produto, error) {
	var out entity.Produto
	if err := r.c.get(ctx, fmt.Sprintf("/produtos/%d", id), &out); err != nil {
		return nil, fmt.Errorf("buscar produto %d: %w", id, err)
	}
	return &out, nil
}

// ListarPorCategoria busca os produtos da categoria, na ordem do backend.
func (r *ProdutoClient) ListarPorCategoria(ctx context.Context, categoriaID int64) ([]entity.Produto, error) {
	var out []entity.Produto
	if err := r.c.get(ctx, fmt.Sprintf("/produtos/categoria/%d", categoriaID), &out); err != nil {
		return nil, fmt.Errorf("listar produtos da categoria %d: %w", categoriaID, err)
	}
	return out, nil
}

// Criar envia apenas os campos mutáveis e preenche id e timestamps atribuídos.
func (r *ProdutoClient) Criar(ctx context.Context, p *entity.Produto) error {
	var out entity.Produto
	if err := r.c.post(ctx, "/produtos", paraProdutoPayload(p), &out); err != nil {
		return fmt.Errorf("criar produto: %w", err)
	}
	p.ID = out.ID
	p.CreatedAt = out.CreatedAt
	p.UpdatedAt = out.UpdatedAt
	return nil
}

// Atualizar envia os campos mutáveis para /produtos/{id}. Última escrita vence:
// não há token de versão nem detecção de conflito.
func (r *ProdutoClient) Atualizar(ctx context.Context, p *entity.Produto) error {
	var out entity.Produto
	if err := r.c.put(ctx, fmt.Sprintf("/produtos/%d", p.ID), paraProdutoPayload(p), &out); err != nil {
		return fmt.Errorf("atualizar produto %d: %w", p.ID, err)
	}
	p.UpdatedAt = out.UpdatedAt
	return nil
}

// Excluir remove o produto.
func (r *ProdutoClient) Excluir(ctx context.Context, id int64) error {
	if err := r.c.delete(ctx, fmt.Sprintf("/produtos/%d", id)); err != nil {
		return fmt.Errorf("excluir produto %d: %w", id, err)
	}
	return nil
}
