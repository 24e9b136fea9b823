package rest

import (
	"context"
	"fmt"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

var _ repository.VariacaoProdutoRepository = (*VariacaoClient)(nil)

// VariacaoClient adaptador REST da porta VariacaoProdutoRepository.
type VariacaoClient struct {
	c *Client
}

// NewVariacaoClient constrói o cliente de variações de produto.
func NewVariacaoClient(c *Client) *VariacaoClient {
	return &VariacaoClient{c: c}
}

type variacaoPayload struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	ProdutoID int64  `json:"produto_id"`
}

// ListarTodas busca todas as variações.
func (r *VariacaoClient) ListarTodas(ctx context.Context) ([]entity.VariacaoProduto, error) {
	var out []entity.VariacaoProduto
	if err := r.c.get(ctx, "/variacoes-produto", &out); err != nil {
		return nil, fmt.Errorf("listar variações: %w", err)
	}
	return out, nil
}

// BuscarPorID busca uma variação por id.
func (r *VariacaoClient) BuscarPorID(ctx context.Context, id int64) (*entity.VariacaoProduto, error) {
	var out entity.VariacaoProduto
	if err := r.c.get(ctx, fmt.Sprintf("/variacoes-produto/%d", id), &out); err != nil {
		return nil, fmt.Errorf("buscar variação %d: %w", id, err)
	}
	return &out, nil
}

// ListarPorProduto busca as variações do produto dono.
func (r *VariacaoClient) ListarPorProduto(ctx context.Context, produtoID int64) ([]entity.VariacaoProduto, error) {
	var out []entity.VariacaoProduto
	if err := r.c.get(ctx, fmt.Sprintf("/variacoes-produto/produto/%d", produtoID), &out); err != nil {
		return nil, fmt.Errorf("listar variações do produto %d: %w", produtoID, err)
	}
	return out, nil
}

// Criar envia os campos mutáveis e preenche id e timestamps atribuídos.
func (r *VariacaoClient) Criar(ctx context.Context, v *entity.VariacaoProduto) error {
	payload := variacaoPayload{Nome: v.Nome, Descricao: v.Descricao, ProdutoID: v.ProdutoID}
	var out entity.VariacaoProduto
	if err := r.c.post(ctx, "/variacoes-produto", payload, &out); err != nil {
		return fmt.Errorf("criar variação: %w", err)
	}
	v.ID = out.ID
	v.CreatedAt = out.CreatedAt
	v.UpdatedAt = out.UpdatedAt
	return nil
}

// CriarLote cria várias variações para o produto de uma vez
// (corpo é o array puro, formato do backend).
func (r *VariacaoClient) CriarLote(ctx context.Context, produtoID int64, variacoes []entity.VariacaoProduto) ([]entity.VariacaoProduto, error) {
	itens := make([]variacaoPayload, 0, len(variacoes))
	for _, v := range variacoes {
		itens = append(itens, variacaoPayload{Nome: v.Nome, Descricao: v.Descricao, ProdutoID: produtoID})
	}
	var out []entity.VariacaoProduto
	if err := r.c.post(ctx, fmt.Sprintf("/variacoes-produto/produto/%d", produtoID), itens, &out); err != nil {
		return nil, fmt.Errorf("criar variações em lote: %w", err)
	}
	return out, nil
}

// Atualizar envia os campos mutáveis para /variacoes-produto/{id}.
func (r *VariacaoClient) Atualizar(ctx context.Context, v *entity.VariacaoProduto) error {
	payload := variacaoPayload{Nome: v.Nome, Descricao: v.Descricao, ProdutoID: v.ProdutoID}
	var out entity.VariacaoProduto
	if err := r.c.put(ctx, fmt.Sprintf("/variacoes-produto/%d", v.ID), payload, &out); err != nil {
		return fmt.Errorf("atualizar variação %d: %w", v.ID, err)
	}
	v.UpdatedAt = out.UpdatedAt
	return nil
}

// Excluir remove a variação.
func (r *VariacaoClient) Excluir(ctx context.Context, id int64) error {
	if err := r.c.delete(ctx, fmt.Sprintf("/variacoes-produto/%d", id)); err != nil {
		return fmt.Errorf("excluir variação %d: %w", id, err)
	}
	return nil
}
