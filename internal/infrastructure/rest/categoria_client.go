package rest

import (
	"context"
	"fmt"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaClient)(nil)

// CategoriaClient adaptador REST da porta CategoriaRepository.
type CategoriaClient struct {
	c *Client
}

// NewCategoriaClient constrói o cliente de categorias sobre o pipeline compartilhado.
func NewCategoriaClient(c *Client) *CategoriaClient {
	return &CategoriaClient{c: c}
}

// ListarTodas busca todas as categorias com suas subcategorias embutidas.
func (r *CategoriaClient) ListarTodas(ctx context.Context) ([]entity.Categoria, error) {
	var out []entity.Categoria
	if err := r.c.get(ctx, "/categorias", &out); err != nil {
		return nil, fmt.Errorf("listar categorias: %w", err)
	}
	return out, nil
}

// BuscarPorID busca uma categoria por id.
func (r *CategoriaClient) BuscarPorID(ctx context.Context, id int64) (*entity.Categoria, error) {
	var out entity.Categoria
	if err := r.c.get(ctx, fmt.Sprintf("/categorias/%d", id), &out); err != nil {
		return nil, fmt.Errorf("buscar categoria %d: %w", id, err)
	}
	return &out, nil
}

// Criar envia apenas o nome (payload do formulário original) e preenche o id atribuído.
func (r *CategoriaClient) Criar(ctx context.Context, c *entity.Categoria) error {
	payload := struct {
		Nome string `json:"nome"`
	}{Nome: c.Nome}
	var out entity.Categoria
	if err := r.c.post(ctx, "/categorias", payload, &out); err != nil {
		return fmt.Errorf("criar categoria: %w", err)
	}
	c.ID = out.ID
	return nil
}

// Atualizar envia nome e imagem para /categorias/{id}.
func (r *CategoriaClient) Atualizar(ctx context.Context, c *entity.Categoria) error {
	payload := struct {
		Nome   string `json:"nome"`
		Imagem string `json:"imagem,omitempty"`
	}{Nome: c.Nome, Imagem: c.Imagem}
	var out entity.Categoria
	if err := r.c.put(ctx, fmt.Sprintf("/categorias/%d", c.ID), payload, &out); err != nil {
		return fmt.Errorf("atualizar categoria %d: %w", c.ID, err)
	}
	return nil
}

// Excluir remove a categoria; as subcategorias vão junto no backend.
func (r *CategoriaClient) Excluir(ctx context.Context, id int64) error {
	if err := r.c.delete(ctx, fmt.Sprintf("/categorias/%d", id)); err != nil {
		return fmt.Errorf("excluir categoria %d: %w", id, err)
	}
	return nil
}
