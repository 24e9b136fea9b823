package rest

import (
	"context"
	"fmt"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

var _ repository.SubcategoriaRepository = (*SubcategoriaClient)(nil)

// SubcategoriaClient adaptador REST da porta SubcategoriaRepository.
type SubcategoriaClient struct {
	c *Client
}

// NewSubcategoriaClient constrói o cliente de subcategorias.
func NewSubcategoriaClient(c *Client) *SubcategoriaClient {
	return &SubcategoriaClient{c: c}
}

type subcategoriaPayload struct {
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao,omitempty"`
	CategoriaID int64  `json:"categoria_id"`
}

// ListarTodas busca todas as subcategorias.
func (r *SubcategoriaClient) ListarTodas(ctx context.Context) ([]entity.Subcategoria, error) {
	var out []entity.Subcategoria
	if err := r.c.get(ctx, "/subcategorias", &out); err != nil {
		return nil, fmt.Errorf("listar subcategorias: %w", err)
	}
	return out, nil
}

// BuscarPorID busca uma subcategoria por id.
func (r *SubcategoriaClient) BuscarPorID(ctx context.Context, id int64) (*entity.Subcategoria, error) {
	var out entity.Subcategoria
	if err := r.c.get(ctx, fmt.Sprintf("/subcategorias/%d", id), &out); err != nil {
		return nil, fmt.Errorf("buscar subcategoria %d: %w", id, err)
	}
	return &out, nil
}

// ListarPorCategoria busca as subcategorias da categoria dona.
func (r *SubcategoriaClient) ListarPorCategoria(ctx context.Context, categoriaID int64) ([]entity.Subcategoria, error) {
	var out []entity.Subcategoria
	if err := r.c.get(ctx, fmt.Sprintf("/subcategorias/categoria/%d", categoriaID), &out); err != nil {
		return nil, fmt.Errorf("listar subcategorias da categoria %d: %w", categoriaID, err)
	}
	return out, nil
}

// Criar envia os campos mutáveis e preenche id e timestamps atribuídos.
func (r *SubcategoriaClient) Criar(ctx context.Context, s *entity.Subcategoria) error {
	payload := subcategoriaPayload{Nome: s.Nome, Descricao: s.Descricao, CategoriaID: s.CategoriaID}
	var out entity.Subcategoria
	if err := r.c.post(ctx, "/subcategorias", payload, &out); err != nil {
		return fmt.Errorf("criar subcategoria: %w", err)
	}
	s.ID = out.ID
	s.CreatedAt = out.CreatedAt
	s.UpdatedAt = out.UpdatedAt
	return nil
}

// CriarLote cria várias subcategorias para a categoria de uma vez
// (corpo {"subcategorias": [...]}, formato do backend).
func (r *SubcategoriaClient) CriarLote(ctx context.Context, categoriaID int64, subs []entity.Subcategoria) ([]entity.Subcategoria, error) {
	itens := make([]subcategoriaPayload, 0, len(subs))
	for _, s := range subs {
		itens = append(itens, subcategoriaPayload{Nome: s.Nome, Descricao: s.Descricao, CategoriaID: categoriaID})
	}
	payload := struct {
		Subcategorias []subcategoriaPayload `json:"subcategorias"`
	}{Subcategorias: itens}
	var out []entity.Subcategoria
	if err := r.c.post(ctx, fmt.Sprintf("/subcategorias/categoria/%d", categoriaID), payload, &out); err != nil {
		return nil, fmt.Errorf("criar subcategorias em lote: %w", err)
	}
	return out, nil
}

// Atualizar envia os campos mutáveis para /subcategorias/{id}.
func (r *SubcategoriaClient) Atualizar(ctx context.Context, s *entity.Subcategoria) error {
	payload := subcategoriaPayload{Nome: s.Nome, Descricao: s.Descricao, CategoriaID: s.CategoriaID}
	var out entity.Subcategoria
	if err := r.c.put(ctx, fmt.Sprintf("/subcategorias/%d", s.ID), payload, &out); err != nil {
		return fmt.Errorf("atualizar subcategoria %d: %w", s.ID, err)
	}
	s.UpdatedAt = out.UpdatedAt
	return nil
}

// Excluir remove a subcategoria.
func (r *SubcategoriaClient) Excluir(ctx context.Context, id int64) error {
	if err := r.c.delete(ctx, fmt.Sprintf("/subcategorias/%d", id)); err != nil {
		return fmt.Errorf("excluir subcategoria %d: %w", id, err)
	}
	return nil
}
