package rest

import (
	"context"
	"fmt"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

var _ repository.PermissaoRepository = (*PermissaoClient)(nil)

// PermissaoClient adaptador REST da porta PermissaoRepository.
type PermissaoClient struct {
	c *Client
}

// NewPermissaoClient constrói o cliente de permissões de papel.
func NewPermissaoClient(c *Client) *PermissaoClient {
	return &PermissaoClient{c: c}
}

type permissaoPayload struct {
	TipoUsuarioID int64  `json:"tipo_usuario_id"`
	Permissao     string `json:"permissao"`
	Descricao     string `json:"descricao,omitempty"`
}

// ListarTodas busca todas as permissões.
func (r *PermissaoClient) ListarTodas(ctx context.Context) ([]entity.PermissaoTipoUsuario, error) {
	var out []entity.PermissaoTipoUsuario
	if err := r.c.get(ctx, "/permissoes-tipos-usuarios", &out); err != nil {
		return nil, fmt.Errorf("listar permissões: %w", err)
	}
	return out, nil
}

// BuscarPorID busca uma permissão por id.
func (r *PermissaoClient) BuscarPorID(ctx context.Context, id int64) (*entity.PermissaoTipoUsuario, error) {
	var out entity.PermissaoTipoUsuario
	if err := r.c.get(ctx, fmt.Sprintf("/permissoes-tipos-usuarios/%d", id), &out); err != nil {
		return nil, fmt.Errorf("buscar permissão %d: %w", id, err)
	}
	return &out, nil
}

// Criar envia os campos mutáveis e preenche id e timestamps atribuídos.
func (r *PermissaoClient) Criar(ctx context.Context, p *entity.PermissaoTipoUsuario) error {
	payload := permissaoPayload{TipoUsuarioID: p.TipoUsuarioID, Permissao: p.Permissao, Descricao: p.Descricao}
	var out entity.PermissaoTipoUsuario
	if err := r.c.post(ctx, "/permissoes-tipos-usuarios", payload, &out); err != nil {
		return fmt.Errorf("criar permissão: %w", err)
	}
	p.ID = out.ID
	p.CreatedAt = out.CreatedAt
	p.UpdatedAt = out.UpdatedAt
	return nil
}

// Atualizar envia os campos mutáveis para /permissoes-tipos-usuarios/{id}.
func (r *PermissaoClient) Atualizar(ctx context.Context, p *entity.PermissaoTipoUsuario) error {
	payload := permissaoPayload{TipoUsuarioID: p.TipoUsuarioID, Permissao: p.Permissao, Descricao: p.Descricao}
	var out entity.PermissaoTipoUsuario
	if err := r.c.put(ctx, fmt.Sprintf("/permissoes-tipos-usuarios/%d", p.ID), payload, &out); err != nil {
		return fmt.Errorf("atualizar permissão %d: %w", p.ID, err)
	}
	p.UpdatedAt = out.UpdatedAt
	return nil
}

// Excluir remove a permissão.
func (r *PermissaoClient) Excluir(ctx context.Context, id int64) error {
	if err := r.c.delete(ctx, fmt.Sprintf("/permissoes-tipos-usuarios/%d", id)); err != nil {
		return fmt.Errorf("excluir permissão %d: %w", id, err)
	}
	return nil
}
