package rest

import (
	"context"
	"fmt"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

var _ repository.TipoUsuarioRepository = (*TipoUsuarioClient)(nil)

// TipoUsuarioClient adaptador REST da porta TipoUsuarioRepository.
type TipoUsuarioClient struct {
	c *Client
}

// NewTipoUsuarioClient constrói o cliente de papéis de usuário.
func NewTipoUsuarioClient(c *Client) *TipoUsuarioClient {
	return &TipoUsuarioClient{c: c}
}

// ListarTodos busca todos os papéis com permissões embutidas.
func (r *TipoUsuarioClient) ListarTodos(ctx context.Context) ([]entity.TipoUsuario, error) {
	var out []entity.TipoUsuario
	if err := r.c.get(ctx, "/tipos_usuarios", &out); err != nil {
		return nil, fmt.Errorf("listar tipos de usuário: %w", err)
	}
	return out, nil
}

// BuscarPorID busca um papel por id.
func (r *TipoUsuarioClient) BuscarPorID(ctx context.Context, id int64) (*entity.TipoUsuario, error) {
	var out entity.TipoUsuario
	if err := r.c.get(ctx, fmt.Sprintf("/tipos_usuarios/%d", id), &out); err != nil {
		return nil, fmt.Errorf("buscar tipo de usuário %d: %w", id, err)
	}
	return &out, nil
}

// Criar envia apenas o rótulo e preenche o id atribuído.
func (r *TipoUsuarioClient) Criar(ctx context.Context, t *entity.TipoUsuario) error {
	payload := struct {
		Tipo string `json:"tipo"`
	}{Tipo: t.Tipo}
	var out entity.TipoUsuario
	if err := r.c.post(ctx, "/tipos_usuarios", payload, &out); err != nil {
		return fmt.Errorf("criar tipo de usuário: %w", err)
	}
	t.ID = out.ID
	return nil
}

// Atualizar envia o rótulo para /tipos_usuarios/{id}.
func (r *TipoUsuarioClient) Atualizar(ctx context.Context, t *entity.TipoUsuario) error {
	payload := struct {
		Tipo string `json:"tipo"`
	}{Tipo: t.Tipo}
	var out entity.TipoUsuario
	if err := r.c.put(ctx, fmt.Sprintf("/tipos_usuarios/%d", t.ID), payload, &out); err != nil {
		return fmt.Errorf("atualizar tipo de usuário %d: %w", t.ID, err)
	}
	return nil
}

// Excluir remove o papel.
func (r *TipoUsuarioClient) Excluir(ctx context.Context, id int64) error {
	if err := r.c.delete(ctx, fmt.Sprintf("/tipos_usuarios/%d", id)); err != nil {
		return fmt.Errorf("excluir tipo de usuário %d: %w", id, err)
	}
	return nil
}
