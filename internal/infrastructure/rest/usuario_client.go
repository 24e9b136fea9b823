package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/telasecia/vitrine/internal/domain"
	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioClient)(nil)

// UsuarioClient adaptador REST da porta UsuarioRepository.
// A senha só trafega em cadastro/atualização; leituras nunca a devolvem.
type UsuarioClient struct {
	c *Client
}

// NewUsuarioClient constrói o cliente de usuários.
func NewUsuarioClient(c *Client) *UsuarioClient {
	return &UsuarioClient{c: c}
}

type usuarioPayload struct {
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	Senha         string `json:"senha,omitempty"`
	TipoUsuarioID int64  `json:"tipo_usuario_id"`
}

// ListarTodos busca todos os usuários.
func (r *UsuarioClient) ListarTodos(ctx context.Context) ([]entity.Usuario, error) {
	var out []entity.Usuario
	if err := r.c.get(ctx, "/usuarios", &out); err != nil {
		return nil, fmt.Errorf("listar usuários: %w", err)
	}
	return out, nil
}

// BuscarPorID busca um usuário por id.
func (r *UsuarioClient) BuscarPorID(ctx context.Context, id int64) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := r.c.get(ctx, fmt.Sprintf("/usuarios/%d", id), &out); err != nil {
		return nil, fmt.Errorf("buscar usuário %d: %w", id, err)
	}
	return &out, nil
}

// Criar cadastra um usuário e preenche id e timestamps atribuídos.
func (r *UsuarioClient) Criar(ctx context.Context, u *entity.Usuario) error {
	payload := usuarioPayload{Nome: u.Nome, Email: u.Email, Senha: u.Senha, TipoUsuarioID: u.TipoUsuarioID}
	var out entity.Usuario
	if err := r.c.post(ctx, "/usuarios", payload, &out); err != nil {
		var api *domain.ErroAPI
		if errors.As(err, &api) && api.Status == http.StatusConflict {
			return fmt.Errorf("criar usuário: %w", domain.ErrEmailJaExiste)
		}
		return fmt.Errorf("criar usuário: %w", err)
	}
	u.ID = out.ID
	u.CreatedAt = out.CreatedAt
	u.UpdatedAt = out.UpdatedAt
	return nil
}

// Atualizar envia os campos mutáveis para /usuarios/{id}.
func (r *UsuarioClient) Atualizar(ctx context.Context, u *entity.Usuario) error {
	payload := usuarioPayload{Nome: u.Nome, Email: u.Email, Senha: u.Senha, TipoUsuarioID: u.TipoUsuarioID}
	var out entity.Usuario
	if err := r.c.put(ctx, fmt.Sprintf("/usuarios/%d", u.ID), payload, &out); err != nil {
		return fmt.Errorf("atualizar usuário %d: %w", u.ID, err)
	}
	u.UpdatedAt = out.UpdatedAt
	return nil
}

// Excluir remove o usuário.
func (r *UsuarioClient) Excluir(ctx context.Context, id int64) error {
	if err := r.c.delete(ctx, fmt.Sprintf("/usuarios/%d", id)); err != nil {
		return fmt.Errorf("excluir usuário %d: %w", id, err)
	}
	return nil
}

// Login autentica por email/senha e devolve {token, usuario} do backend.
func (r *UsuarioClient) Login(ctx context.Context, email, senha string) (string, *entity.Usuario, error) {
	payload := struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}{Email: email, Senha: senha}
	var out struct {
		Token   string         `json:"token"`
		Usuario entity.Usuario `json:"usuario"`
	}
	if err := r.c.post(ctx, "/usuarios/login", payload, &out); err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return out.Token, &out.Usuario, nil
}

// SolicitarResetSenha pede o email de recuperação de senha.
func (r *UsuarioClient) SolicitarResetSenha(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{Email: email}
	if err := r.c.post(ctx, "/usuarios/reset-password", payload, nil); err != nil {
		return fmt.Errorf("solicitar reset de senha: %w", err)
	}
	return nil
}
