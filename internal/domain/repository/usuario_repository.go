package repository

import (
	"context"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// UsuarioRepository porta de acesso a usuários e autenticação no backend (DIP).
type UsuarioRepository interface {
	ListarTodos(ctx context.Context) ([]entity.Usuario, error)
	BuscarPorID(ctx context.Context, id int64) (*entity.Usuario, error)
	// Criar cadastra um usuário (senha write-only no payload).
	Criar(ctx context.Context, u *entity.Usuario) error
	Atualizar(ctx context.Context, u *entity.Usuario) error
	Excluir(ctx context.Context, id int64) error
	// Login autentica por email/senha e devolve o bearer token com o usuário
	// (papel e permissões embutidos).
	Login(ctx context.Context, email, senha string) (token string, usuario *entity.Usuario, err error)
	// SolicitarResetSenha pede o envio do email de recuperação.
	SolicitarResetSenha(ctx context.Context, email string) error
}
