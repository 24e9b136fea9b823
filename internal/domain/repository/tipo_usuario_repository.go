package repository

import (
	"context"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// TipoUsuarioRepository porta de acesso a papéis de usuário (DIP).
type TipoUsuarioRepository interface {
	ListarTodos(ctx context.Context) ([]entity.TipoUsuario, error)
	BuscarPorID(ctx context.Context, id int64) (*entity.TipoUsuario, error)
	Criar(ctx context.Context, t *entity.TipoUsuario) error
	Atualizar(ctx context.Context, t *entity.TipoUsuario) error
	Excluir(ctx context.Context, id int64) error
}
