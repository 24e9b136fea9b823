package repository

import (
	"context"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// PermissaoRepository porta de acesso a permissões de papel (DIP).
type PermissaoRepository interface {
	ListarTodas(ctx context.Context) ([]entity.PermissaoTipoUsuario, error)
	BuscarPorID(ctx context.Context, id int64) (*entity.PermissaoTipoUsuario, error)
	Criar(ctx context.Context, p *entity.PermissaoTipoUsuario) error
	Atualizar(ctx context.Context, p *entity.PermissaoTipoUsuario) error
	Excluir(ctx context.Context, id int64) error
}
