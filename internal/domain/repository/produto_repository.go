package repository

import (
	"context"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// ProdutoRepository porta de acesso a produtos no backend (DIP).
type ProdutoRepository interface {
	ListarTodos(ctx context.Context) ([]entity.Produto, error)
	BuscarPorID(ctx context.Context, id int64) (*entity.Produto, error)
	// ListarPorCategoria devolve os produtos da categoria na ordem do backend.
	ListarPorCategoria(ctx context.Context, categoriaID int64) ([]entity.Produto, error)
	Criar(ctx context.Context, p *entity.Produto) error
	Atualizar(ctx context.Context, p *entity.Produto) error
	Excluir(ctx context.Context, id int64) error
}
