package repository

import (
	"context"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// SubcategoriaRepository porta de acesso a subcategorias no backend (DIP).
type SubcategoriaRepository interface {
	ListarTodas(ctx context.Context) ([]entity.Subcategoria, error)
	BuscarPorID(ctx context.Context, id int64) (*entity.Subcategoria, error)
	ListarPorCategoria(ctx context.Context, categoriaID int64) ([]entity.Subcategoria, error)
	Criar(ctx context.Context, s *entity.Subcategoria) error
	// CriarLote cria várias subcategorias de uma vez para a categoria dona,
	// usado para descarregar itens pendentes quando a categoria é salva.
	CriarLote(ctx context.Context, categoriaID int64, subs []entity.Subcategoria) ([]entity.Subcategoria, error)
	Atualizar(ctx context.Context, s *entity.Subcategoria) error
	Excluir(ctx context.Context, id int64) error
}
