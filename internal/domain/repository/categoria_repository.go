package repository

import (
	"context"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// CategoriaRepository porta de acesso a categorias no backend (DIP).
type CategoriaRepository interface {
	ListarTodas(ctx context.Context) ([]entity.Categoria, error)
	BuscarPorID(ctx context.Context, id int64) (*entity.Categoria, error)
	// Criar envia apenas os campos mutáveis e preenche o ID atribuído pelo backend.
	Criar(ctx context.Context, c *entity.Categoria) error
	Atualizar(ctx context.Context, c *entity.Categoria) error
	Excluir(ctx context.Context, id int64) error
}
