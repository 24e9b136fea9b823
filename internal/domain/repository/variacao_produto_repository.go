package repository

import (
	"context"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// VariacaoProdutoRepository porta de acesso a variações de produto (DIP).
type VariacaoProdutoRepository interface {
	ListarTodas(ctx context.Context) ([]entity.VariacaoProduto, error)
	BuscarPorID(ctx context.Context, id int64) (*entity.VariacaoProduto, error)
	ListarPorProduto(ctx context.Context, produtoID int64) ([]entity.VariacaoProduto, error)
	Criar(ctx context.Context, v *entity.VariacaoProduto) error
	// CriarLote cria várias variações de uma vez para o produto dono.
	CriarLote(ctx context.Context, produtoID int64, variacoes []entity.VariacaoProduto) ([]entity.VariacaoProduto, error)
	Atualizar(ctx context.Context, v *entity.VariacaoProduto) error
	Excluir(ctx context.Context, id int64) error
}
