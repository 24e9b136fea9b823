package catalog

import (
	"context"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
	"github.com/telasecia/vitrine/pkg/logger"
)

// Consulta estado da vitrine de produtos: conjunto de trabalho buscado do
// backend, categoria selecionada, termo de busca e página atual.
//
// Trocar a categoria rebusca do backend (escopado ou completo) e volta para a
// página 1; trocar só o termo refiltra o conjunto já buscado, sem rebuscar e
// sem mexer na página. A assimetria é intencional e coberta por testes.
type Consulta struct {
	repo repository.ProdutoRepository
	log  *logger.Logger

	produtos  []entity.Produto
	categoria *int64
	termo     string
	pagina    int
}

// NovaConsulta constrói a consulta da vitrine. Chamar Carregar antes do primeiro uso.
func NovaConsulta(repo repository.ProdutoRepository, log *logger.Logger) *Consulta {
	if log == nil {
		log = logger.NewNop()
	}
	return &Consulta{repo: repo, log: log, pagina: 1}
}

// Carregar faz a busca inicial sem filtro de categoria: catálogo completo,
// embaralhado uma única vez antes da exibição.
func (c *Consulta) Carregar(ctx context.Context) error {
	return c.SelecionarCategoria(ctx, nil)
}

// SelecionarCategoria troca o filtro de categoria e rebusca o conjunto de
// trabalho. Com id a ordem do backend é preservada; com nil o catálogo
// completo é embaralhado. A página volta para 1 em qualquer caso.
func (c *Consulta) SelecionarCategoria(ctx context.Context, id *int64) error {
	var (
		produtos []entity.Produto
		err      error
	)
	if id != nil {
		produtos, err = c.repo.ListarPorCategoria(ctx, *id)
	} else {
		produtos, err = c.repo.ListarTodos(ctx)
		if err == nil {
			Embaralhar(produtos)
		}
	}
	if err != nil {
		return err
	}
	c.produtos = produtos
	c.categoria = id
	c.pagina = 1
	c.log.Debug().Int("produtos", len(produtos)).Msg("conjunto de trabalho recarregado")
	return nil
}

// DefinirBusca troca o termo de busca. Refiltra em memória: não rebusca do
// backend e não reposiciona a página.
func (c *Consulta) DefinirBusca(termo string) {
	c.termo = termo
}

// DefinirPagina posiciona a página atual (1-based). Valores fora do intervalo
// são aceitos e resultam em página vazia, nunca em pânico.
func (c *Consulta) DefinirPagina(pagina int) {
	if pagina < 1 {
		pagina = 1
	}
	c.pagina = pagina
}

// Categoria devolve o id da categoria selecionada; nil quando "todos".
func (c *Consulta) Categoria() *int64 { return c.categoria }

// Busca devolve o termo de busca atual.
func (c *Consulta) Busca() string { return c.termo }

// PaginaAtual devolve o índice 1-based da página corrente.
func (c *Consulta) PaginaAtual() int { return c.pagina }

// Filtrados devolve o conjunto de trabalho após o filtro de texto.
func (c *Consulta) Filtrados() []entity.Produto {
	return Filtrar(c.produtos, c.termo)
}

// Pagina devolve a fatia da página corrente sobre o conjunto filtrado.
func (c *Consulta) Pagina() []entity.Produto {
	return Paginar(c.Filtrados(), c.pagina)
}

// TotalPaginas devolve o total de páginas sobre o conjunto filtrado.
func (c *Consulta) TotalPaginas() int {
	return TotalPaginas(len(c.Filtrados()))
}
