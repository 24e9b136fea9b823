package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

// repoFake implementação em memória de ProdutoRepository que conta as buscas,
// para observar quando a consulta rebusca e quando só refiltra.
type repoFake struct {
	todos        []entity.Produto
	porCategoria map[int64][]entity.Produto

	chamadasTodos        int
	chamadasPorCategoria int
	erro                 error
}

var _ repository.ProdutoRepository = (*repoFake)(nil)

func (f *repoFake) ListarTodos(ctx context.Context) ([]entity.Produto, error) {
	f.chamadasTodos++
	if f.erro != nil {
		return nil, f.erro
	}
	out := make([]entity.Produto, len(f.todos))
	copy(out, f.todos)
	return out, nil
}

func (f *repoFake) ListarPorCategoria(ctx context.Context, categoriaID int64) ([]entity.Produto, error) {
	f.chamadasPorCategoria++
	if f.erro != nil {
		return nil, f.erro
	}
	out := make([]entity.Produto, len(f.porCategoria[categoriaID]))
	copy(out, f.porCategoria[categoriaID])
	return out, nil
}

func (f *repoFake) BuscarPorID(ctx context.Context, id int64) (*entity.Produto, error) {
	return nil, errors.New("não usado")
}
func (f *repoFake) Criar(ctx context.Context, p *entity.Produto) error {
	return errors.New("não usado")
}

func (f *repoFake) Atualizar(ctx context.Context, p *entity.Produto) error {
	return errors.New("não usado")
}

func (f *repoFake) Excluir(ctx context.Context, id int64) error {
	return errors.New("não usado")
}

func repoComCatalogo() *repoFake {
	tecidos := nProdutos(20)
	return &repoFake{
		todos: append(nProdutos(30), entity.Produto{ID: 99, Nome: "Agulha dourada"}),
		porCategoria: map[int64][]entity.Produto{
			7: tecidos,
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Troca de categoria: rebusca e volta para a página 1
// ──────────────────────────────────────────────────────────────────────────────

func TestConsulta_SelecionarCategoriaRebuscaEResetaPagina(t *testing.T) {
	repo := repoComCatalogo()
	c := NovaConsulta(repo, nil)
	require.NoError(t, c.Carregar(context.Background()))
	assert.Equal(t, 1, repo.chamadasTodos)

	c.DefinirPagina(3)
	require.Equal(t, 3, c.PaginaAtual())

	id := int64(7)
	require.NoError(t, c.SelecionarCategoria(context.Background(), &id))

	assert.Equal(t, 1, repo.chamadasPorCategoria, "trocar categoria deve rebuscar do backend")
	assert.Equal(t, 1, c.PaginaAtual(), "trocar categoria deve voltar para a página 1")
	assert.Len(t, c.Filtrados(), 20)
}

func TestConsulta_CategoriaPreservaOrdemDoBackend(t *testing.T) {
	repo := repoComCatalogo()
	c := NovaConsulta(repo, nil)
	id := int64(7)
	require.NoError(t, c.SelecionarCategoria(context.Background(), &id))

	filtrados := c.Filtrados()
	for i := range filtrados {
		assert.Equal(t, int64(i+1), filtrados[i].ID,
			"com categoria ativa a ordem do backend deve ser preservada")
	}
}

func TestConsulta_VoltarParaTodasEmbaralhaDeNovo(t *testing.T) {
	repo := repoComCatalogo()
	c := NovaConsulta(repo, nil)
	require.NoError(t, c.Carregar(context.Background()))

	id := int64(7)
	require.NoError(t, c.SelecionarCategoria(context.Background(), &id))
	require.NoError(t, c.SelecionarCategoria(context.Background(), nil))

	assert.Equal(t, 2, repo.chamadasTodos, "voltar para 'todas' rebusca o catálogo completo")
	assert.Nil(t, c.Categoria())
	assert.Len(t, c.Filtrados(), 31)
}

// ──────────────────────────────────────────────────────────────────────────────
// Troca de busca: refiltra em memória, sem rebuscar e sem mexer na página
// ──────────────────────────────────────────────────────────────────────────────

func TestConsulta_DefinirBuscaNaoRebuscaNemResetaPagina(t *testing.T) {
	repo := repoComCatalogo()
	c := NovaConsulta(repo, nil)
	require.NoError(t, c.Carregar(context.Background()))
	buscasAntes := repo.chamadasTodos + repo.chamadasPorCategoria

	c.DefinirPagina(2)
	c.DefinirBusca("agulha")

	assert.Equal(t, buscasAntes, repo.chamadasTodos+repo.chamadasPorCategoria,
		"trocar o termo de busca nunca vai ao backend")
	assert.Equal(t, 2, c.PaginaAtual(),
		"trocar o termo de busca não reposiciona a página")

	filtrados := c.Filtrados()
	require.Len(t, filtrados, 1)
	assert.Equal(t, int64(99), filtrados[0].ID)
	assert.Empty(t, c.Pagina(),
		"página 2 de um resultado de um item fica vazia; o chamador decide voltar")
}

func TestConsulta_BuscaVaziaRetemTudo(t *testing.T) {
	repo := repoComCatalogo()
	c := NovaConsulta(repo, nil)
	require.NoError(t, c.Carregar(context.Background()))

	c.DefinirBusca("agulha")
	c.DefinirBusca("")
	assert.Len(t, c.Filtrados(), 31, "limpar o termo devolve o conjunto inteiro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginação da consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestConsulta_DefinirPaginaSaneiaAbaixoDeUm(t *testing.T) {
	repo := repoComCatalogo()
	c := NovaConsulta(repo, nil)
	require.NoError(t, c.Carregar(context.Background()))

	c.DefinirPagina(0)
	assert.Equal(t, 1, c.PaginaAtual())
	c.DefinirPagina(-5)
	assert.Equal(t, 1, c.PaginaAtual())

	c.DefinirPagina(1000)
	assert.Equal(t, 1000, c.PaginaAtual(), "acima do total é aceito; a página sai vazia")
	assert.Empty(t, c.Pagina())
}

func TestConsulta_TotalPaginasSobreOFiltrado(t *testing.T) {
	repo := repoComCatalogo()
	c := NovaConsulta(repo, nil)
	require.NoError(t, c.Carregar(context.Background()))

	assert.Equal(t, 3, c.TotalPaginas(), "31 produtos em páginas de 12")
	c.DefinirBusca("agulha")
	assert.Equal(t, 1, c.TotalPaginas(), "o total acompanha o conjunto filtrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Falhas do backend
// ──────────────────────────────────────────────────────────────────────────────

func TestConsulta_ErroDoBackendPreservaEstadoAnterior(t *testing.T) {
	repo := repoComCatalogo()
	c := NovaConsulta(repo, nil)
	require.NoError(t, c.Carregar(context.Background()))
	c.DefinirPagina(2)

	repo.erro = errors.New("backend fora do ar")
	id := int64(7)
	err := c.SelecionarCategoria(context.Background(), &id)
	require.Error(t, err)

	assert.Len(t, c.Filtrados(), 31, "falha na rebusca mantém o conjunto anterior")
	assert.Equal(t, 2, c.PaginaAtual(), "falha na rebusca não mexe na página")
	assert.Nil(t, c.Categoria(), "a categoria só troca quando a rebusca dá certo")
}
