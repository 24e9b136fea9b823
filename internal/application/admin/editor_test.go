package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telasecia/vitrine/internal/domain"
	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake do repositório de subcategorias
// ──────────────────────────────────────────────────────────────────────────────

type subRepoFake struct {
	proximoID int64
	excluidos []int64
	lotes     [][]entity.Subcategoria
	erroLote  error
}

var _ repository.SubcategoriaRepository = (*subRepoFake)(nil)

func (f *subRepoFake) ListarTodas(ctx context.Context) ([]entity.Subcategoria, error) {
	return nil, errors.New("não usado")
}
func (f *subRepoFake) BuscarPorID(ctx context.Context, id int64) (*entity.Subcategoria, error) {
	return nil, errors.New("não usado")
}
func (f *subRepoFake) ListarPorCategoria(ctx context.Context, categoriaID int64) ([]entity.Subcategoria, error) {
	return nil, errors.New("não usado")
}
func (f *subRepoFake) Criar(ctx context.Context, s *entity.Subcategoria) error {
	return errors.New("não usado")
}

func (f *subRepoFake) CriarLote(ctx context.Context, categoriaID int64, subs []entity.Subcategoria) ([]entity.Subcategoria, error) {
	if f.erroLote != nil {
		return nil, f.erroLote
	}
	criadas := make([]entity.Subcategoria, 0, len(subs))
	for _, s := range subs {
		f.proximoID++
		s.ID = f.proximoID
		s.CategoriaID = categoriaID
		criadas = append(criadas, s)
	}
	f.lotes = append(f.lotes, criadas)
	return criadas, nil
}

func (f *subRepoFake) Atualizar(ctx context.Context, s *entity.Subcategoria) error {
	return errors.New("não usado")
}

func (f *subRepoFake) Excluir(ctx context.Context, id int64) error {
	f.excluidos = append(f.excluidos, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Adicionar / Remover
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_AdicionarFicaPendenteSemIrAoBackend(t *testing.T) {
	repo := &subRepoFake{}
	e := NewEditorSubcategorias(repo, nil)

	reg := e.Adicionar(entity.Subcategoria{Nome: "Algodão"})

	assert.False(t, reg.EstaPersistido(), "item recém-adicionado é pendente")
	assert.NotEmpty(t, reg.ChaveLocal(), "pendente carrega chave local única")
	assert.Len(t, e.Pendentes(), 1)
	assert.Empty(t, repo.lotes, "adicionar nunca chama o backend")
}

func TestEditor_ChavesLocaisSaoUnicas(t *testing.T) {
	e := NewEditorSubcategorias(&subRepoFake{}, nil)
	a := e.Adicionar(entity.Subcategoria{Nome: "A"})
	b := e.Adicionar(entity.Subcategoria{Nome: "B"})
	assert.NotEqual(t, a.ChaveLocal(), b.ChaveLocal())
}

func TestEditor_RemoverPendenteSoMexeNaMemoria(t *testing.T) {
	repo := &subRepoFake{}
	e := NewEditorSubcategorias(repo, nil)
	reg := e.Adicionar(entity.Subcategoria{Nome: "Algodão"})

	require.NoError(t, e.Remover(context.Background(), reg))

	assert.Empty(t, e.Itens())
	assert.Empty(t, repo.excluidos, "remover pendente não chama o backend")
}

func TestEditor_RemoverPersistidoExcluiNoBackend(t *testing.T) {
	repo := &subRepoFake{}
	existentes := []entity.Subcategoria{{ID: 42, Nome: "Malha", CategoriaID: 1}}
	e := NewEditorSubcategorias(repo, existentes)

	require.NoError(t, e.Remover(context.Background(), entity.Persistido(42)))

	assert.Empty(t, e.Itens())
	assert.Equal(t, []int64{42}, repo.excluidos, "persistido é excluído no backend na hora")
}

func TestEditor_RemoverInexistenteRetornaNaoEncontrado(t *testing.T) {
	e := NewEditorSubcategorias(&subRepoFake{}, nil)
	err := e.Remover(context.Background(), entity.Persistido(999))
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Descarregar
// ──────────────────────────────────────────────────────────────────────────────

func TestDescarregar_DonaSemIDFalhaComRegistroLocal(t *testing.T) {
	e := NewEditorSubcategorias(&subRepoFake{}, nil)
	e.Adicionar(entity.Subcategoria{Nome: "Algodão"})

	err := e.Descarregar(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrRegistroLocal,
		"não há como lotar subcategorias de uma categoria ainda sem id")
}

func TestDescarregar_SemPendentesNaoChamaOBackend(t *testing.T) {
	repo := &subRepoFake{}
	existentes := []entity.Subcategoria{{ID: 1, Nome: "Malha", CategoriaID: 4}}
	e := NewEditorSubcategorias(repo, existentes)

	require.NoError(t, e.Descarregar(context.Background(), 4))
	assert.Empty(t, repo.lotes, "sem pendentes o descarregamento é um no-op")
}

func TestDescarregar_PromovePendentesNaOrdemDoLote(t *testing.T) {
	repo := &subRepoFake{proximoID: 100}
	e := NewEditorSubcategorias(repo, []entity.Subcategoria{{ID: 1, Nome: "Existente", CategoriaID: 4}})
	e.Adicionar(entity.Subcategoria{Nome: "Primeira"})
	e.Adicionar(entity.Subcategoria{Nome: "Segunda"})

	require.NoError(t, e.Descarregar(context.Background(), 4))

	require.Len(t, repo.lotes, 1, "um único POST em lote para todos os pendentes")
	itens := e.Itens()
	require.Len(t, itens, 3)

	assert.Equal(t, entity.Persistido(1), itens[0].Registro, "persistido pré-existente não muda")
	assert.True(t, itens[1].Registro.EstaPersistido(), "pendente promovido a persistido")
	assert.Equal(t, int64(101), itens[1].Valor.ID)
	assert.Equal(t, "Primeira", itens[1].Valor.Nome)
	assert.Equal(t, int64(102), itens[2].Valor.ID)
	assert.Equal(t, "Segunda", itens[2].Valor.Nome)
	assert.Empty(t, e.Pendentes(), "nada fica pendente depois do descarregamento")
}

func TestDescarregar_FalhaDoLoteMantemPendentes(t *testing.T) {
	repo := &subRepoFake{erroLote: errors.New("backend fora do ar")}
	e := NewEditorSubcategorias(repo, nil)
	e.Adicionar(entity.Subcategoria{Nome: "Algodão"})

	err := e.Descarregar(context.Background(), 4)
	require.Error(t, err)
	assert.Len(t, e.Pendentes(), 1, "falha no lote preserva os pendentes para nova tentativa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Editor de variações (mesmo contrato)
// ──────────────────────────────────────────────────────────────────────────────

type varRepoFake struct {
	proximoID int64
	lotes     [][]entity.VariacaoProduto
}

var _ repository.VariacaoProdutoRepository = (*varRepoFake)(nil)

func (f *varRepoFake) ListarTodas(ctx context.Context) ([]entity.VariacaoProduto, error) {
	return nil, errors.New("não usado")
}
func (f *varRepoFake) BuscarPorID(ctx context.Context, id int64) (*entity.VariacaoProduto, error) {
	return nil, errors.New("não usado")
}
func (f *varRepoFake) ListarPorProduto(ctx context.Context, produtoID int64) ([]entity.VariacaoProduto, error) {
	return nil, errors.New("não usado")
}
func (f *varRepoFake) Criar(ctx context.Context, v *entity.VariacaoProduto) error {
	return errors.New("não usado")
}

func (f *varRepoFake) CriarLote(ctx context.Context, produtoID int64, variacoes []entity.VariacaoProduto) ([]entity.VariacaoProduto, error) {
	criadas := make([]entity.VariacaoProduto, 0, len(variacoes))
	for _, v := range variacoes {
		f.proximoID++
		v.ID = f.proximoID
		v.ProdutoID = produtoID
		criadas = append(criadas, v)
	}
	f.lotes = append(f.lotes, criadas)
	return criadas, nil
}

func (f *varRepoFake) Atualizar(ctx context.Context, v *entity.VariacaoProduto) error {
	return errors.New("não usado")
}
func (f *varRepoFake) Excluir(ctx context.Context, id int64) error { return nil }

func TestEditorVariacoes_DescarregarPromovePendentes(t *testing.T) {
	repo := &varRepoFake{}
	e := NewEditorVariacoes(repo, nil)
	e.Adicionar(entity.VariacaoProduto{Nome: "Floral azul"})
	e.Adicionar(entity.VariacaoProduto{Nome: "Poá vermelho"})

	require.NoError(t, e.Descarregar(context.Background(), 9))

	require.Len(t, repo.lotes, 1)
	itens := e.Itens()
	require.Len(t, itens, 2)
	assert.True(t, itens[0].Registro.EstaPersistido())
	assert.Equal(t, int64(9), itens[0].Valor.ProdutoID)
	assert.Empty(t, e.Pendentes())
}
