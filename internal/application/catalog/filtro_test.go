package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

func produtosDeExemplo() []entity.Produto {
	tecidos := &entity.Categoria{ID: 1, Nome: "Tecidos"}
	aviamentos := &entity.Categoria{ID: 2, Nome: "Aviamentos"}
	return []entity.Produto{
		{ID: 1, Nome: "Tricoline estampada", Marca: "Círculo", Categoria: tecidos},
		{ID: 2, Nome: "Malha canelada", Descricao: "malha para vestuário", Categoria: tecidos},
		{ID: 3, Nome: "Linha de costura", Marca: "Corrente", Categoria: aviamentos},
		{ID: 4, Nome: "Botão de coco", Categoria: aviamentos},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtrar
// ──────────────────────────────────────────────────────────────────────────────

func TestFiltrar_TermoVazioRetemTodos(t *testing.T) {
	produtos := produtosDeExemplo()
	assert.Len(t, Filtrar(produtos, ""), len(produtos),
		"termo vazio deve reter o conjunto inteiro")
	assert.Len(t, Filtrar(produtos, "  !!"), len(produtos),
		"termo que normaliza para vazio equivale a termo vazio")
}

func TestFiltrar_PorNomeIgnorandoAcentos(t *testing.T) {
	produtos := produtosDeExemplo()
	resultado := Filtrar(produtos, "botao")
	require.Len(t, resultado, 1)
	assert.Equal(t, int64(4), resultado[0].ID, "deve achar 'Botão' buscando 'botao'")
}

func TestFiltrar_PorMarcaEDescricao(t *testing.T) {
	produtos := produtosDeExemplo()

	porMarca := Filtrar(produtos, "CÍRCULO")
	require.Len(t, porMarca, 1)
	assert.Equal(t, int64(1), porMarca[0].ID)

	porDescricao := Filtrar(produtos, "vestuario")
	require.Len(t, porDescricao, 1)
	assert.Equal(t, int64(2), porDescricao[0].ID)
}

func TestFiltrar_PorNomeDaCategoriaEmbutida(t *testing.T) {
	produtos := produtosDeExemplo()
	resultado := Filtrar(produtos, "aviamentos")
	require.Len(t, resultado, 2)
	assert.Equal(t, int64(3), resultado[0].ID)
	assert.Equal(t, int64(4), resultado[1].ID)
}

func TestFiltrar_SemCategoriaEmbutidaNaoQuebra(t *testing.T) {
	produtos := []entity.Produto{{ID: 9, Nome: "Avulso"}}
	assert.Empty(t, Filtrar(produtos, "tecidos"),
		"produto sem categoria embutida só corresponde pelos campos próprios")
}

func TestFiltrar_Idempotente(t *testing.T) {
	produtos := produtosDeExemplo()
	uma := Filtrar(produtos, "malha")
	duas := Filtrar(uma, "malha")
	assert.Equal(t, uma, duas, "refiltrar com o mesmo termo não deve mudar o resultado")
}

func TestFiltrar_PreservaOrdemRelativa(t *testing.T) {
	produtos := produtosDeExemplo()
	resultado := Filtrar(produtos, "a") // corresponde a vários
	for i := 1; i < len(resultado); i++ {
		assert.Less(t, resultado[i-1].ID, resultado[i].ID,
			"o filtro deve preservar a ordem relativa do conjunto")
	}
}
