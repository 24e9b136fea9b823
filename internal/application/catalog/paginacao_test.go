package catalog

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

func nProdutos(n int) []entity.Produto {
	out := make([]entity.Produto, n)
	for i := range out {
		out[i] = entity.Produto{ID: int64(i + 1), Nome: fmt.Sprintf("produto %d", i+1)}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginar
// ──────────────────────────────────────────────────────────────────────────────

func TestPaginar_PrimeiraPaginaCheia(t *testing.T) {
	produtos := nProdutos(30)
	pagina := Paginar(produtos, 1)
	require.Len(t, pagina, TamanhoPagina)
	assert.Equal(t, int64(1), pagina[0].ID)
	assert.Equal(t, int64(12), pagina[len(pagina)-1].ID)
}

func TestPaginar_UltimaPaginaParcial(t *testing.T) {
	produtos := nProdutos(30) // 12 + 12 + 6
	pagina := Paginar(produtos, 3)
	require.Len(t, pagina, 6)
	assert.Equal(t, int64(25), pagina[0].ID)
	assert.Equal(t, int64(30), pagina[len(pagina)-1].ID)
}

func TestPaginar_AlemDaUltimaDevolveVazio(t *testing.T) {
	produtos := nProdutos(30)
	assert.Empty(t, Paginar(produtos, 4),
		"página além da última devolve fatia vazia, sem clamp e sem pânico")
	assert.Empty(t, Paginar(produtos, 100))
}

func TestPaginar_PaginaInvalidaDevolveVazio(t *testing.T) {
	produtos := nProdutos(5)
	assert.Empty(t, Paginar(produtos, 0))
	assert.Empty(t, Paginar(produtos, -3))
}

func TestPaginar_ConjuntoVazio(t *testing.T) {
	assert.Empty(t, Paginar(nil, 1))
	assert.Empty(t, Paginar([]entity.Produto{}, 1))
}

func TestPaginar_ParticaoCompleta(t *testing.T) {
	// A concatenação de todas as páginas reconstrói o conjunto, sem
	// sobreposição e sem buraco.
	produtos := nProdutos(29)
	total := TotalPaginas(len(produtos))
	var juntos []entity.Produto
	for p := 1; p <= total; p++ {
		juntos = append(juntos, Paginar(produtos, p)...)
	}
	assert.Equal(t, produtos, juntos)
}

// ──────────────────────────────────────────────────────────────────────────────
// TotalPaginas
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalPaginas(t *testing.T) {
	casos := []struct {
		n        int
		esperado int
	}{
		{0, 0},
		{1, 1},
		{11, 1},
		{12, 1},
		{13, 2},
		{24, 2},
		{25, 3},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, TotalPaginas(c.n), "TotalPaginas(%d)", c.n)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Embaralhar
// ──────────────────────────────────────────────────────────────────────────────

func TestEmbaralhar_EhPermutacao(t *testing.T) {
	produtos := nProdutos(50)
	Embaralhar(produtos)

	require.Len(t, produtos, 50, "embaralhar não muda o tamanho")
	ids := make([]int64, len(produtos))
	for i, p := range produtos {
		ids[i] = p.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		assert.Equal(t, int64(i+1), id, "todo id original deve continuar presente exatamente uma vez")
	}
}

func TestEmbaralhar_VazioENil(t *testing.T) {
	assert.NotPanics(t, func() { Embaralhar(nil) })
	assert.NotPanics(t, func() { Embaralhar([]entity.Produto{}) })
}
