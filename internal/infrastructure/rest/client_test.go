package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telasecia/vitrine/internal/domain"
	"github.com/telasecia/vitrine/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type tokenFixo string

func (t tokenFixo) Token() string { return string(t) }

func decimalDe(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func clienteDe(srv *httptest.Server, cfg Config) *Client {
	cfg.BaseURL = srv.URL
	return New(cfg)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bearer token
// ──────────────────────────────────────────────────────────────────────────────

func TestDo_AnexaBearerQuandoAutenticado(t *testing.T) {
	var recebido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]entity.Categoria{})
	}))
	defer srv.Close()

	c := clienteDe(srv, Config{Tokens: tokenFixo("meu-token")})
	require.NoError(t, c.get(context.Background(), "/categorias", &[]entity.Categoria{}))
	assert.Equal(t, "Bearer meu-token", recebido,
		"toda requisição autenticada sai com o bearer da sessão")
}

func TestDo_SemTokenNaoMandaAuthorization(t *testing.T) {
	var recebido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]entity.Categoria{})
	}))
	defer srv.Close()

	c := clienteDe(srv, Config{Tokens: tokenFixo("")})
	require.NoError(t, c.get(context.Background(), "/categorias", &[]entity.Categoria{}))
	assert.Empty(t, recebido, "anônimo não manda header Authorization")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invalidação de sessão em 401/403
// ──────────────────────────────────────────────────────────────────────────────

func TestDo_401DisparaInvalidacaoDeSessao(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	invalidada := 0
	c := clienteDe(srv, Config{AoExpirarSessao: func() { invalidada++ }})
	err := c.get(context.Background(), "/produtos", nil)

	require.Error(t, err)
	assert.Equal(t, 1, invalidada, "qualquer 401 dispara a invalidação global da sessão")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
}

func TestDo_403DisparaInvalidacaoDeSessao(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	invalidada := 0
	c := clienteDe(srv, Config{AoExpirarSessao: func() { invalidada++ }})
	err := c.delete(context.Background(), "/produtos/1")

	require.Error(t, err)
	assert.Equal(t, 1, invalidada)
	assert.ErrorIs(t, err, domain.ErrAcessoNegado)
}

func TestDo_404NaoDisparaInvalidacao(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	invalidada := 0
	c := clienteDe(srv, Config{AoExpirarSessao: func() { invalidada++ }})
	err := c.get(context.Background(), "/produtos/999", nil)

	require.Error(t, err)
	assert.Zero(t, invalidada, "404 é erro do recurso, não da sessão")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Taxonomia de erros
// ──────────────────────────────────────────────────────────────────────────────

func TestDo_FalhaDeTransporteViraErroRede(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // derruba antes de usar

	c := clienteDe(srv, Config{})
	err := c.get(context.Background(), "/categorias", nil)

	var rede *domain.ErroRede
	require.ErrorAs(t, err, &rede, "backend inalcançável vira ErroRede")
}

func TestDo_RespostaNaoDoisXXViraErroAPIComCorpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"VALIDATION_ERROR"}`))
	}))
	defer srv.Close()

	c := clienteDe(srv, Config{})
	err := c.post(context.Background(), "/produtos", map[string]string{}, nil)

	var api *domain.ErroAPI
	require.ErrorAs(t, err, &api)
	assert.Equal(t, http.StatusUnprocessableEntity, api.Status)
	assert.Contains(t, api.Corpo, "VALIDATION_ERROR", "o corpo do erro é preservado para exibição")
}

// ──────────────────────────────────────────────────────────────────────────────
// Decodificação com entidades embutidas
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutoClient_DecodificaEmbutidosRecursivamente(t *testing.T) {
	corpo := `{
		"id": 5, "nome": "Tricoline", "preco": 24.9, "estoque": 10, "categoria_id": 1,
		"categoria": {"id": 1, "nome": "Tecidos", "subcategorias": [{"id": 2, "nome": "Algodão", "categoria_id": 1}]},
		"subcategoria": {"id": 2, "nome": "Algodão", "categoria_id": 1},
		"variacoes": [{"id": 3, "nome": "Floral azul", "produto_id": 5}]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(corpo))
	}))
	defer srv.Close()

	repo := NewProdutoClient(clienteDe(srv, Config{}))
	p, err := repo.BuscarPorID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Tricoline", p.Nome)
	assert.True(t, p.Preco.Equal(decimalDe(t, "24.9")), "preço chega como número JSON")
	require.NotNil(t, p.Categoria)
	assert.Equal(t, "Tecidos", p.Categoria.Nome)
	require.Len(t, p.Categoria.Subcategorias, 1)
	require.NotNil(t, p.Subcategoria)
	require.Len(t, p.Variacoes, 1)
	assert.Equal(t, "Floral azul", p.Variacoes[0].Nome)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formatos dos lotes
// ──────────────────────────────────────────────────────────────────────────────

func TestSubcategoriaClient_CriarLoteEnvelopaERespeitaOrdem(t *testing.T) {
	var caminho string
	var corpo map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caminho = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&corpo))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":10,"nome":"Algodão","categoria_id":4},{"id":11,"nome":"Malha","categoria_id":4}]`))
	}))
	defer srv.Close()

	repo := NewSubcategoriaClient(clienteDe(srv, Config{}))
	criadas, err := repo.CriarLote(context.Background(), 4, []entity.Subcategoria{
		{Nome: "Algodão"}, {Nome: "Malha"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/subcategorias/categoria/4", caminho)
	_, temEnvelope := corpo["subcategorias"]
	assert.True(t, temEnvelope, `o lote de subcategorias viaja envelopado em {"subcategorias": [...]}`)

	require.Len(t, criadas, 2)
	assert.Equal(t, int64(10), criadas[0].ID)
	assert.Equal(t, int64(11), criadas[1].ID, "a resposta preserva a ordem do lote")
}

func TestVariacaoClient_CriarLoteMandaArrayPuro(t *testing.T) {
	var caminho string
	var corpo json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caminho = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&corpo))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":7,"nome":"Floral","produto_id":3}]`))
	}))
	defer srv.Close()

	repo := NewVariacaoClient(clienteDe(srv, Config{}))
	criadas, err := repo.CriarLote(context.Background(), 3, []entity.VariacaoProduto{{Nome: "Floral"}})
	require.NoError(t, err)

	assert.Equal(t, "/variacoes-produto/produto/3", caminho)
	assert.Equal(t, byte('['), corpo[0], "o lote de variações viaja como array JSON puro, sem envelope")
	require.Len(t, criadas, 1)
	assert.Equal(t, int64(7), criadas[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuarioClient_LoginDecodificaTokenEUsuario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usuarios/login", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.com", creds["email"])
		assert.Equal(t, "segredo", creds["senha"])
		_, _ = w.Write([]byte(`{"token":"tok-123","usuario":{"id":1,"nome":"Ana","email":"a@b.com","tipo_usuario_id":1,
			"tipo_usuario":{"id":1,"tipo":"administrador","permissoes":[{"id":1,"tipo_usuario_id":1,"permissao":"criar_produto"}]}}}`))
	}))
	defer srv.Close()

	repo := NewUsuarioClient(clienteDe(srv, Config{}))
	token, usuario, err := repo.Login(context.Background(), "a@b.com", "segredo")
	require.NoError(t, err)

	assert.Equal(t, "tok-123", token)
	require.NotNil(t, usuario)
	assert.True(t, usuario.TemPermissao("criar_produto"),
		"o papel com permissões chega embutido no login")
}

func TestUsuarioClient_CriarTraduz409ParaEmailJaExiste(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"EMAIL_EXISTS"}`))
	}))
	defer srv.Close()

	repo := NewUsuarioClient(clienteDe(srv, Config{}))
	u := entity.Usuario{Nome: "Ana", Email: "a@b.com", Senha: "123456", TipoUsuarioID: entity.TipoUsuarioCliente}
	err := repo.Criar(context.Background(), &u)
	assert.True(t, errors.Is(err, domain.ErrEmailJaExiste))
}
