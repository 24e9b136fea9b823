package console

import (
	"fmt"
	"time"

	"github.com/telasecia/vitrine/internal/application/session"
	"github.com/telasecia/vitrine/internal/domain/repository"
	"github.com/telasecia/vitrine/internal/infrastructure/rest"
	"github.com/telasecia/vitrine/internal/infrastructure/sessionfile"
	"github.com/telasecia/vitrine/pkg/config"
	"github.com/telasecia/vitrine/pkg/logger"
)

// App dependências compartilhadas pelos comandos do console: sessão hidratada,
// pipeline REST com o bearer da sessão e os clientes de recurso.
type App struct {
	Cfg    *config.Config
	Log    *logger.Logger
	Sessao *session.Store

	Categorias    repository.CategoriaRepository
	Subcategorias repository.SubcategoriaRepository
	Produtos      repository.ProdutoRepository
	Variacoes     repository.VariacaoProdutoRepository
	Usuarios      repository.UsuarioRepository
	Tipos         repository.TipoUsuarioRepository
	Permissoes    repository.PermissaoRepository
	Contato       repository.ContatoRepository
}

// NewApp monta o grafo do cliente: arquivo de sessão -> store de sessão ->
// pipeline REST (bearer da sessão, invalidação em 401/403) -> clientes.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	caminho, err := cfg.Sessao.Caminho()
	if err != nil {
		return nil, err
	}
	sess := session.New(sessionfile.New(caminho), log)
	if err := sess.Hidratar(); err != nil {
		return nil, err
	}
	sess.AoInvalidar = func() {
		fmt.Println(estiloErro.Render("Sessão expirada. Entre novamente com 'vitrine login'."))
	}

	cliente := rest.New(rest.Config{
		BaseURL:         cfg.API.BaseURL,
		Timeout:         time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		Tokens:          sess,
		AoExpirarSessao: sess.Invalidar,
		Logger:          log,
	})

	return &App{
		Cfg:           cfg,
		Log:           log,
		Sessao:        sess,
		Categorias:    rest.NewCategoriaClient(cliente),
		Subcategorias: rest.NewSubcategoriaClient(cliente),
		Produtos:      rest.NewProdutoClient(cliente),
		Variacoes:     rest.NewVariacaoClient(cliente),
		Usuarios:      rest.NewUsuarioClient(cliente),
		Tipos:         rest.NewTipoUsuarioClient(cliente),
		Permissoes:    rest.NewPermissaoClient(cliente),
		Contato:       rest.NewContatoClient(cliente),
	}, nil
}
