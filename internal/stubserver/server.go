package stubserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/telasecia/vitrine/internal/domain/repository"
	"github.com/telasecia/vitrine/pkg/config"
	"github.com/telasecia/vitrine/pkg/logger"
)

// Server backend stub de desenvolvimento: implementa em memória toda a
// superfície REST que o cliente consome, para rodar a vitrine sem backend
// externo e para os testes de integração dos clientes de recurso.
type Server struct {
	cfg      config.StubConfig
	store    *Store
	arquivos repository.ArmazenamentoArquivos
	log      *logger.Logger
}

// New constrói o servidor stub com dados de demonstração semeados.
func New(cfg config.StubConfig, arquivos repository.ArmazenamentoArquivos, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Server{cfg: cfg, store: NewStore(), arquivos: arquivos, log: log}
	s.seed()
	return s
}

// App monta a aplicação Fiber com todas as rotas.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "vitrine-stub",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "vitrine-stub"})
	})

	// Leituras do catálogo são públicas, como no backend real.
	app.Get("/categorias", s.listarCategorias)
	app.Get("/categorias/:id", s.buscarCategoria)
	app.Get("/subcategorias", s.listarSubcategorias)
	app.Get("/subcategorias/:id", s.buscarSubcategoria)
	app.Get("/subcategorias/categoria/:id", s.listarSubcategoriasPorCategoria)
	app.Get("/produtos", s.listarProdutos)
	app.Get("/produtos/:id", s.buscarProduto)
	app.Get("/produtos/categoria/:id", s.listarProdutosPorCategoria)
	app.Get("/variacoes-produto", s.listarVariacoes)
	app.Get("/variacoes-produto/:id", s.buscarVariacao)
	app.Get("/variacoes-produto/produto/:id", s.listarVariacoesPorProduto)

	// Público: cadastro, login, reset de senha, contato.
	app.Post("/usuarios", s.criarUsuario)
	app.Post("/usuarios/login", s.login)
	app.Post("/usuarios/reset-password", s.resetSenha)
	app.Post("/contato", s.receberContato)

	auth := authMiddleware(s.cfg.JWTSecret)

	// Mutações do catálogo exigem sessão com permissão de edição.
	perm := s.requirePermissao("criar_produto")
	app.Post("/categorias", auth, perm, s.criarCategoria)
	app.Put("/categorias/:id", auth, perm, s.atualizarCategoria)
	app.Delete("/categorias/:id", auth, perm, s.excluirCategoria)
	app.Post("/subcategorias", auth, perm, s.criarSubcategoria)
	app.Post("/subcategorias/categoria/:id", auth, perm, s.criarSubcategoriasLote)
	app.Put("/subcategorias/:id", auth, perm, s.atualizarSubcategoria)
	app.Delete("/subcategorias/:id", auth, perm, s.excluirSubcategoria)
	app.Post("/produtos", auth, perm, s.criarProduto)
	app.Put("/produtos/:id", auth, perm, s.atualizarProduto)
	app.Delete("/produtos/:id", auth, perm, s.excluirProduto)
	app.Post("/variacoes-produto", auth, perm, s.criarVariacao)
	app.Post("/variacoes-produto/produto/:id", auth, perm, s.criarVariacoesLote)
	app.Put("/variacoes-produto/:id", auth, perm, s.atualizarVariacao)
	app.Delete("/variacoes-produto/:id", auth, perm, s.excluirVariacao)

	// Administração de usuários e papéis exige sessão.
	app.Get("/usuarios", auth, s.listarUsuarios)
	app.Get("/usuarios/:id", auth, s.buscarUsuario)
	app.Put("/usuarios/:id", auth, s.atualizarUsuario)
	app.Delete("/usuarios/:id", auth, s.excluirUsuario)
	app.Get("/tipos_usuarios", auth, s.listarTipos)
	app.Get("/tipos_usuarios/:id", auth, s.buscarTipo)
	app.Post("/tipos_usuarios", auth, s.criarTipo)
	app.Put("/tipos_usuarios/:id", auth, s.atualizarTipo)
	app.Delete("/tipos_usuarios/:id", auth, s.excluirTipo)
	app.Get("/permissoes-tipos-usuarios", auth, s.listarPermissoes)
	app.Get("/permissoes-tipos-usuarios/:id", auth, s.buscarPermissao)
	app.Post("/permissoes-tipos-usuarios", auth, s.criarPermissao)
	app.Put("/permissoes-tipos-usuarios/:id", auth, s.atualizarPermissao)
	app.Delete("/permissoes-tipos-usuarios/:id", auth, s.excluirPermissao)

	// Upload de imagens delegado ao armazenamento local.
	app.Post("/upload", auth, s.upload)
	if s.cfg.UploadDir != "" {
		app.Static("/uploads", s.cfg.UploadDir)
	}

	return app
}
