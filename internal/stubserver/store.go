package stubserver

import (
	"sort"
	"sync"
	"time"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// Store memória do backend stub: mapas por recurso e um contador global de
// ids (autoincremento 1-based, como o backend real; id 0 nunca é atribuído).
// PUT sobrescreve às cegas: última escrita vence, sem token de versão.
type Store struct {
	mu  sync.Mutex
	seq int64

	categorias map[int64]*entity.Categoria
	subs       map[int64]*entity.Subcategoria
	produtos   map[int64]*entity.Produto
	variacoes  map[int64]*entity.VariacaoProduto
	usuarios   map[int64]*entity.Usuario
	senhas     map[int64]string // bcrypt hash por usuário; nunca serializado
	tipos      map[int64]*entity.TipoUsuario
	permissoes map[int64]*entity.PermissaoTipoUsuario
	contatos   []entity.MensagemContato
}

// NewStore constrói o store vazio.
func NewStore() *Store {
	return &Store{
		categorias: make(map[int64]*entity.Categoria),
		subs:       make(map[int64]*entity.Subcategoria),
		produtos:   make(map[int64]*entity.Produto),
		variacoes:  make(map[int64]*entity.VariacaoProduto),
		usuarios:   make(map[int64]*entity.Usuario),
		senhas:     make(map[int64]string),
		tipos:      make(map[int64]*entity.TipoUsuario),
		permissoes: make(map[int64]*entity.PermissaoTipoUsuario),
	}
}

func (s *Store) proximoID() int64 {
	s.seq++
	return s.seq
}

func agora() *time.Time {
	t := time.Now().UTC().Truncate(time.Second)
	return &t
}

// subcategoriasDa devolve as subcategorias da categoria em ordem de id.
// Chamar com o lock tomado.
func (s *Store) subcategoriasDa(categoriaID int64) []entity.Subcategoria {
	var out []entity.Subcategoria
	for _, sub := range s.subs {
		if sub.CategoriaID == categoriaID {
			out = append(out, *sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// variacoesDo devolve as variações do produto em ordem de id.
// Chamar com o lock tomado.
func (s *Store) variacoesDo(produtoID int64) []entity.VariacaoProduto {
	var out []entity.VariacaoProduto
	for _, v := range s.variacoes {
		if v.ProdutoID == produtoID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// permissoesDo devolve as permissões do papel em ordem de id.
// Chamar com o lock tomado.
func (s *Store) permissoesDo(tipoID int64) []entity.PermissaoTipoUsuario {
	var out []entity.PermissaoTipoUsuario
	for _, p := range s.permissoes {
		if p.TipoUsuarioID == tipoID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Ordenação estável por id para as listagens, já que iteração de mapa é aleatória.

func ordenarCategorias(cs []entity.Categoria) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
}

func ordenarSubcategorias(ss []entity.Subcategoria) {
	sort.Slice(ss, func(i, j int) bool { return ss[i].ID < ss[j].ID })
}

func ordenarProdutos(ps []entity.Produto) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}

func ordenarVariacoes(vs []entity.VariacaoProduto) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].ID < vs[j].ID })
}

func ordenarUsuarios(us []entity.Usuario) {
	sort.Slice(us, func(i, j int) bool { return us[i].ID < us[j].ID })
}

func ordenarTipos(ts []entity.TipoUsuario) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].ID < ts[j].ID })
}

func ordenarPermissoes(ps []entity.PermissaoTipoUsuario) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}

// montarCategoria devolve uma cópia da categoria com subcategorias embutidas.
// Chamar com o lock tomado.
func (s *Store) montarCategoria(c *entity.Categoria) entity.Categoria {
	out := *c
	out.Subcategorias = s.subcategoriasDa(c.ID)
	if out.Subcategorias == nil {
		out.Subcategorias = []entity.Subcategoria{}
	}
	return out
}

// montarProduto devolve uma cópia do produto com categoria, subcategoria e
// variações embutidas. Chamar com o lock tomado.
func (s *Store) montarProduto(p *entity.Produto) entity.Produto {
	out := *p
	if cat, ok := s.categorias[p.CategoriaID]; ok {
		montada := s.montarCategoria(cat)
		out.Categoria = &montada
	}
	if p.SubcategoriaID != nil {
		if sub, ok := s.subs[*p.SubcategoriaID]; ok {
			copia := *sub
			out.Subcategoria = &copia
		}
	}
	out.Variacoes = s.variacoesDo(p.ID)
	return out
}

// montarTipo devolve uma cópia do papel com permissões embutidas.
// Chamar com o lock tomado.
func (s *Store) montarTipo(t *entity.TipoUsuario) entity.TipoUsuario {
	out := *t
	out.Permissoes = s.permissoesDo(t.ID)
	if out.Permissoes == nil {
		out.Permissoes = []entity.PermissaoTipoUsuario{}
	}
	return out
}

// montarUsuario devolve uma cópia do usuário com papel embutido e sem senha.
// Chamar com o lock tomado.
func (s *Store) montarUsuario(u *entity.Usuario) entity.Usuario {
	out := *u
	out.Senha = ""
	if t, ok := s.tipos[u.TipoUsuarioID]; ok {
		montado := s.montarTipo(t)
		out.TipoUsuario = &montado
	}
	return out
}
