package stubserver

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// Credenciais do administrador semeado, para desenvolvimento local.
const (
	SeedAdminEmail = "admin@telasecia.com.br"
	SeedAdminSenha = "admin123"
)

// seed popula o store com papéis, um administrador e um catálogo de amostra.
func (s *Server) seed() {
	st := s.store
	st.mu.Lock()
	defer st.mu.Unlock()

	admin := &entity.TipoUsuario{ID: st.proximoID(), Tipo: "administrador"}
	cliente := &entity.TipoUsuario{ID: st.proximoID(), Tipo: "cliente"}
	st.tipos[admin.ID] = admin
	st.tipos[cliente.ID] = cliente

	perm := &entity.PermissaoTipoUsuario{
		ID:            st.proximoID(),
		TipoUsuarioID: admin.ID,
		Permissao:     "criar_produto",
		Descricao:     "gerenciar o catálogo da loja",
	}
	st.permissoes[perm.ID] = perm

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminSenha), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt só falha com custo inválido; aqui é constante.
		panic(err)
	}
	u := &entity.Usuario{
		ID:            st.proximoID(),
		Nome:          "Administrador",
		Email:         SeedAdminEmail,
		TipoUsuarioID: admin.ID,
		CreatedAt:     agora(),
	}
	u.UpdatedAt = u.CreatedAt
	st.usuarios[u.ID] = u
	st.senhas[u.ID] = string(hash)

	tecidos := &entity.Categoria{ID: st.proximoID(), Nome: "Tecidos"}
	aviamentos := &entity.Categoria{ID: st.proximoID(), Nome: "Aviamentos"}
	cortinas := &entity.Categoria{ID: st.proximoID(), Nome: "Cortinas"}
	st.categorias[tecidos.ID] = tecidos
	st.categorias[aviamentos.ID] = aviamentos
	st.categorias[cortinas.ID] = cortinas

	algodao := s.seedSub(tecidos.ID, "Algodão", "tecidos planos de algodão")
	malha := s.seedSub(tecidos.ID, "Malha", "malhas para vestuário")
	s.seedSub(aviamentos.ID, "Linhas", "linhas para costura")

	p1 := s.seedProduto("Tricoline estampada", "tricoline 100% algodão, largura 1,50m", "24.90", "Círculo", tecidos.ID, &algodao, 120)
	s.seedProduto("Malha canelada", "malha canelada para vestuário", "19.50", "Santista", tecidos.ID, &malha, 80)
	s.seedProduto("Linha de costura 500m", "poliéster, cone de 500 metros", "7.90", "Corrente", aviamentos.ID, nil, 300)
	s.seedProduto("Cortina voil 3m", "voil liso com forro, 3x2,5m", "189.00", "", cortinas.ID, nil, 15)

	s.seedVariacao(p1, "Floral azul")
	s.seedVariacao(p1, "Poá vermelho")

	s.log.Info().
		Int("categorias", len(st.categorias)).
		Int("produtos", len(st.produtos)).
		Msg("dados de demonstração semeados")
}

// seedSub insere uma subcategoria e devolve o id. Chamar com o lock tomado.
func (s *Server) seedSub(categoriaID int64, nome, descricao string) int64 {
	sub := &entity.Subcategoria{
		ID:          s.store.proximoID(),
		Nome:        nome,
		Descricao:   descricao,
		CategoriaID: categoriaID,
		CreatedAt:   agora(),
	}
	sub.UpdatedAt = sub.CreatedAt
	s.store.subs[sub.ID] = sub
	return sub.ID
}

// seedProduto insere um produto e devolve o id. Chamar com o lock tomado.
func (s *Server) seedProduto(nome, descricao, preco, marca string, categoriaID int64, subcategoriaID *int64, estoque int) int64 {
	p := &entity.Produto{
		ID:             s.store.proximoID(),
		Nome:           nome,
		Descricao:      descricao,
		Preco:          decimal.RequireFromString(preco),
		Marca:          marca,
		Estoque:        estoque,
		CategoriaID:    categoriaID,
		SubcategoriaID: subcategoriaID,
		CreatedAt:      agora(),
	}
	p.UpdatedAt = p.CreatedAt
	s.store.produtos[p.ID] = p
	return p.ID
}

// seedVariacao insere uma variação. Chamar com o lock tomado.
func (s *Server) seedVariacao(produtoID int64, nome string) {
	v := &entity.VariacaoProduto{
		ID:        s.store.proximoID(),
		Nome:      nome,
		ProdutoID: produtoID,
		CreatedAt: agora(),
	}
	v.UpdatedAt = v.CreatedAt
	s.store.variacoes[v.ID] = v
}
