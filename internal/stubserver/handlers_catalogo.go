package stubserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// paramID lê o :id da rota. Com id inválido a resposta 400 já foi escrita e o
// id devolvido é 0: o handler só repassa o erro.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	return int64(id), nil
}

// ─── Categorias ───────────────────────────────────────────────────────────────

func (s *Server) listarCategorias(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := []entity.Categoria{}
	for _, cat := range s.store.categorias {
		out = append(out, s.store.montarCategoria(cat))
	}
	ordenarCategorias(out)
	return c.JSON(out)
}

func (s *Server) buscarCategoria(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cat, ok := s.store.categorias[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "categoria não encontrada"})
	}
	return c.JSON(s.store.montarCategoria(cat))
}

func (s *Server) criarCategoria(c *fiber.Ctx) error {
	var in entity.Categoria
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "nome é obrigatório"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	in.ID = s.store.proximoID()
	in.Subcategorias = nil
	s.store.categorias[in.ID] = &in
	s.log.Info().Int64("id", in.ID).Str("nome", in.Nome).Msg("categoria criada")
	return c.Status(fiber.StatusCreated).JSON(s.store.montarCategoria(&in))
}

func (s *Server) atualizarCategoria(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	var in entity.Categoria
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cat, ok := s.store.categorias[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "categoria não encontrada"})
	}
	cat.Nome = in.Nome
	cat.Imagem = in.Imagem
	return c.JSON(s.store.montarCategoria(cat))
}

func (s *Server) excluirCategoria(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.categorias[id]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "categoria não encontrada"})
	}
	delete(s.store.categorias, id)
	// A categoria é dona: subcategorias vão junto.
	for sid, sub := range s.store.subs {
		if sub.CategoriaID == id {
			delete(s.store.subs, sid)
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Subcategorias ────────────────────────────────────────────────────────────

func (s *Server) listarSubcategorias(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := []entity.Subcategoria{}
	for _, sub := range s.store.subs {
		out = append(out, *sub)
	}
	ordenarSubcategorias(out)
	return c.JSON(out)
}

func (s *Server) buscarSubcategoria(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	sub, ok := s.store.subs[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "subcategoria não encontrada"})
	}
	return c.JSON(*sub)
}

func (s *Server) listarSubcategoriasPorCategoria(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := s.store.subcategoriasDa(id)
	if out == nil {
		out = []entity.Subcategoria{}
	}
	return c.JSON(out)
}

func (s *Server) criarSubcategoria(c *fiber.Ctx) error {
	var in entity.Subcategoria
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if st := s.validarSubcategoria(&in); st != 0 {
		return c.Status(st).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "subcategoria inválida"})
	}
	in.ID = s.store.proximoID()
	in.CreatedAt = agora()
	in.UpdatedAt = in.CreatedAt
	s.store.subs[in.ID] = &in
	return c.Status(fiber.StatusCreated).JSON(in)
}

// criarSubcategoriasLote cria as subcategorias do corpo {"subcategorias": [...]}
// todas sob a categoria da URL, preservando a ordem do lote na resposta.
func (s *Server) criarSubcategoriasLote(c *fiber.Ctx) error {
	categoriaID, err := paramID(c)
	if categoriaID == 0 {
		return err
	}
	var in struct {
		Subcategorias []entity.Subcategoria `json:"subcategorias"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.categorias[categoriaID]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "categoria não encontrada"})
	}
	criadas := make([]entity.Subcategoria, 0, len(in.Subcategorias))
	for _, sub := range in.Subcategorias {
		sub.CategoriaID = categoriaID
		sub.ID = s.store.proximoID()
		sub.CreatedAt = agora()
		sub.UpdatedAt = sub.CreatedAt
		copia := sub
		s.store.subs[sub.ID] = &copia
		criadas = append(criadas, sub)
	}
	s.log.Info().Int64("categoria_id", categoriaID).Int("quantidade", len(criadas)).Msg("subcategorias criadas em lote")
	return c.Status(fiber.StatusCreated).JSON(criadas)
}

func (s *Server) atualizarSubcategoria(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	var in entity.Subcategoria
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	sub, ok := s.store.subs[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "subcategoria não encontrada"})
	}
	sub.Nome = in.Nome
	sub.Descricao = in.Descricao
	if in.CategoriaID != 0 {
		if _, ok := s.store.categorias[in.CategoriaID]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "categoria inexistente"})
		}
		sub.CategoriaID = in.CategoriaID
	}
	sub.UpdatedAt = agora()
	return c.JSON(*sub)
}

func (s *Server) excluirSubcategoria(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.subs[id]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "subcategoria não encontrada"})
	}
	delete(s.store.subs, id)
	return c.SendStatus(fiber.StatusNoContent)
}

// validarSubcategoria devolve o status HTTP do erro, ou 0 se válida.
// Chamar com o lock tomado.
func (s *Server) validarSubcategoria(sub *entity.Subcategoria) int {
	if sub.Nome == "" || sub.CategoriaID == 0 {
		return fiber.StatusBadRequest
	}
	if _, ok := s.store.categorias[sub.CategoriaID]; !ok {
		return fiber.StatusBadRequest
	}
	return 0
}

// ─── Produtos ─────────────────────────────────────────────────────────────────

func (s *Server) listarProdutos(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := []entity.Produto{}
	for _, p := range s.store.produtos {
		out = append(out, s.store.montarProduto(p))
	}
	ordenarProdutos(out)
	return c.JSON(out)
}

func (s *Server) buscarProduto(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	p, ok := s.store.produtos[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(s.store.montarProduto(p))
}

func (s *Server) listarProdutosPorCategoria(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := []entity.Produto{}
	for _, p := range s.store.produtos {
		if p.CategoriaID == id {
			out = append(out, s.store.montarProduto(p))
		}
	}
	ordenarProdutos(out)
	return c.JSON(out)
}

func (s *Server) criarProduto(c *fiber.Ctx) error {
	var in entity.Produto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := in.Validar(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: err.Error()})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.categorias[in.CategoriaID]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "categoria inexistente"})
	}
	in.ID = s.store.proximoID()
	in.CreatedAt = agora()
	in.UpdatedAt = in.CreatedAt
	in.Categoria = nil
	in.Subcategoria = nil
	in.Variacoes = nil
	s.store.produtos[in.ID] = &in
	s.log.Info().Int64("id", in.ID).Str("nome", in.Nome).Msg("produto criado")
	return c.Status(fiber.StatusCreated).JSON(s.store.montarProduto(&in))
}

func (s *Server) atualizarProduto(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	var in entity.Produto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := in.Validar(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: err.Error()})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	p, ok := s.store.produtos[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	// Última escrita vence: sobrescreve sem comparar com o estado anterior.
	p.Nome = in.Nome
	p.Descricao = in.Descricao
	p.Preco = in.Preco
	p.Marca = in.Marca
	p.Imagem = in.Imagem
	p.Estoque = in.Estoque
	p.CategoriaID = in.CategoriaID
	p.SubcategoriaID = in.SubcategoriaID
	p.UpdatedAt = agora()
	return c.JSON(s.store.montarProduto(p))
}

func (s *Server) excluirProduto(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.produtos[id]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	delete(s.store.produtos, id)
	for vid, v := range s.store.variacoes {
		if v.ProdutoID == id {
			delete(s.store.variacoes, vid)
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Variações ────────────────────────────────────────────────────────────────

func (s *Server) listarVariacoes(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := []entity.VariacaoProduto{}
	for _, v := range s.store.variacoes {
		out = append(out, *v)
	}
	ordenarVariacoes(out)
	return c.JSON(out)
}

func (s *Server) buscarVariacao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	v, ok := s.store.variacoes[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "variação não encontrada"})
	}
	return c.JSON(*v)
}

func (s *Server) listarVariacoesPorProduto(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := s.store.variacoesDo(id)
	if out == nil {
		out = []entity.VariacaoProduto{}
	}
	return c.JSON(out)
}

func (s *Server) criarVariacao(c *fiber.Ctx) error {
	var in entity.VariacaoProduto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if in.Nome == "" || in.ProdutoID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "nome e produto_id são obrigatórios"})
	}
	if _, ok := s.store.produtos[in.ProdutoID]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "produto inexistente"})
	}
	in.ID = s.store.proximoID()
	in.CreatedAt = agora()
	in.UpdatedAt = in.CreatedAt
	s.store.variacoes[in.ID] = &in
	return c.Status(fiber.StatusCreated).JSON(in)
}

// criarVariacoesLote cria as variações do corpo (array JSON puro) todas sob o
// produto da URL, preservando a ordem do lote na resposta.
func (s *Server) criarVariacoesLote(c *fiber.Ctx) error {
	produtoID, err := paramID(c)
	if produtoID == 0 {
		return err
	}
	var in []entity.VariacaoProduto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.produtos[produtoID]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	criadas := make([]entity.VariacaoProduto, 0, len(in))
	for _, v := range in {
		v.ProdutoID = produtoID
		v.ID = s.store.proximoID()
		v.CreatedAt = agora()
		v.UpdatedAt = v.CreatedAt
		copia := v
		s.store.variacoes[v.ID] = &copia
		criadas = append(criadas, v)
	}
	s.log.Info().Int64("produto_id", produtoID).Int("quantidade", len(criadas)).Msg("variações criadas em lote")
	return c.Status(fiber.StatusCreated).JSON(criadas)
}

func (s *Server) atualizarVariacao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	var in entity.VariacaoProduto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	v, ok := s.store.variacoes[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "variação não encontrada"})
	}
	v.Nome = in.Nome
	v.Descricao = in.Descricao
	v.UpdatedAt = agora()
	return c.JSON(*v)
}

func (s *Server) excluirVariacao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.variacoes[id]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "variação não encontrada"})
	}
	delete(s.store.variacoes, id)
	return c.SendStatus(fiber.StatusNoContent)
}
