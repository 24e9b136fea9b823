package stubserver

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/telasecia/vitrine/internal/domain/entity"
	pkgjwt "github.com/telasecia/vitrine/pkg/jwt"
)

// criarUsuario cadastro público. O papel é sempre o de cliente, mesmo que o
// corpo peça outro; só um administrador autenticado promove usuários depois.
func (s *Server) criarUsuario(c *fiber.Ctx) error {
	var in entity.Usuario
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "nome e senha são obrigatórios"})
	}
	if err := entity.ValidarEmail(in.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: err.Error()})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(erroResponse{Code: "INTERNAL", Message: "falha ao processar senha"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, u := range s.store.usuarios {
		if u.Email == in.Email {
			return c.Status(fiber.StatusConflict).JSON(erroResponse{Code: "EMAIL_EXISTS", Message: "email já cadastrado"})
		}
	}
	in.ID = s.store.proximoID()
	in.TipoUsuarioID = entity.TipoUsuarioCliente
	in.Senha = ""
	in.CreatedAt = agora()
	in.UpdatedAt = in.CreatedAt
	s.store.usuarios[in.ID] = &in
	s.store.senhas[in.ID] = string(hash)
	s.log.Info().Int64("id", in.ID).Str("email", in.Email).Msg("usuário cadastrado")
	return c.Status(fiber.StatusCreated).JSON(s.store.montarUsuario(&in))
}

// login autentica por email e senha e devolve {token, usuario}.
func (s *Server) login(c *fiber.Ctx) error {
	var in struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	var alvo *entity.Usuario
	for _, u := range s.store.usuarios {
		if u.Email == in.Email {
			alvo = u
			break
		}
	}
	if alvo == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(erroResponse{Code: "INVALID_CREDENTIALS", Message: "email ou senha incorretos"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.store.senhas[alvo.ID]), []byte(in.Senha)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(erroResponse{Code: "INVALID_CREDENTIALS", Message: "email ou senha incorretos"})
	}
	token, err := pkgjwt.Generate(s.cfg.JWTSecret, alvo.ID, alvo.Email, alvo.TipoUsuarioID, s.cfg.JWTIssuer, s.cfg.JWTExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(erroResponse{Code: "INTERNAL", Message: "falha ao emitir token"})
	}
	s.log.Info().Int64("id", alvo.ID).Msg("login efetuado")
	return c.JSON(fiber.Map{
		"token":   token,
		"usuario": s.store.montarUsuario(alvo),
	})
}

// resetSenha responde 200 mesmo para email desconhecido, para não revelar
// quais emails existem. O stub não envia email nenhum.
func (s *Server) resetSenha(c *fiber.Ctx) error {
	var in struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := entity.ValidarEmail(in.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: err.Error()})
	}
	s.log.Info().Str("email", in.Email).Msg("reset de senha solicitado")
	return c.JSON(fiber.Map{"message": "se o email existir, as instruções foram enviadas"})
}

func (s *Server) listarUsuarios(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := []entity.Usuario{}
	for _, u := range s.store.usuarios {
		out = append(out, s.store.montarUsuario(u))
	}
	ordenarUsuarios(out)
	return c.JSON(out)
}

func (s *Server) buscarUsuario(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	u, ok := s.store.usuarios[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "usuário não encontrado"})
	}
	return c.JSON(s.store.montarUsuario(u))
}

func (s *Server) atualizarUsuario(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	var in entity.Usuario
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	u, ok := s.store.usuarios[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "usuário não encontrado"})
	}
	if in.Email != "" && in.Email != u.Email {
		if err := entity.ValidarEmail(in.Email); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: err.Error()})
		}
		for _, outro := range s.store.usuarios {
			if outro.ID != id && outro.Email == in.Email {
				return c.Status(fiber.StatusConflict).JSON(erroResponse{Code: "EMAIL_EXISTS", Message: "email já cadastrado"})
			}
		}
		u.Email = in.Email
	}
	if in.Nome != "" {
		u.Nome = in.Nome
	}
	if in.TipoUsuarioID != 0 {
		if _, ok := s.store.tipos[in.TipoUsuarioID]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "tipo de usuário inexistente"})
		}
		u.TipoUsuarioID = in.TipoUsuarioID
	}
	if in.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(erroResponse{Code: "INTERNAL", Message: "falha ao processar senha"})
		}
		s.store.senhas[id] = string(hash)
	}
	u.UpdatedAt = agora()
	return c.JSON(s.store.montarUsuario(u))
}

func (s *Server) excluirUsuario(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.usuarios[id]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "usuário não encontrado"})
	}
	delete(s.store.usuarios, id)
	delete(s.store.senhas, id)
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Tipos de usuário ─────────────────────────────────────────────────────────

func (s *Server) listarTipos(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := []entity.TipoUsuario{}
	for _, t := range s.store.tipos {
		out = append(out, s.store.montarTipo(t))
	}
	ordenarTipos(out)
	return c.JSON(out)
}

func (s *Server) buscarTipo(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	t, ok := s.store.tipos[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "tipo de usuário não encontrado"})
	}
	return c.JSON(s.store.montarTipo(t))
}

func (s *Server) criarTipo(c *fiber.Ctx) error {
	var in entity.TipoUsuario
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "tipo é obrigatório"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	in.ID = s.store.proximoID()
	in.Permissoes = nil
	s.store.tipos[in.ID] = &in
	return c.Status(fiber.StatusCreated).JSON(s.store.montarTipo(&in))
}

func (s *Server) atualizarTipo(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	var in entity.TipoUsuario
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	t, ok := s.store.tipos[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "tipo de usuário não encontrado"})
	}
	t.Tipo = in.Tipo
	return c.JSON(s.store.montarTipo(t))
}

func (s *Server) excluirTipo(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.tipos[id]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "tipo de usuário não encontrado"})
	}
	for _, u := range s.store.usuarios {
		if u.TipoUsuarioID == id {
			return c.Status(fiber.StatusConflict).JSON(erroResponse{Code: "IN_USE", Message: "há usuários com este tipo"})
		}
	}
	delete(s.store.tipos, id)
	for pid, p := range s.store.permissoes {
		if p.TipoUsuarioID == id {
			delete(s.store.permissoes, pid)
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Permissões ───────────────────────────────────────────────────────────────

func (s *Server) listarPermissoes(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := []entity.PermissaoTipoUsuario{}
	for _, p := range s.store.permissoes {
		out = append(out, *p)
	}
	ordenarPermissoes(out)
	return c.JSON(out)
}

func (s *Server) buscarPermissao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	p, ok := s.store.permissoes[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "permissão não encontrada"})
	}
	return c.JSON(*p)
}

func (s *Server) criarPermissao(c *fiber.Ctx) error {
	var in entity.PermissaoTipoUsuario
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if in.Permissao == "" || in.TipoUsuarioID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "permissao e tipo_usuario_id são obrigatórios"})
	}
	if _, ok := s.store.tipos[in.TipoUsuarioID]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: "tipo de usuário inexistente"})
	}
	in.ID = s.store.proximoID()
	in.CreatedAt = agora()
	in.UpdatedAt = in.CreatedAt
	s.store.permissoes[in.ID] = &in
	return c.Status(fiber.StatusCreated).JSON(in)
}

func (s *Server) atualizarPermissao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	var in entity.PermissaoTipoUsuario
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	p, ok := s.store.permissoes[id]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "permissão não encontrada"})
	}
	p.Permissao = in.Permissao
	p.Descricao = in.Descricao
	p.UpdatedAt = agora()
	return c.JSON(*p)
}

func (s *Server) excluirPermissao(c *fiber.Ctx) error {
	id, err := paramID(c)
	if id == 0 {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.permissoes[id]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroResponse{Code: "NOT_FOUND", Message: "permissão não encontrada"})
	}
	delete(s.store.permissoes, id)
	return c.SendStatus(fiber.StatusNoContent)
}
