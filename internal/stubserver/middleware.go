package stubserver

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	pkgjwt "github.com/telasecia/vitrine/pkg/jwt"
)

// erroResponse corpo de erro HTTP do stub.
type erroResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Locals keys preenchidas pelo middleware de auth.
const (
	localUsuarioID = "usuario_id"
	localTipoID    = "tipo_usuario_id"
)

// authMiddleware valida o Bearer Token JWT e extrai os claims para c.Locals.
func authMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(erroResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(erroResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(erroResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		usuarioID, _, tipoID, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(erroResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(localUsuarioID, usuarioID)
		c.Locals(localTipoID, tipoID)
		return c.Next()
	}
}

// requirePermissao autoriza pela chave de permissão do papel do usuário.
func (s *Server) requirePermissao(chave string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tipoID, _ := c.Locals(localTipoID).(int64)
		s.store.mu.Lock()
		permitido := false
		for _, p := range s.store.permissoesDo(tipoID) {
			if p.Permissao == chave {
				permitido = true
				break
			}
		}
		s.store.mu.Unlock()
		if !permitido {
			return c.Status(fiber.StatusForbidden).JSON(erroResponse{Code: "FORBIDDEN", Message: "permissão insuficiente"})
		}
		return c.Next()
	}
}
