package stubserver

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// receberContato guarda a mensagem do formulário público em memória.
func (s *Server) receberContato(c *fiber.Ctx) error {
	var in entity.MensagemContato
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := in.Validar(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "VALIDATION_ERROR", Message: err.Error()})
	}
	s.store.mu.Lock()
	s.store.contatos = append(s.store.contatos, in)
	s.store.mu.Unlock()
	s.log.Info().Str("email", in.Email).Msg("mensagem de contato recebida")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "mensagem recebida"})
}

// upload recebe multipart (campo "imagem") e delega ao armazenamento de
// arquivos, devolvendo a URL pública.
func (s *Server) upload(c *fiber.Ctx) error {
	if s.arquivos == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(erroResponse{Code: "STORAGE_UNAVAILABLE", Message: "armazenamento não configurado"})
	}
	fh, err := c.FormFile("imagem")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "campo de arquivo 'imagem' obrigatório"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroResponse{Code: "INVALID_BODY", Message: "arquivo ilegível"})
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(erroResponse{Code: "INTERNAL", Message: "falha ao ler arquivo"})
	}
	// Nome aleatório preservando a extensão, para não sobrescrever uploads.
	nome := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fh.Filename))
	url, err := s.arquivos.Upload(c.UserContext(), &buf, nome)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(erroResponse{Code: "INTERNAL", Message: "falha ao gravar arquivo"})
	}
	s.log.Info().Str("nome", nome).Int64("bytes", fh.Size).Msg("upload recebido")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
