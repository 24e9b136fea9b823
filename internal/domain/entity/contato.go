package entity

import (
	"fmt"

	"github.com/telasecia/vitrine/internal/domain"
)

// MensagemContato formulário público de contato da loja.
type MensagemContato struct {
	Numero   string `json:"numero"`
	Email    string `json:"email"`
	Mensagem string `json:"mensagem"`
}

// Validar checa o formulário antes do envio.
func (m *MensagemContato) Validar() error {
	if err := ValidarEmail(m.Email); err != nil {
		return err
	}
	if m.Mensagem == "" {
		return fmt.Errorf("%w: mensagem é obrigatória", domain.ErrValidacao)
	}
	return nil
}
