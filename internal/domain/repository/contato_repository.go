package repository

import (
	"context"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// ContatoRepository porta de envio do formulário de contato (DIP).
type ContatoRepository interface {
	Enviar(ctx context.Context, m entity.MensagemContato) error
}
