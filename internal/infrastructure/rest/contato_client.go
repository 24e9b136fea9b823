package rest

import (
	"context"
	"fmt"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

var _ repository.ContatoRepository = (*ContatoClient)(nil)

// ContatoClient adaptador REST da porta ContatoRepository.
type ContatoClient struct {
	c *Client
}

// NewContatoClient constrói o cliente do formulário de contato.
func NewContatoClient(c *Client) *ContatoClient {
	return &ContatoClient{c: c}
}

// Enviar submete o formulário de contato.
func (r *ContatoClient) Enviar(ctx context.Context, m entity.MensagemContato) error {
	if err := r.c.post(ctx, "/contato", m, nil); err != nil {
		return fmt.Errorf("enviar contato: %w", err)
	}
	return nil
}
