package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/telasecia/vitrine/internal/domain"
	"github.com/telasecia/vitrine/pkg/logger"
)

// TokenSource fornece o bearer token da sessão atual; string vazia quando anônimo.
type TokenSource interface {
	Token() string
}

// Config parâmetros do pipeline compartilhado de requisições.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Tokens fornece o bearer anexado a toda requisição; pode ser nil.
	Tokens TokenSource
	// AoExpirarSessao é chamado quando qualquer resposta vem com 401 ou 403.
	// Efeito transversal de todos os clientes de recurso, não lógica por cliente.
	AoExpirarSessao func()
	Logger          *logger.Logger
}

// Client pipeline HTTP compartilhado por todos os clientes de recurso:
// monta a requisição JSON, anexa o bearer da sessão e traduz falhas para
// ErroRede/ErroAPI. Nunca faz retry.
type Client struct {
	http      *http.Client
	baseURL   string
	tokens    TokenSource
	aoExpirar func()
	log       *logger.Logger
}

// New constrói o pipeline compartilhado.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   cfg.BaseURL,
		tokens:    cfg.Tokens,
		aoExpirar: cfg.AoExpirarSessao,
		log:       log,
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do executa uma chamada JSON. out == nil descarta o corpo da resposta.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("serializar corpo: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("montar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("falha de transporte")
		return &domain.ErroRede{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("sessão invalidada pelo backend")
		if c.aoExpirar != nil {
			c.aoExpirar()
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		corpo, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.ErroAPI{Status: resp.StatusCode, Corpo: string(corpo)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar resposta de %s: %w", path, err)
	}
	return nil
}
