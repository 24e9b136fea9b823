package session

import (
	"fmt"
	"sync"

	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/infrastructure/sessionfile"
	"github.com/telasecia/vitrine/pkg/logger"
)

// Store máquina de estados da sessão: Anônimo (sem identidade) ou Autenticado
// (identidade + token em memória, espelhados na persistência). É o único
// estado mutável compartilhado do cliente: escrito por Login/Logout/Invalidar,
// lido por toda requisição de saída.
type Store struct {
	mu      sync.RWMutex
	persist *sessionfile.Arquivo
	usuario *entity.Usuario
	token   string

	// AoInvalidar é disparado quando o backend responde 401/403: a sessão é
	// limpa e a navegação volta para a tela de login.
	AoInvalidar func()
	// AoSair é disparado no logout explícito: navegação para a tela inicial anônima.
	AoSair func()

	log *logger.Logger
}

// New constrói o store. Chamar Hidratar antes do primeiro uso.
func New(persist *sessionfile.Arquivo, log *logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{persist: persist, log: log}
}

// Hidratar tenta restaurar o estado Autenticado da persistência na
// inicialização do processo. Sem par identidade/token gravado, começa Anônimo.
func (s *Store) Hidratar() error {
	snap, err := s.persist.Carregar()
	if err != nil {
		return fmt.Errorf("hidratar sessão: %w", err)
	}
	if snap == nil {
		s.log.Debug().Msg("sem sessão persistida, iniciando anônimo")
		return nil
	}
	s.mu.Lock()
	s.usuario = snap.Usuario
	s.token = snap.Token
	s.mu.Unlock()
	s.log.Debug().Str("email", snap.Usuario.Email).Msg("sessão restaurada")
	return nil
}

// Login transiciona Anônimo -> Autenticado e grava identidade e token na
// persistência. A identidade fica disponível sincronamente daqui em diante.
func (s *Store) Login(usuario *entity.Usuario, token string) error {
	if err := s.persist.Salvar(sessionfile.Snapshot{Usuario: usuario, Token: token}); err != nil {
		return err
	}
	s.mu.Lock()
	s.usuario = usuario
	s.token = token
	s.mu.Unlock()
	s.log.Info().Str("email", usuario.Email).Msg("sessão iniciada")
	return nil
}

// Logout transiciona Autenticado -> Anônimo, limpa a persistência e dispara a
// navegação de volta para a tela inicial.
func (s *Store) Logout() error {
	if err := s.persist.Limpar(); err != nil {
		return err
	}
	s.mu.Lock()
	s.usuario = nil
	s.token = ""
	s.mu.Unlock()
	s.log.Info().Msg("sessão encerrada")
	if s.AoSair != nil {
		s.AoSair()
	}
	return nil
}

// Invalidar limpa a sessão por decisão do backend (401/403) e dispara a
// navegação para o login. Chamado pelo pipeline compartilhado, vale para
// qualquer chamada de qualquer cliente de recurso.
func (s *Store) Invalidar() {
	if err := s.persist.Limpar(); err != nil {
		s.log.Warn().Err(err).Msg("limpar sessão persistida")
	}
	s.mu.Lock()
	s.usuario = nil
	s.token = ""
	s.mu.Unlock()
	if s.AoInvalidar != nil {
		s.AoInvalidar()
	}
}

// Usuario devolve a identidade autenticada; nil quando anônimo.
func (s *Store) Usuario() *entity.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usuario
}

// Token devolve o bearer token; vazio quando anônimo.
// Satisfaz rest.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Autenticado informa o estado atual da máquina.
func (s *Store) Autenticado() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usuario != nil && s.token != ""
}

// TemPermissao consulta derivada sobre o papel da identidade autenticada.
// Anônimo nunca tem permissão alguma.
func (s *Store) TemPermissao(chave string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.usuario == nil {
		return false
	}
	return s.usuario.TemPermissao(chave)
}
