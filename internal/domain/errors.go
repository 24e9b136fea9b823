package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado = errors.New("recurso não encontrado")
	ErrValidacao     = errors.New("entrada inválida")
	ErrNaoAutorizado = errors.New("não autorizado")
	ErrAcessoNegado  = errors.New("acesso negado")
	ErrEmailJaExiste = errors.New("o email já está cadastrado")
	ErrSessaoAusente = errors.New("nenhuma sessão autenticada")
	ErrRegistroLocal = errors.New("registro ainda não persistido no backend")
)

// ErroAPI resposta não-2xx do backend. O chamador decide como apresentar;
// 401/403 adicionalmente invalidam a sessão no pipeline compartilhado.
type ErroAPI struct {
	Status int
	Corpo  string
}

func (e *ErroAPI) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Corpo)
}

// Is mapeia status HTTP para os sentinelas de domínio, permitindo
// errors.Is(err, ErrNaoEncontrado) sem inspecionar o status manualmente.
func (e *ErroAPI) Is(target error) bool {
	switch target {
	case ErrNaoEncontrado:
		return e.Status == http.StatusNotFound
	case ErrNaoAutorizado:
		return e.Status == http.StatusUnauthorized
	case ErrAcessoNegado:
		return e.Status == http.StatusForbidden
	}
	return false
}

// ErroRede falha de transporte: o backend não foi alcançado.
// Nunca há retry automático; o chamador apresenta a falha.
type ErroRede struct {
	Err error
}

func (e *ErroRede) Error() string {
	return fmt.Sprintf("rede: %v", e.Err)
}

func (e *ErroRede) Unwrap() error {
	return e.Err
}
