package entity

import (
	"fmt"
	"regexp"
	"time"

	"github.com/telasecia/vitrine/internal/domain"
)

// TipoUsuarioCliente id do papel padrão atribuído no cadastro público.
const TipoUsuarioCliente int64 = 2

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Usuario identidade autenticável. Senha é write-only: nunca volta do backend
// em leituras, só trafega em cadastro/atualização.
type Usuario struct {
	ID            int64        `json:"id"`
	Nome          string       `json:"nome"`
	Email         string       `json:"email"`
	Senha         string       `json:"senha,omitempty"`
	TipoUsuarioID int64        `json:"tipo_usuario_id"`
	CreatedAt     *time.Time   `json:"created_at,omitempty"`
	UpdatedAt     *time.Time   `json:"updated_at,omitempty"`
	TipoUsuario   *TipoUsuario `json:"tipo_usuario,omitempty"`
}

// TemPermissao verifica por igualdade de string se o papel do usuário carrega
// a permissão. Sem papel embutido, nenhuma permissão é concedida.
func (u *Usuario) TemPermissao(chave string) bool {
	if u == nil || u.TipoUsuario == nil {
		return false
	}
	for _, p := range u.TipoUsuario.Permissoes {
		if p.Permissao == chave {
			return true
		}
	}
	return false
}

// ValidarCadastro checa os campos de um cadastro antes do envio.
func (u *Usuario) ValidarCadastro(confirmarSenha string) error {
	if u.Nome == "" {
		return fmt.Errorf("%w: nome é obrigatório", domain.ErrValidacao)
	}
	if err := ValidarEmail(u.Email); err != nil {
		return err
	}
	if len(u.Senha) < 6 {
		return fmt.Errorf("%w: a senha deve ter pelo menos 6 caracteres", domain.ErrValidacao)
	}
	if u.Senha != confirmarSenha {
		return fmt.Errorf("%w: as senhas não conferem", domain.ErrValidacao)
	}
	return nil
}

// ValidarEmail valida o formato do email.
func ValidarEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email é obrigatório", domain.ErrValidacao)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: email inválido", domain.ErrValidacao)
	}
	return nil
}
