package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telasecia/vitrine/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// TemPermissao
// ──────────────────────────────────────────────────────────────────────────────

func TestTemPermissao_ComparacaoExataDaChave(t *testing.T) {
	u := &Usuario{
		TipoUsuario: &TipoUsuario{
			Tipo: "administrador",
			Permissoes: []PermissaoTipoUsuario{
				{Permissao: "criar_produto"},
			},
		},
	}
	assert.True(t, u.TemPermissao("criar_produto"))
	assert.False(t, u.TemPermissao("Criar_Produto"), "a chave é comparada byte a byte")
	assert.False(t, u.TemPermissao("excluir_produto"))
}

func TestTemPermissao_SemPapelOuNilNuncaConcede(t *testing.T) {
	var nulo *Usuario
	assert.False(t, nulo.TemPermissao("criar_produto"), "usuário nil é seguro de consultar")

	semPapel := &Usuario{Nome: "Ana"}
	assert.False(t, semPapel.TemPermissao("criar_produto"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validações de cadastro
// ──────────────────────────────────────────────────────────────────────────────

func TestValidarCadastro(t *testing.T) {
	base := func() Usuario {
		return Usuario{Nome: "Ana", Email: "ana@b.com", Senha: "123456"}
	}

	u := base()
	assert.NoError(t, u.ValidarCadastro("123456"))

	u = base()
	u.Nome = ""
	assert.ErrorIs(t, u.ValidarCadastro("123456"), domain.ErrValidacao)

	u = base()
	u.Email = "sem-arroba"
	assert.ErrorIs(t, u.ValidarCadastro("123456"), domain.ErrValidacao)

	u = base()
	u.Senha = "12345"
	assert.ErrorIs(t, u.ValidarCadastro("12345"), domain.ErrValidacao, "senha mínima de 6 caracteres")

	u = base()
	assert.ErrorIs(t, u.ValidarCadastro("diferente"), domain.ErrValidacao, "as senhas devem conferir")
}

func TestValidarEmail(t *testing.T) {
	assert.NoError(t, ValidarEmail("a@b.com"))
	assert.NoError(t, ValidarEmail("nome.sobrenome@dominio.com.br"))
	assert.Error(t, ValidarEmail(""))
	assert.Error(t, ValidarEmail("sem-arroba.com"))
	assert.Error(t, ValidarEmail("a@b"))
	assert.Error(t, ValidarEmail("com espaco@b.com"))
}
