package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalizar
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizar_RemoveAcentosECaixa(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Maçã", "maca"},
		{"maca", "maca"},
		{"AVIAMENTOS", "aviamentos"},
		{"Tricoline Estampada", "tricolineestampada"},
		{"Linha nº 10", "linhan10"},
		{"çÇáÁãÃêÊ", "ccaaaaee"},
		{"", ""},
		{"!!! ---", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, Normalizar(c.entrada),
			"Normalizar(%q)", c.entrada)
	}
}

func TestNormalizar_AcentuadoEDesacentuadoColidem(t *testing.T) {
	// A busca deve tratar "Maçã" e "maca" como o mesmo termo.
	assert.Equal(t, Normalizar("maca"), Normalizar("Maçã"),
		"formas acentuada e crua devem normalizar para o mesmo valor")
}

func TestNormalizar_Idempotente(t *testing.T) {
	entradas := []string{"Maçã Verde", "cortina VOIL 3m", "algodão cru"}
	for _, s := range entradas {
		uma := Normalizar(s)
		assert.Equal(t, uma, Normalizar(uma), "normalizar duas vezes não deve mudar o resultado")
	}
}
